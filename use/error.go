// Package use holds the diagnostic error type surfaced on malformed factory
// declarations. Generation aborts on the first such error; nothing is emitted
// for the offending factory.
package use

import (
	"fmt"
	"go/ast"
)

func Err(message string) *Error {
	return &Error{message: message}
}

// FieldErr pinpoints a malformed field marker of a factory declaration.
func FieldErr(message, typeName, fieldName string) *Error {
	return &Error{message: message, typeName: typeName, fieldName: fieldName}
}

func FileCommentErr(message string, file *ast.File, comment *ast.Comment) *Error {
	return &Error{message: message, comment: comment, file: file}
}

type Error struct {
	message string

	typeName  string
	fieldName string

	file    *ast.File
	comment *ast.Comment
}

func (e *Error) Error() string {
	m := e.message
	if len(e.typeName) > 0 {
		m += fmt.Sprintf(" type: %s", e.typeName)
	}
	if len(e.fieldName) > 0 {
		m += fmt.Sprintf(" field: %s", e.fieldName)
	}
	if e.file != nil {
		n := e.file.Name.String()
		m += fmt.Sprintf(" file: %s", n)
	}
	if e.comment != nil {
		m += fmt.Sprintf(" pos: %d", e.comment.Pos())
	}
	return m
}
