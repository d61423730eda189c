package generator

import (
	"go/token"
	"path"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m4gshm/gollections/predicate"
	"github.com/m4gshm/gollections/slice"
)

func itoa(i int) string { return strconv.Itoa(i) }

func badSymbol(ch rune) bool {
	return !('a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' ||
		ch == '_' || ch >= utf8.RuneSelf && (unicode.IsLetter(ch)))
}

func packagePathToName(importPath string) string {
	base := path.Base(importPath)
	return string(slice.Filter([]rune(base), predicate.Not[rune](badSymbol)))
}

// TypeReceiverVar derives the receiver variable from a type name.
func TypeReceiverVar(typeName string) string {
	if f, ok := slice.First([]rune(typeName), unicode.IsLetter); ok {
		return string(unicode.ToLower(f))
	}
	return "r"
}

// ArgName converts a field name to an argument name: a single leading capital
// is lowered, an all-caps name is lowered entirely, a leading acronym is kept.
func ArgName(fieldName string) string {
	runes := []rune(fieldName)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	var name string
	switch {
	case upper == len(runes):
		name = strings.ToLower(fieldName)
	case upper <= 1:
		name = string(unicode.ToLower(runes[0])) + string(runes[1:])
	default:
		name = fieldName
	}
	if token.IsKeyword(name) {
		name += "_"
	}
	return name
}

// SetterName is the fluent setter of a field, named after the field verbatim.
func SetterName(fieldName string) string {
	return "With" + fieldName
}

// EntitySetterName names the entity-accepting FK setter: a trailing ID hump
// is stripped (PracticeID -> WithPractice), a medial one is collapsed
// (ProcedureIDOrigin -> WithProcedureOrigin).
func EntitySetterName(fieldName string) string {
	if trimmed := strings.TrimSuffix(fieldName, "ID"); trimmed != fieldName && len(trimmed) > 0 {
		return "With" + trimmed
	}
	if i := medialIDIndex(fieldName); i >= 0 {
		return "With" + fieldName[:i] + fieldName[i+2:]
	}
	return "With" + fieldName
}

func medialIDIndex(name string) int {
	for i := 0; i+2 < len(name); i++ {
		if name[i:i+2] == "ID" && unicode.IsUpper(rune(name[i+2])) {
			return i
		}
	}
	return -1
}

// ResolvedVarName is the local variable holding one FK resolution result.
func ResolvedVarName(fieldName string) string {
	return "resolved" + fieldName
}
