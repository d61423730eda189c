package struc

import (
	"go/types"
)

// OptionalElem returns the wrapped type of an optional (pointer) field type,
// or nil if the type is not an optional wrapper. Absence of a match is a
// valid answer, not an error.
func OptionalElem(t types.Type) types.Type {
	if p, ok := t.(*types.Pointer); ok {
		return p.Elem()
	}
	return nil
}

// IsOptional reports whether the declared field type is an optional wrapper.
func IsOptional(t types.Type) bool {
	return OptionalElem(t) != nil
}

// Deoptionalized is the shape the corresponding entity field is expected to
// have: the wrapped type for optionals, the type itself otherwise.
func Deoptionalized(t types.Type) types.Type {
	if elem := OptionalElem(t); elem != nil {
		return elem
	}
	return t
}

// IsString reports whether the (possibly named) type is the textual string
// type.
func IsString(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Kind() == types.String
}

// CloneMode tells how a field value is duplicated on entity assembly.
type CloneMode int

const (
	// CopyValue covers the trivially-copyable shapes: basics, arrays and
	// plain value structs, copied by assignment.
	CopyValue CloneMode = iota
	// CloneSlice duplicates through slices.Clone so the factory and the
	// built entity never share a backing array.
	CloneSlice
	// CloneMap duplicates through maps.Clone.
	CloneMap
)

// CloneModeOf classifies the duplication requirement of a non-optional field
// type. Computed per occurrence, never cached.
func CloneModeOf(t types.Type) CloneMode {
	switch t.Underlying().(type) {
	case *types.Slice:
		return CloneSlice
	case *types.Map:
		return CloneMap
	}
	return CopyValue
}

// NeedsClone reports whether reading the value without consuming the original
// requires explicit duplication.
func NeedsClone(t types.Type) bool {
	return CloneModeOf(t) != CopyValue
}
