// Package factory is the runtime contract between generated factory code,
// the factories that collaborate with it and the test suite that drives them.
// The factorygen tool emits code against this package only; it never touches
// the persistence layer behind the resource handle.
package factory

import (
	"context"
	"fmt"
)

// Creator is the creation capability of a collaborating factory, bound to the
// resource-handle type R. Generated BuildWithFKs code invokes it to
// auto-create missing FK dependencies and asserts at compile time that every
// auto-creating FK target factory implements it.
type Creator[R, E any] interface {
	Create(ctx context.Context, res R) (E, error)
}

// Sentinel reports whether an identifier value is the designated "unset"
// value. Identifier types used in FK fields implement it; the zero value is
// expected to be the sentinel.
type Sentinel interface {
	IsSentinel() bool
}

// SentinelOf returns the canonical sentinel of T, its zero value.
func SentinelOf[T any]() T {
	var zero T
	return zero
}

// Ptr wraps a value as present.
func Ptr[T any](v T) *T {
	return &v
}

// Clone duplicates an optional value. Nil stays nil; otherwise the pointee is
// copied so the factory and the built entity never alias one slot.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// MustSet unwraps a required-marked optional field. A nil value is a caller
// programming error: Build offers no dependency-creation escape hatch, so it
// stops abruptly naming the field and the setter that would have fixed it.
func MustSet[T any](p *T, field, setter string) T {
	if p == nil {
		panic(fmt.Sprintf("%s is required - use %s()", field, setter))
	}
	return *p
}
