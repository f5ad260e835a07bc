package match

import (
	"github.com/el-macro/elgo/pkg/el"
)

// Map tests v against shape. On match the mapping is evaluated exactly
// once over the bound parts and its result wrapped in Some; on no match
// the result is None and the mapping is never evaluated.
func Map[T, B, R any](v T, shape func(T) (B, bool), mapping func(B) R) el.Option[R] {
	parts, ok := shape(v)
	if !ok {
		return el.None[R]()
	}
	return el.Some(mapping(parts))
}

// MapIf is Map with a guard. The guard is evaluated only on a shape
// match, with the bound parts in scope; the mapping only when the guard
// is true.
func MapIf[T, B, R any](v T, shape func(T) (B, bool), guard func(B) bool, mapping func(B) R) el.Option[R] {
	parts, ok := shape(v)
	if !ok || !guard(parts) {
		return el.None[R]()
	}
	return el.Some(mapping(parts))
}
