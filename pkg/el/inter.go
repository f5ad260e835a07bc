package el

// Source is the conversion capability: implementing it lets a type
// participate in extract-or-exit binding. Any failure is represented as
// the Failure variant of the returned Outcome, never as a second-order
// error. Conversion may have side effects; resource-acquiring sources
// (see package lock) perform the acquisition attempt inside IntoOutcome.
type Source[V, E any] interface {
	// IntoOutcome consumes the source and reports its definite outcome.
	IntoOutcome() Outcome[V, E]
}

// Into converts through the capability. Call sites that hold a concrete
// source usually call IntoOutcome directly; Into exists for code that
// carries the capability as an interface value.
func Into[V, E any](src Source[V, E]) Outcome[V, E] {
	return src.IntoOutcome()
}
