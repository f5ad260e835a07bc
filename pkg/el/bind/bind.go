package bind

import (
	"github.com/el-macro/elgo/pkg/el"
)

// Value extracts the success value of out. On failure it reports false
// with the zero value; the caller decides how to escape.
func Value[V, E any](out el.Outcome[V, E]) (V, bool) {
	if out.IsSuccess() {
		return out.Value(), true
	}
	var zero V
	return zero, false
}

// ValueHandled extracts the success value of out. On failure the handler
// is called exactly once with the failure payload, unmodified, before
// false is reported.
func ValueHandled[V, E any](out el.Outcome[V, E], handler func(E)) (V, bool) {
	if out.IsSuccess() {
		return out.Value(), true
	}
	handler(out.Fault())
	var zero V
	return zero, false
}

// ValueOr extracts the success value of out, or evaluates escape and
// binds its result instead. Escape runs only on failure.
func ValueOr[V, E any](out el.Outcome[V, E], escape func() V) V {
	if out.IsSuccess() {
		return out.Value()
	}
	return escape()
}

// ValueOrHandled extracts the success value of out. On failure the
// handler runs to completion first, then escape; the escape result
// becomes the binding value. The handler cannot skip the escape step.
func ValueOrHandled[V, E any](out el.Outcome[V, E], handler func(E), escape func() V) V {
	if out.IsSuccess() {
		return out.Value()
	}
	handler(out.Fault())
	return escape()
}
