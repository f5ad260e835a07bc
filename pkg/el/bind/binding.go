package bind

import (
	"github.com/el-macro/elgo/pkg/el"
)

// Binding wraps an outcome with an optional failure handler to enable
// fluent extraction. A Binding is single-use: extract once.
type Binding[V, E any] struct {
	out     el.Outcome[V, E]
	handler func(E)
}

// From starts a binding from an outcome.
func From[V, E any](out el.Outcome[V, E]) Binding[V, E] {
	return Binding[V, E]{out: out}
}

// OnFailure registers a handler invoked with the failure payload before
// extraction reports failure. The handler observes the failure; it does
// not change which path is taken.
func (b Binding[V, E]) OnFailure(handler func(E)) Binding[V, E] {
	return Binding[V, E]{out: b.out, handler: handler}
}

// Extract returns the success value and true, or runs the registered
// handler and returns false.
func (b Binding[V, E]) Extract() (V, bool) {
	if b.handler != nil {
		return ValueHandled(b.out, b.handler)
	}
	return Value(b.out)
}

// Or returns the success value, or runs the registered handler and then
// the escape block, binding the block's result.
func (b Binding[V, E]) Or(escape func() V) V {
	if b.handler != nil {
		return ValueOrHandled(b.out, b.handler, escape)
	}
	return ValueOr(b.out, escape)
}
