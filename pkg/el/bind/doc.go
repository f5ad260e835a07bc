// Package bind provides the extract-or-exit operation over el.Outcome:
// pull the success value out, or observe the failure and take an escape
// path chosen by the caller.
//
// The escape path comes in two forms:
// - Value/ValueHandled report (value, ok); the caller's own
//   return/break/continue statement after `if !ok` is the escape action
// - ValueOr/ValueOrHandled evaluate an escape block whose result becomes
//   the replacement binding value
//
// The *Handled variants invoke a failure handler with the failure payload
// before the escape path is taken. The handler runs exactly once, its
// return value is discarded, and it can never suppress the escape path.
//
// From/Binding offer the same operations in fluent form.
//
// Common usage:
//
//	x, ok := bind.Value(el.Some(42).IntoOutcome())
//	if !ok {
//		return
//	}
//
//	f, ok := bind.ValueHandled(el.Try(os.Open(path)), logErr)
//	if !ok {
//		continue
//	}
package bind
