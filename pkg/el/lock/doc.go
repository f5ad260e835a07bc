// Package lock adapts mutex acquisition to the el.Source capability.
// Conversion is the acquisition attempt: IntoOutcome performs it and
// reports a definite outcome, an owned Handle on success or an error on
// contention. The acquisition policy is picked by picking the source
// type:
// - TryMutex: non-blocking, contention fails with ErrContended
// - Mutex: blocking, conversion always succeeds
//
// Ownership of the acquired mutex passes to the Handle; release it with
// Release when the binding goes out of use.
package lock
