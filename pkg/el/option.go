package el

// Unit is the empty failure payload used when absence itself is the
// whole failure, as with an empty Option.
type Unit struct{}

// Option is a present-or-absent value.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the value if present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// IntoOutcome converts presence to Success and absence to a Failure
// carrying Unit.
func (o Option[T]) IntoOutcome() Outcome[T, Unit] {
	if o.present {
		return Success[T, Unit](o.value)
	}
	return Failure[T](Unit{})
}
