package el

import (
	"time"

	"github.com/google/uuid"
)

// Outcome holds either a success value V or a failure payload E,
// never both. It is produced by converting a source value, inspected
// once and discarded.
type Outcome[V, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	fault     E
	isSuccess bool
}

func Success[V, E any](v V) Outcome[V, E] {
	return Outcome[V, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[V, E any](e E) Outcome[V, E] {
	return Outcome[V, E]{
		fault:     e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Try adapts Go's native (value, error) pair: a nil error yields
// Success, a non-nil error yields Failure carrying it.
func Try[T any](v T, err error) Outcome[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](v)
}

func (o Outcome[V, E]) Value() V {
	return o.value
}

func (o Outcome[V, E]) Fault() E {
	return o.fault
}

func (o Outcome[V, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[V, E]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[V, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[V, E]) Id() uuid.UUID {
	return o.id
}

// IntoOutcome makes Outcome its own source: the identity conversion.
func (o Outcome[V, E]) IntoOutcome() Outcome[V, E] {
	return o
}
