package match

import (
	"github.com/el-macro/elgo/pkg/el"
)

// Pair carries two values through composite shapes.
type Pair[A, B any] struct {
	Left  A
	Right B
}

func PairOf[A, B any](left A, right B) Pair[A, B] {
	return Pair[A, B]{Left: left, Right: right}
}

// Present is the shape of a present option; it binds the inner value.
func Present[T any](o el.Option[T]) (T, bool) {
	return o.Get()
}

// Both lifts two shapes over a Pair: it matches when both sides match,
// binding both sides' parts.
func Both[A, AP, B, BP any](left func(A) (AP, bool), right func(B) (BP, bool)) func(Pair[A, B]) (Pair[AP, BP], bool) {
	return func(p Pair[A, B]) (Pair[AP, BP], bool) {
		lp, ok := left(p.Left)
		if !ok {
			return Pair[AP, BP]{}, false
		}
		rp, ok := right(p.Right)
		if !ok {
			return Pair[AP, BP]{}, false
		}
		return Pair[AP, BP]{Left: lp, Right: rp}, true
	}
}
