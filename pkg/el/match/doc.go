// Package match provides the structural-match-to-optional mapper: test a
// value against a shape, optionally check a guard over the bound parts,
// and on match map the parts to an el.Option result.
//
// A shape is a function from the value to its bound parts plus a matched
// flag. The guard and the mapping see only the bound parts, and both are
// lazy: the guard runs only on a shape match, the mapping only on a match
// with a true (or absent) guard, and the mapping runs exactly once.
//
// Key constructs:
// - Map/MapIf: perform the match with or without a guard
// - Present: shape for a present option, binding its value
// - Pair/PairOf/Both: compose two values and two shapes
//
// Common usage:
//
//	avg := match.Map(match.PairOf(a, b),
//		match.Both(match.Present[int], match.Present[int]),
//		func(p match.Pair[int, int]) int { return (p.Left + p.Right) / 2 })
package match
