package fallback

import (
	"iter"

	"fallback-generator/option"
)

// Items iterates a pair of slices in lockstep, yielding one pair per
// position. Iteration runs to the longer side: an absent or exhausted
// slice contributes None for the remaining positions, and the sequence
// ends once both sides are exhausted. Resolving each element with Get
// therefore prefers the primary element wherever one exists.
func Items[S ~[]E, E any](f Fallback[S]) iter.Seq[Fallback[E]] {
	// An absent slot iterates like an empty slice.
	primary, _ := f.primary.Get()
	secondary, _ := f.secondary.Get()

	return func(yield func(Fallback[E]) bool) {
		for i := 0; i < len(primary) || i < len(secondary); i++ {
			elem := New(
				option.When(i < len(primary), at(primary, i)),
				option.When(i < len(secondary), at(secondary, i)),
			)
			if !yield(elem) {
				return
			}
		}
	}
}

// at is a bounds-tolerant index: past-the-end positions produce the
// zero value, which option.When then discards.
func at[S ~[]E, E any](s S, i int) E {
	if i < len(s) {
		return s[i]
	}

	var zero E
	return zero
}
