// Package fallback provides a pair of optional values resolved by
// precedence: the primary slot wins when present, otherwise the
// secondary slot is used.
//
//	base := option.Some("defaults.yaml")
//	user := option.None[string]()
//	path, ok := fallback.New(user, base).Unpack() // "defaults.yaml", true
//
// Values are immutable once constructed; every combinator returns a new
// pair or a plain option.Option.
package fallback

import "fallback-generator/option"

// Fallback holds a primary and a secondary optional value. Either slot
// may independently be present or absent.
type Fallback[T any] struct {
	primary   option.Option[T]
	secondary option.Option[T]
}

// New constructs a pair from the two slots. Any combination of presence
// and absence is legal.
func New[T any](primary, secondary option.Option[T]) Fallback[T] {
	return Fallback[T]{primary: primary, secondary: secondary}
}

// IsSome reports whether at least one slot holds a value.
func (f Fallback[T]) IsSome() bool {
	return f.primary.IsSome() || f.secondary.IsSome()
}

// Ref returns a pair of pointers into f's slots, for read-only
// inspection without copying the contained values. It is a package
// function rather than a method because a method on Fallback[T] cannot
// mention Fallback[*T] (instantiation cycle).
func Ref[T any](f *Fallback[T]) Fallback[*T] {
	return New(
		option.When(f.primary.IsSome(), f.primary.Ptr()),
		option.When(f.secondary.IsSome(), f.secondary.Ptr()),
	)
}

// Get resolves the pair: the primary value if present, else the
// secondary, else None.
func (f Fallback[T]) Get() option.Option[T] {
	if f.primary.IsSome() {
		return f.primary
	}

	return f.secondary
}

// Unpack resolves the pair into Go's two-value form.
func (f Fallback[T]) Unpack() (T, bool) {
	return f.Get().Get()
}

// Unzip decomposes the pair back into its raw slots.
func (f Fallback[T]) Unzip() (primary, secondary option.Option[T]) {
	return f.primary, f.secondary
}

// AndThen applies fn to the primary value first; if the primary is
// absent or fn rejects it by returning None, fn is applied to the
// secondary. fn is called at most twice and never after a present
// result is obtained.
func AndThen[T, V any](f Fallback[T], fn func(T) option.Option[V]) option.Option[V] {
	if out := option.AndThen(f.primary, fn); out.IsSome() {
		return out
	}

	return option.AndThen(f.secondary, fn)
}

// Map applies fn to whichever slots are present, preserving the
// occupancy pattern. fn cannot reject; use AndThen for that.
func Map[T, V any](f Fallback[T], fn func(T) V) Fallback[V] {
	return New(option.Map(f.primary, fn), option.Map(f.secondary, fn))
}

// Flatten collapses a pair of nested options slot by slot.
func Flatten[T any](f Fallback[option.Option[T]]) Fallback[T] {
	return New(option.Flatten(f.primary), option.Flatten(f.secondary))
}

// AnySlice resolves the pair treating an empty slice as absent, so an
// empty primary falls through to the secondary.
func AnySlice[S ~[]E, E any](f Fallback[S]) option.Option[S] {
	return AndThen(f, func(s S) option.Option[S] {
		return option.When(len(s) > 0, s)
	})
}

// AnyMap resolves the pair treating an empty map as absent.
func AnyMap[M ~map[K]V, K comparable, V any](f Fallback[M]) option.Option[M] {
	return AndThen(f, func(m M) option.Option[M] {
		return option.When(len(m) > 0, m)
	})
}

// AnyString resolves the pair treating an empty string as absent.
func AnyString[T ~string](f Fallback[T]) option.Option[T] {
	return AndThen(f, func(s T) option.Option[T] {
		return option.When(len(s) > 0, s)
	})
}
