// Package option provides a generic optional value.
//
// Option[T] is either Some (holding a value) or None. Absence is modeled
// as a state, not an error; no operation here returns an error.
package option

// Option represents a value of type T that may be absent.
type Option[T any] struct {
	v     T
	valid bool
}

// Some constructs an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{v: v, valid: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// When returns Some(v) if ok is true, otherwise None.
func When[T any](ok bool, v T) Option[T] {
	if ok {
		return Some(v)
	}

	return None[T]()
}

// FromPtr converts a possibly-nil pointer into an Option of its pointee.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.valid }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.valid }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.valid
}

// Or returns the contained value if present, otherwise def.
func (o Option[T]) Or(def T) T {
	if o.valid {
		return o.v
	}

	return def
}

// Ptr returns a pointer to the contained value, or nil if empty.
// The pointer aliases the receiver's storage, so it must be taken
// through an addressable Option to outlive the call.
func (o *Option[T]) Ptr() *T {
	if !o.valid {
		return nil
	}

	return &o.v
}

// Map applies f to the value if present.
func Map[T, V any](o Option[T], f func(T) V) Option[V] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}

	return None[V]()
}

// AndThen applies f to the value if present; f itself may reject by
// returning None.
func AndThen[T, V any](o Option[T], f func(T) Option[V]) Option[V] {
	if v, ok := o.Get(); ok {
		return f(v)
	}

	return None[V]()
}

// Flatten collapses a nested Option.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}

	return None[T]()
}
