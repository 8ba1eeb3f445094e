package conform

import "reflect"

// Inspector is a predicate over an arbitrary runtime value. A true result
// licenses the caller to treat the value as the shape the inspector
// describes; no inspector may accept a value that fails its documented
// predicate. Inspectors are pure: they never mutate the value, never cache a
// result between calls, and identical inputs yield identical outputs.
//
// Any func(any) bool interoperates: combinators treat hand-written
// predicates and combinator outputs interchangeably.
type Inspector func(value any) bool

// Shape maps property keys to the inspectors their values must satisfy.
// Keys are fixed at construction time; iteration order never affects the
// result.
type Shape map[string]Inspector

// IsAny accepts every value.
func IsAny(value any) bool { return true }

// IsNever rejects every value.
func IsNever(value any) bool { return false }

// Is returns an inspector that resolves its target through supplier on every
// single check. Nothing is memoized: the supplier may reference a binding
// that does not exist yet at construction time, as long as it exists by the
// time the inspector is first applied. This is what makes self-referential
// and mutually recursive definitions possible:
//
//	var isTree conform.Inspector
//	isTree = conform.IsObjectOf(conform.Shape{
//		"value":    conform.IsString,
//		"children": conform.IsArrayOf(conform.Is(func() conform.Inspector { return isTree })),
//	})
//
// A panic raised by the supplier (including calling it before the referenced
// binding is assigned) propagates to the caller untouched.
func Is(supplier func() Inspector) Inspector {
	return func(value any) bool {
		return supplier()(value)
	}
}

// As applies isT to value and, on success, recovers the value as a T. It is
// the runtime counterpart of the type refinement an inspector implies: the
// boolean result of the inspector gates the type assertion.
func As[T any](value any, isT Inspector) (T, bool) {
	if isT(value) {
		if t, ok := value.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// same reports whether two inspectors are the same function, by entry
// pointer. Combinators use it to recognize the IsAny/IsNever sentinels at
// build time; a wrapped or re-declared equivalent predicate deliberately
// does not match.
func same(a, b Inspector) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
