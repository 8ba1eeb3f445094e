package conform

import (
	"reflect"

	"github.com/conformlabs/conform/internal/values"
)

// IsOptional accepts the undefined-absence marker (untyped nil, what a
// missing key yields) or anything isT accepts.
func IsOptional(isT Inspector) Inspector {
	return func(value any) bool {
		return values.Undefined(value) || isT(value)
	}
}

// IsNullable accepts the null-absence marker (a typed nil) or anything isT
// accepts.
func IsNullable(isT Inspector) Inspector {
	return func(value any) bool {
		return values.Null(value) || isT(value)
	}
}

// IsNot inverts isT. The positive refinement is lost on purpose: there is
// no concrete shape "everything except T".
func IsNot(isT Inspector) Inspector {
	return func(value any) bool {
		return !isT(value)
	}
}

// IsExact accepts only the expected value itself: comparable values by ==,
// reference kinds (pointers, maps, slices, chans, funcs) by identity of the
// reference. Structural equality is out of scope; a different map with equal
// contents does not match.
func IsExact(expected any) Inspector {
	return func(value any) bool {
		if value == nil || expected == nil {
			return value == nil && expected == nil
		}
		rv, re := reflect.ValueOf(value), reflect.ValueOf(expected)
		if rv.Type() != re.Type() {
			return false
		}
		switch rv.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return rv.Pointer() == re.Pointer()
		}
		if rv.Type().Comparable() {
			return value == expected
		}
		return false
	}
}

// IsInstanceOf accepts values that assert to T: values of type T itself, or
// implementations when T is an interface.
func IsInstanceOf[T any]() Inspector {
	return func(value any) bool {
		_, ok := value.(T)
		return ok
	}
}

// IsIterableOf accepts iterable values all of whose elements satisfy isT.
// Empty iterables pass vacuously, with two sentinel overrides resolved at
// build time: IsNever poisons the whole check (even an empty iterable
// fails), and IsAny reduces to the bare iterability test without walking a
// single element.
//
// Channels are iterable but are never drained; walking one would consume
// its values, which the purity contract forbids, so element checks over
// channels report false (unless short-circuited by the IsAny sentinel).
func IsIterableOf(isT Inspector) Inspector {
	if same(isT, IsNever) {
		return IsNever
	}
	if same(isT, IsAny) {
		return IsIterable
	}
	return func(value any) bool {
		if !values.Iterable(value) {
			return false
		}
		ok := true
		walkable := values.Each(value, func(elem any) bool {
			ok = isT(elem)
			return ok
		})
		return walkable && ok
	}
}

// IsArrayOf accepts arrays all of whose elements satisfy isT.
func IsArrayOf(isT Inspector) Inspector {
	elements := IsIterableOf(isT)
	return func(value any) bool {
		return IsArray(value) && elements(value)
	}
}

// IsSetOf accepts set-encoded maps all of whose members satisfy isT.
// Iterating a map yields its keys, which for a set are its members.
func IsSetOf(isT Inspector) Inspector {
	elements := IsIterableOf(isT)
	return func(value any) bool {
		return IsSet(value) && elements(value)
	}
}

// IsMapOf accepts maps whose keys all satisfy isK and whose values all
// satisfy isV. Keys and values are quantified independently, not as paired
// entries.
func IsMapOf(isK, isV Inspector) Inspector {
	return func(value any) bool {
		if !IsMap(value) {
			return false
		}
		iter := reflect.ValueOf(value).MapRange()
		for iter.Next() {
			if !isK(iter.Key().Interface()) || !isV(iter.Value().Interface()) {
				return false
			}
		}
		return true
	}
}

// IsRecordOf accepts plain data objects every own entry of which, viewed as
// a [key, value] pair, satisfies the tuple (isK, isV).
func IsRecordOf(isK, isV Inspector) Inspector {
	pair := IsTupleOf(isK, isV)
	return func(value any) bool {
		if !IsStruct(value) {
			return false
		}
		for _, key := range values.Keys(value) {
			if !pair([]any{key, values.Lookup(value, key)}) {
				return false
			}
		}
		return true
	}
}

// IsAnyOf accepts values accepted by at least one of the inspectors,
// short-circuiting on the first match. With no inspectors it accepts
// nothing.
func IsAnyOf(inspectors ...Inspector) Inspector {
	return func(value any) bool {
		for _, isT := range inspectors {
			if isT(value) {
				return true
			}
		}
		return false
	}
}

// IsAllOf accepts values accepted by every inspector, short-circuiting on
// the first rejection. With no inspectors it accepts everything.
func IsAllOf(inspectors ...Inspector) Inspector {
	return func(value any) bool {
		for _, isT := range inspectors {
			if !isT(value) {
				return false
			}
		}
		return true
	}
}

// IsTupleOf accepts arrays whose element i satisfies inspector i for every
// inspector given. The match is a prefix match: trailing elements beyond the
// inspector count are ignored, and an index past the end of the array feeds
// the undefined sentinel to its inspector (so an IsOptional tail accepts a
// shorter array). Both relaxations are part of the contract.
func IsTupleOf(inspectors ...Inspector) Inspector {
	return func(value any) bool {
		if !IsArray(value) {
			return false
		}
		rv := reflect.ValueOf(value)
		n := rv.Len()
		for i, isT := range inspectors {
			var elem any
			if i < n {
				elem = rv.Index(i).Interface()
			}
			if !isT(elem) {
				return false
			}
		}
		return true
	}
}

// IsObjectOf accepts objects whose properties satisfy the shape. Matching
// is open: properties of the value not named in the shape are ignored. A
// missing property feeds the undefined sentinel to its inspector as-is, so a
// shape entry of IsOptional accepts a genuinely absent key.
func IsObjectOf(shape Shape) Inspector {
	return func(value any) bool {
		if !IsObject(value) {
			return false
		}
		for key, isT := range shape {
			if !isT(values.Lookup(value, key)) {
				return false
			}
		}
		return true
	}
}

// IsPartialOf accepts objects each of whose own keys, where the shape also
// names that key, satisfies the shape's inspector. The walk is driven by the
// value's keys, not the shape's: keys named only in the shape are not
// checked at all, so an empty object always passes. This is deliberately
// different from a shape of all-optional entries.
func IsPartialOf(shape Shape) Inspector {
	return func(value any) bool {
		if !IsObject(value) {
			return false
		}
		for _, key := range values.Keys(value) {
			isT, ok := shape[key]
			if !ok {
				continue
			}
			if !isT(values.Lookup(value, key)) {
				return false
			}
		}
		return true
	}
}
