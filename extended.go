package conform

import (
	"reflect"

	"github.com/conformlabs/conform/internal/values"
)

// IsNumberBetween accepts numeric values v with min <= v <= max, both ends
// inclusive. NaN never satisfies the bounds.
func IsNumberBetween(min, max float64) Inspector {
	return func(value any) bool {
		f, ok := values.Float(value)
		return ok && min <= f && f <= max
	}
}

// IsNonEmptyArray accepts arrays with at least one element.
func IsNonEmptyArray(value any) bool {
	return IsArray(value) && reflect.ValueOf(value).Len() > 0
}

// IsNonEmptyArrayOf accepts arrays with at least one element, all of which
// satisfy isT.
func IsNonEmptyArrayOf(isT Inspector) Inspector {
	elements := IsArrayOf(isT)
	return func(value any) bool {
		return IsNonEmptyArray(value) && elements(value)
	}
}

// IsRefined accepts values that satisfy isT and then every predicate, in
// order. The predicates run only once the base inspector has passed and
// short-circuit on the first failure, so they may assume the narrowed shape.
func IsRefined(isT Inspector, predicates ...Inspector) Inspector {
	return func(value any) bool {
		if !isT(value) {
			return false
		}
		for _, p := range predicates {
			if !p(value) {
				return false
			}
		}
		return true
	}
}
