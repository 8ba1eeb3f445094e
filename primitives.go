package conform

import (
	"math"
	"reflect"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/conformlabs/conform/internal/values"
)

// IsUndefined accepts the untyped nil interface, the "no value at all"
// marker a missing map key yields.
func IsUndefined(value any) bool { return values.Undefined(value) }

// IsNull accepts typed nils: a non-nil interface holding a nil pointer,
// map, slice, chan or func.
func IsNull(value any) bool { return values.Null(value) }

// IsNullish accepts either absence marker without distinguishing them.
func IsNullish(value any) bool { return values.Nullish(value) }

// IsBoolean accepts values of bool kind.
func IsBoolean(value any) bool {
	return value != nil && reflect.ValueOf(value).Kind() == reflect.Bool
}

// IsNumber accepts every value of numeric kind, including NaN and the
// infinities. Use IsInt or IsNumberBetween when non-finite values must be
// rejected.
func IsNumber(value any) bool { return values.Number(value) }

// IsInt accepts numeric values that are finite with zero fractional part.
// NaN and the infinities fail here even though IsNumber accepts them.
func IsInt(value any) bool { return values.Integral(value) }

// IsUInt8 accepts integer values in [0, 255].
func IsUInt8(value any) bool { return values.InUintRange(value, math.MaxUint8) }

// IsUInt32 accepts values that round-trip exactly through an unsigned
// 32-bit integer: integral, non-negative and below 2^32.
func IsUInt32(value any) bool { return values.InUintRange(value, math.MaxUint32) }

// IsString accepts values of string kind; named string types qualify
// alongside the plain string type.
func IsString(value any) bool {
	_, ok := values.StringValue(value)
	return ok
}

// IsArray accepts slices and arrays only, not array-like values; see
// IsArrayLike for the permissive check.
func IsArray(value any) bool {
	if values.Nullish(value) {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// IsFunction accepts non-nil values of func kind.
func IsFunction(value any) bool {
	if values.Nullish(value) {
		return false
	}
	return reflect.ValueOf(value).Kind() == reflect.Func
}

// IsClass accepts constructor functions: callable values whose symbol base
// name begins with "New". This is a best-effort heuristic over the symbol
// table; it fails silently for anonymous funcs, method values and binaries
// whose symbols are stripped or inlined away. A known limitation, not a bug.
func IsClass(value any) bool {
	if values.Nullish(value) {
		return false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Func {
		return false
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return false
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.HasPrefix(name, "New")
}

// IsObject accepts object-shaped values: non-nullish maps, structs and
// pointers to structs. Scalars, arrays and funcs are not objects.
func IsObject(value any) bool { return values.Object(value) }

// IsStruct accepts plain data objects: objects with an empty method set
// that are structs, pointers to structs, or string-keyed maps. Objects with
// methods (time.Time, *bytes.Buffer, ...) and maps with non-string keys are
// instances, not structs.
func IsStruct(value any) bool { return values.Record(value) }

// IsRecord is an alias for IsStruct.
func IsRecord(value any) bool { return IsStruct(value) }

// IsInstance accepts objects that are not plain data: values with methods
// of their own, or collection maps with non-string keys.
func IsInstance(value any) bool {
	return values.Object(value) && !values.Record(value)
}

// IsPlainObject accepts only values whose dynamic type is exactly
// map[string]any. It is stricter than IsStruct, which also accepts
// method-less structs and other string-keyed maps; the asymmetry is part of
// the contract.
//
// Deprecated: use IsStruct.
func IsPlainObject(value any) bool {
	m, ok := value.(map[string]any)
	return ok && m != nil
}

// IsIterable accepts values that expose an iteration entry point: the
// rangeable kinds (slice, array, map, string, chan) and iter.Seq or
// iter.Seq2 shaped funcs. It does not verify that a seq func actually
// conforms when driven.
func IsIterable(value any) bool { return values.Iterable(value) }

// IsIterator accepts values that expose a callable Next method, such as
// *reflect.MapIter or *sql.Rows. The method's signature and return shape are
// not inspected.
func IsIterator(value any) bool {
	return !values.Nullish(value) && values.HasMethod(value, "Next")
}

// IsArrayLike accepts truthy values that are arrays, strings, expose a
// Len() int method, or carry an integer-valued "length"/"Length" entry.
// Negative lengths are accepted; the check is documented as permissive and
// stays that way.
func IsArrayLike(value any) bool {
	if !values.Truthy(value) {
		return false
	}
	if IsArray(value) {
		return true
	}
	_, ok := values.Length(value)
	return ok
}

// IsRegExp accepts compiled regular expressions.
func IsRegExp(value any) bool {
	switch re := value.(type) {
	case *regexp.Regexp:
		return re != nil
	case regexp.Regexp:
		return true
	}
	return false
}

// IsDate accepts time.Time values and non-nil *time.Time.
func IsDate(value any) bool {
	switch t := value.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

// IsSet accepts the conventional Go set encodings: maps whose element type
// is struct{} or bool.
func IsSet(value any) bool {
	if values.Nullish(value) {
		return false
	}
	t := reflect.TypeOf(value)
	if t.Kind() != reflect.Map {
		return false
	}
	switch e := t.Elem(); e.Kind() {
	case reflect.Struct:
		return e.NumField() == 0
	case reflect.Bool:
		return true
	}
	return false
}

// IsMap accepts non-nil values of map kind. Set-encoded maps are maps too;
// use IsSet to single them out.
func IsMap(value any) bool {
	return !values.Nullish(value) && reflect.ValueOf(value).Kind() == reflect.Map
}

// IsPromise accepts receive-capable channels, the value you await on in Go.
func IsPromise(value any) bool {
	if values.Nullish(value) {
		return false
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Chan && rv.Type().ChanDir() != reflect.SendDir
}

// IsPromiseLike accepts truthy values that are promises or expose a
// callable Wait method (sync.WaitGroup, errgroup.Group, exec.Cmd, ...). The
// Wait signature is not inspected.
func IsPromiseLike(value any) bool {
	if !values.Truthy(value) {
		return false
	}
	return IsPromise(value) || values.HasMethod(value, "Wait")
}
