// Package values holds the reflection plumbing shared by the conform
// inspectors: absence probes, truthiness, object key walks, property lookup
// and element iteration. Everything here is pure; no helper ever mutates the
// value it is handed.
package values

import (
	"math"
	"reflect"
)

// Undefined reports whether v is the untyped nil interface, the "no value at
// all" marker. Reading a missing map key or an out-of-range tuple index
// yields this sentinel.
func Undefined(v any) bool { return v == nil }

// Null reports whether v is a typed nil: a non-nil interface holding a nil
// pointer, map, slice, chan, func or interface. This plays the role of the
// explicit null marker, distinct from Undefined.
func Null(v any) bool {
	if v == nil {
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Nullish reports whether v is either absence marker.
func Nullish(v any) bool { return v == nil || Null(v) }

// Truthy reports whether v is neither nullish nor a zero of the scalar
// kinds: false, numeric zero, NaN, or the empty string. Containers are
// always truthy, even when empty.
func Truthy(v any) bool {
	if Nullish(v) {
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == f && f != 0
	case reflect.String:
		return rv.Len() != 0
	}
	return true
}

// Number reports whether v belongs to the numeric kinds (signed, unsigned or
// floating point). Non-finite floats count as numbers.
func Number(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Float coerces a numeric v to float64.
func Float(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// Integral reports whether v is numeric, finite and has no fractional part.
// NaN and the infinities are rejected here even though Number accepts them.
func Integral(v any) bool {
	if v == nil {
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
	}
	return false
}

// Int64 returns the integral value of v, when it has one.
func Int64(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

// InUintRange reports whether v is integer-valued and round-trips through
// the unsigned range [0, max].
func InUintRange(v any, max uint64) bool {
	if v == nil {
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		return n >= 0 && uint64(n) <= max
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() <= max
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < 0 {
			return false
		}
		return f <= float64(max)
	}
	return false
}

// StringValue extracts v's string when it is of string kind. Named string
// types qualify alongside the plain string type.
func StringValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// Object reports whether v is object-shaped: a non-nullish map, struct or
// pointer to struct.
func Object(v any) bool {
	if Nullish(v) {
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Map, reflect.Struct:
		return true
	case reflect.Pointer:
		return rv.Type().Elem().Kind() == reflect.Struct
	}
	return false
}

// Record reports whether v is a plain data object: object-shaped, with an
// empty method set, and string-keyed if it is a map. Objects with methods or
// non-string map keys are instances, not records.
func Record(v any) bool {
	if !Object(v) {
		return false
	}
	t := reflect.TypeOf(v)
	if t.NumMethod() != 0 {
		return false
	}
	if t.Kind() == reflect.Map {
		return t.Key().Kind() == reflect.String
	}
	return true
}

// deref unwraps a pointer-to-struct so key walks and lookups see the struct
// itself. Other values pass through untouched.
func deref(rv reflect.Value) reflect.Value {
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		return rv.Elem()
	}
	return rv
}

// Keys enumerates v's own keys: the keys of a string-keyed map, or the
// exported field names of a struct (or pointer to struct). Anything else has
// no keys.
func Keys(v any) []string {
	if v == nil {
		return nil
	}
	rv := deref(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		return keys
	case reflect.Struct:
		t := rv.Type()
		var keys []string
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() && !f.Anonymous {
				keys = append(keys, f.Name)
			}
		}
		return keys
	}
	return nil
}

// Lookup returns the property key of v. A missing key, an unexported field
// or a value without properties yields untyped nil, the undefined sentinel,
// so shape inspectors see genuine absence rather than an error.
func Lookup(v any, key string) any {
	if v == nil {
		return nil
	}
	rv := deref(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil
		}
		kv := reflect.ValueOf(key)
		if kv.Type() != kt {
			kv = kv.Convert(kt)
		}
		ev := rv.MapIndex(kv)
		if !ev.IsValid() {
			return nil
		}
		return ev.Interface()
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(key)
		if !ok || !f.IsExported() {
			return nil
		}
		return rv.FieldByIndex(f.Index).Interface()
	}
	return nil
}

// SeqFunc reports whether t has the shape of an iter.Seq or iter.Seq2
// function: func(yield func(...) bool) with one or two yield arguments.
func SeqFunc(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.IsVariadic() {
		return false
	}
	return (y.NumIn() == 1 || y.NumIn() == 2) &&
		y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

// Iterable reports whether v exposes an iteration entry point: the
// rangeable kinds, or a seq-shaped func. It does not verify that a seq func
// actually behaves; that is the caller's contract.
func Iterable(v any) bool {
	if Nullish(v) {
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return true
	case reflect.Func:
		return SeqFunc(rv.Type())
	}
	return false
}

// Each walks v's elements, calling visit until it returns false. Slices and
// arrays yield elements, maps yield keys, strings yield runes, seq funcs are
// driven through a reflective yield (a Seq2 yields []any{k, v} pairs). The
// return value reports whether v was walkable at all: channels are rangeable
// but walking one would consume it, so they are not walkable.
func Each(v any, visit func(elem any) bool) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !visit(rv.Index(i).Interface()) {
				break
			}
		}
		return true
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if !visit(iter.Key().Interface()) {
				break
			}
		}
		return true
	case reflect.String:
		for _, r := range rv.String() {
			if !visit(r) {
				break
			}
		}
		return true
	case reflect.Func:
		return eachSeq(rv, visit)
	}
	return false
}

func eachSeq(rv reflect.Value, visit func(elem any) bool) bool {
	if !SeqFunc(rv.Type()) || rv.IsNil() {
		return false
	}
	yieldType := rv.Type().In(0)
	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		var elem any
		if len(args) == 1 {
			elem = args[0].Interface()
		} else {
			pair := make([]any, len(args))
			for i, a := range args {
				pair[i] = a.Interface()
			}
			elem = pair
		}
		return []reflect.Value{reflect.ValueOf(visit(elem))}
	})
	rv.Call([]reflect.Value{yield})
	return true
}

// HasMethod reports whether v exposes a callable method with the given
// name, on either the value or its pointer type. The method's signature is
// not inspected.
func HasMethod(v any, name string) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	if _, ok := t.MethodByName(name); ok {
		return true
	}
	if t.Kind() != reflect.Pointer {
		if _, ok := reflect.PointerTo(t).MethodByName(name); ok {
			return true
		}
	}
	return false
}

// Length returns v's length entry and whether it carries one: the native
// length of a string, a Len() int method, or an integer-valued
// "length"/"Length" property. Negative lengths are returned as-is; callers
// that care must validate them.
func Length(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return int64(rv.Len()), true
	}
	if l, ok := v.(interface{ Len() int }); ok {
		return int64(l.Len()), true
	}
	for _, key := range []string{"length", "Length"} {
		if n := Lookup(v, key); n != nil {
			if i, ok := Int64(n); ok {
				return i, true
			}
		}
	}
	return 0, false
}
