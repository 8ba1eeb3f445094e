// Package registry names the built-in inspectors so outer surfaces (the CLI,
// shape files) can refer to them by string.
package registry

import (
	"sort"

	"github.com/conformlabs/conform"
)

var inspectors = map[string]conform.Inspector{
	"any":             conform.IsAny,
	"array":           conform.IsArray,
	"array-like":      conform.IsArrayLike,
	"bool":            conform.IsBoolean,
	"date":            conform.IsDate,
	"email":           conform.IsEmail,
	"function":        conform.IsFunction,
	"instance":        conform.IsInstance,
	"int":             conform.IsInt,
	"iso-date":        conform.IsISODateString,
	"iterable":        conform.IsIterable,
	"iterator":        conform.IsIterator,
	"map":             conform.IsMap,
	"never":           conform.IsNever,
	"non-empty-array": conform.IsNonEmptyArray,
	"null":            conform.IsNull,
	"nullish":         conform.IsNullish,
	"number":          conform.IsNumber,
	"object":          conform.IsObject,
	"record":          conform.IsRecord,
	"set":             conform.IsSet,
	"string":          conform.IsString,
	"struct":          conform.IsStruct,
	"uint32":          conform.IsUInt32,
	"uint8":           conform.IsUInt8,
	"undefined":       conform.IsUndefined,
}

// Lookup resolves a registry name to its inspector.
func Lookup(name string) (conform.Inspector, bool) {
	isT, ok := inspectors[name]
	return isT, ok
}

// Names returns every registry name, sorted.
func Names() []string {
	names := make([]string, 0, len(inspectors))
	for name := range inspectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
