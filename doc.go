/*
Package conform is a composable runtime value-inspection library: small
boolean predicates ("inspectors") that test whether an arbitrary value
conforms to a shape, and combinators that build complex inspectors out of
simpler ones.

An Inspector is a plain func(any) bool. Leaf inspectors classify values by
runtime category (IsString, IsInt, IsStruct, ...); combinators wrap existing
inspectors into richer ones (IsOptional, IsArrayOf, IsAnyOf, IsObjectOf,
...). A caller builds the inspector graph once, then applies the resulting
function repeatedly; every application is a pure, synchronous walk over the
combinator graph and the input value. Nothing is mutated, nothing is cached,
there is no error type anywhere: the whole surface is boolean-valued.

# Categories

Values are classified by reflection, not by nominal type, with two absence
markers kept distinct: untyped nil (what a missing map key yields, accepted
by IsUndefined and IsOptional) and typed nils such as a nil *T or nil map
(accepted by IsNull and IsNullable). IsNullish accepts both without
distinguishing. Note that decoded JSON null arrives as untyped nil.

"Objects" are maps, structs and pointers to structs. Plain data objects —
string-keyed maps and method-less structs — are structs/records
(IsStruct/IsRecord); objects with methods of their own, like time.Time or
*bytes.Buffer, are instances (IsInstance). Sets are the conventional
map[T]struct{} / map[T]bool encodings, promises are receive-capable
channels, iterators are values with a Next method, and iterables are the
rangeable kinds plus iter.Seq / iter.Seq2 shaped funcs.

# Usage

	isUser := conform.IsObjectOf(conform.Shape{
		"name":  conform.IsString,
		"email": conform.IsEmail,
		"age":   conform.IsOptional(conform.IsUInt8),
	})

	var value any
	_ = json.Unmarshal(data, &value)
	if isUser(value) {
		// value has the declared shape
	}

Self-referential shapes are built with the lazy Is combinator, which
resolves its target through a supplier on every check, so the referenced
binding only has to exist by first call time:

	var isTree conform.Inspector
	isTree = conform.IsObjectOf(conform.Shape{
		"value":    conform.IsString,
		"children": conform.IsArrayOf(conform.Is(func() conform.Inspector { return isTree })),
	})

Any hand-written func(any) bool participates in the algebra on equal terms
with the built-ins; that is the extension seam.

# Failure modes

Non-conforming values surface as false, never as a panic. Two situations do
panic, by design: a lazy supplier that itself panics (typically because the
binding it references has not been assigned yet) propagates uncaught, and a
recursive inspector applied to cyclic input recurses until the runtime
exhausts the stack. Neither is converted into a quiet false.

Inspectors are safe for concurrent use as long as the inspected values are
not concurrently mutated by someone else; the package itself holds no shared
mutable state.
*/
package conform
