package conform_test

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/conformlabs/conform"
)

func TestIsOptionalAndIsNullable(t *testing.T) {
	var nilPtr *int

	isOpt := conform.IsOptional(conform.IsString)
	assert.True(t, isOpt(nil), "undefined marker accepted")
	assert.True(t, isOpt("x"))
	assert.False(t, isOpt(nilPtr), "typed nil is the other marker")
	assert.False(t, isOpt(42))

	isNul := conform.IsNullable(conform.IsString)
	assert.True(t, isNul(nilPtr))
	assert.True(t, isNul("x"))
	assert.False(t, isNul(nil))
	assert.False(t, isNul(42))
}

func TestIsExact(t *testing.T) {
	shared := map[string]any{"a": 1}
	assert.True(t, conform.IsExact(shared)(shared))
	assert.False(t, conform.IsExact(shared)(map[string]any{"a": 1}), "structural equality does not match")

	s := []int{1}
	assert.True(t, conform.IsExact(s)(s))
	assert.False(t, conform.IsExact(s)([]int{1}))

	assert.True(t, conform.IsExact(3)(3))
	assert.False(t, conform.IsExact(3)(3.0), "different dynamic types never match")
	assert.True(t, conform.IsExact("a")("a"))
	assert.True(t, conform.IsExact(nil)(nil))
	assert.False(t, conform.IsExact(nil)(0))
	assert.False(t, conform.IsExact(math.NaN())(math.NaN()), "NaN is not identical to itself, mirroring strict equality")
}

func TestIsInstanceOf(t *testing.T) {
	assert.True(t, conform.IsInstanceOf[*bytes.Buffer]()(&bytes.Buffer{}))
	assert.False(t, conform.IsInstanceOf[*bytes.Buffer]()(bytes.Buffer{}))
	assert.True(t, conform.IsInstanceOf[time.Time]()(time.Now()))
	assert.False(t, conform.IsInstanceOf[time.Time]()("2020"))
	assert.True(t, conform.IsInstanceOf[error]()(errors.New("boom")), "interface types match implementations")
	assert.False(t, conform.IsInstanceOf[error]()(nil))
}

func TestIsIterableOf(t *testing.T) {
	t.Run("elements", func(t *testing.T) {
		isStrings := conform.IsIterableOf(conform.IsString)
		assert.True(t, isStrings([]any{"a", "b"}))
		assert.False(t, isStrings([]any{"a", 1}))
		assert.False(t, isStrings(42))
		assert.True(t, isStrings(map[string]int{"a": 1}), "maps yield their keys")
		assert.True(t, conform.IsIterableOf(conform.IsInt)("abc"), "strings yield runes")
	})

	t.Run("vacuous truth and sentinel overrides", func(t *testing.T) {
		assert.True(t, conform.IsIterableOf(conform.IsString)([]string{}))
		assert.False(t, conform.IsIterableOf(conform.IsNever)([]string{}), "never wins over vacuous truth")
		assert.True(t, conform.IsIterableOf(conform.IsAny)([]string{}))
		assert.False(t, conform.IsIterableOf(conform.IsAny)(42), "the any shortcut still requires an iterable")
	})

	t.Run("seq funcs", func(t *testing.T) {
		seq := func(yield func(int) bool) {
			for _, n := range []int{1, 2, 3} {
				if !yield(n) {
					return
				}
			}
		}
		assert.True(t, conform.IsIterableOf(conform.IsInt)(seq))
		assert.False(t, conform.IsIterableOf(conform.IsString)(seq))
	})

	t.Run("channels are never drained", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 7
		assert.True(t, conform.IsIterable(ch))
		assert.False(t, conform.IsIterableOf(conform.IsInt)(ch))
		assert.True(t, conform.IsIterableOf(conform.IsAny)(ch))
		assert.Len(t, ch, 1, "the buffered value must still be there")
	})
}

func TestContainerCombinators(t *testing.T) {
	t.Run("array-of", func(t *testing.T) {
		isInts := conform.IsArrayOf(conform.IsInt)
		assert.True(t, isInts([]any{1, 2}))
		assert.True(t, isInts([]int{}))
		assert.False(t, isInts([]any{1, "2"}))
		assert.False(t, isInts(map[string]int{}), "iterable but not an array")
		assert.False(t, conform.IsArrayOf(conform.IsNever)([]int{}))
	})

	t.Run("set-of", func(t *testing.T) {
		isNames := conform.IsSetOf(conform.IsString)
		assert.True(t, isNames(map[string]struct{}{"a": {}}))
		assert.True(t, isNames(map[string]bool{"a": true}))
		assert.False(t, isNames(map[string]int{"a": 1}), "not a set encoding")
		assert.False(t, isNames([]string{"a"}))
		assert.True(t, conform.IsSetOf(conform.IsInt)(map[int]struct{}{3: {}}))
	})

	t.Run("map-of", func(t *testing.T) {
		isScores := conform.IsMapOf(conform.IsString, conform.IsInt)
		assert.True(t, isScores(map[string]int{"a": 1}))
		assert.True(t, isScores(map[string]any{}))
		assert.False(t, isScores(map[string]any{"a": "x"}))
		assert.False(t, isScores(map[int]int{1: 1}))
		assert.False(t, isScores([]int{}))
	})

	t.Run("record-of", func(t *testing.T) {
		isEnv := conform.IsRecordOf(conform.IsString, conform.IsString)
		assert.True(t, isEnv(map[string]string{"HOME": "/root"}))
		assert.True(t, isEnv(map[string]string{}))
		assert.False(t, isEnv(map[string]any{"HOME": 1}))
		assert.False(t, isEnv(time.Now()), "instances are not records")

		type env struct{ Home string }
		assert.True(t, isEnv(env{Home: "/root"}), "struct fields are entries too")
	})
}

func TestUnionIntersectionIdentities(t *testing.T) {
	inputs := []any{nil, 1, "x", 3.5, []any{}, map[string]any{}}

	for _, v := range inputs {
		assert.Equal(t, conform.IsString(v), conform.IsAnyOf(conform.IsString)(v))
		assert.Equal(t, conform.IsString(v), conform.IsAllOf(conform.IsString)(v))
		assert.False(t, conform.IsAnyOf()(v), "empty union accepts nothing")
		assert.True(t, conform.IsAllOf()(v), "empty intersection accepts everything")
	}

	isID := conform.IsAnyOf(conform.IsString, conform.IsUInt32)
	assert.True(t, isID("abc"))
	assert.True(t, isID(7))
	assert.False(t, isID(-7))

	isSmallInt := conform.IsAllOf(conform.IsInt, conform.IsNumberBetween(0, 9))
	assert.True(t, isSmallInt(5))
	assert.False(t, isSmallInt(5.5))
	assert.False(t, isSmallInt(11))
}

func TestIsTupleOf(t *testing.T) {
	isPair := conform.IsTupleOf(conform.IsInt, conform.IsString)

	assert.True(t, isPair([]any{1, "x"}))
	assert.True(t, isPair([]any{1, "x", true, 9.9}), "trailing elements are ignored; prefix match")
	assert.False(t, isPair([]any{1, 2}))
	assert.False(t, isPair([]any{1}), "missing index feeds the undefined marker")
	assert.False(t, isPair("not an array"))
	assert.True(t, conform.IsTupleOf()([]any{}), "zero inspectors only require an array")

	// An optional tail therefore accepts the shorter array.
	isLoose := conform.IsTupleOf(conform.IsInt, conform.IsOptional(conform.IsString))
	assert.True(t, isLoose([]any{1}))
	assert.True(t, isLoose([]any{1, "x"}))
	assert.False(t, isLoose([]any{1, 2}))
}

func TestIsTupleOf_PrefixLaw(t *testing.T) {
	// For arrays at least as long as the inspector list, the tuple check
	// equals the conjunction of the positional checks.
	inspectors := []conform.Inspector{conform.IsInt, conform.IsString, conform.IsBoolean}
	isTriple := conform.IsTupleOf(inspectors...)

	arrays := [][]any{
		{1, "x", true},
		{1, "x", true, "extra", 9},
		{1, 2, true},
		{"1", "x", false, nil},
	}
	for _, a := range arrays {
		want := true
		for i, isT := range inspectors {
			want = want && isT(a[i])
		}
		assert.Equal(t, want, isTriple(a), "array %v", a)
	}
}

func TestIsObjectOf(t *testing.T) {
	isUser := conform.IsObjectOf(conform.Shape{
		"name": conform.IsString,
		"nick": conform.IsOptional(conform.IsString),
	})

	t.Run("open matching", func(t *testing.T) {
		doc := map[string]any{"name": "Ada"}
		assert.True(t, isUser(doc))

		// Extra keys never change the verdict.
		doc["unrelated"] = []any{1, 2, 3}
		assert.True(t, isUser(doc))
	})

	t.Run("missing key feeds the undefined marker", func(t *testing.T) {
		assert.True(t, isUser(map[string]any{"name": "Ada"}), "optional key may be absent")
		assert.False(t, isUser(map[string]any{"name": "Ada", "nick": 1}))
		assert.False(t, isUser(map[string]any{}))
	})

	t.Run("structs and pointers to structs", func(t *testing.T) {
		type profile struct {
			Name string
			Age  int
		}
		isProfile := conform.IsObjectOf(conform.Shape{
			"Name": conform.IsString,
			"Age":  conform.IsUInt8,
		})
		assert.True(t, isProfile(profile{Name: "Ada", Age: 36}))
		assert.True(t, isProfile(&profile{Name: "Ada", Age: 36}))
		assert.False(t, isProfile(profile{Name: "Ada", Age: 300}))
	})

	t.Run("non-objects", func(t *testing.T) {
		assert.False(t, isUser(nil))
		assert.False(t, isUser("Ada"))
		assert.False(t, isUser([]any{"Ada"}))
	})
}

func TestIsPartialOf(t *testing.T) {
	shape := conform.Shape{
		"name": conform.IsString,
		"age":  conform.IsInt,
	}
	isPatch := conform.IsPartialOf(shape)

	assert.True(t, isPatch(map[string]any{}), "empty object always passes")
	assert.True(t, isPatch(map[string]any{"name": "Ada"}))
	assert.True(t, isPatch(map[string]any{"age": 36}))
	assert.False(t, isPatch(map[string]any{"name": 1}))
	assert.True(t, isPatch(map[string]any{"extra": "ignored"}), "keys outside the shape are not checked")
	assert.True(t, isPatch(map[string]any{"extra": "ignored", "age": 36}))
	assert.False(t, isPatch(map[string]any{"extra": "ignored", "age": "36"}))
	assert.False(t, isPatch("nope"))
	assert.False(t, isPatch(nil))
}
