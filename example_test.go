package conform_test

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/conformlabs/conform"
)

var idPattern = regexp.MustCompile(`^user-\d+$`)

// ExampleIsObjectOf checks a decoded JSON document against an object shape.
// Matching is open: keys the shape does not name are ignored.
func ExampleIsObjectOf() {
	isUser := conform.IsObjectOf(conform.Shape{
		"name":  conform.IsString,
		"email": conform.IsEmail,
		"age":   conform.IsOptional(conform.IsUInt8),
	})

	var doc any
	_ = json.Unmarshal([]byte(`{"name":"Ada","email":"ada@lovelace.dev","plan":"pro"}`), &doc)

	fmt.Println(isUser(doc))
	fmt.Println(isUser(map[string]any{"name": "Ada", "email": "not-an-email"}))
	// Output:
	// true
	// false
}

// ExampleIs builds a self-referential inspector. The lazy supplier is
// re-resolved on every descent, so isTree may reference itself before the
// assignment completes.
func ExampleIs() {
	var isTree conform.Inspector
	isTree = conform.IsObjectOf(conform.Shape{
		"value":    conform.IsString,
		"children": conform.IsArrayOf(conform.Is(func() conform.Inspector { return isTree })),
	})

	tree := map[string]any{
		"value": "root",
		"children": []any{
			map[string]any{"value": "c1", "children": []any{}},
		},
	}
	fmt.Println(isTree(tree))
	// Output:
	// true
}

// ExampleAs recovers the static type an inspector implies.
func ExampleAs() {
	var value any = "ada@lovelace.dev"

	email, ok := conform.As[string](value, conform.IsEmail)
	fmt.Println(email, ok)
	// Output:
	// ada@lovelace.dev true
}

// ExampleIsAnyOf models a union the way a JSON API might accept either a
// numeric or a string identifier.
func ExampleIsAnyOf() {
	isID := conform.IsAnyOf(conform.IsUInt32, conform.IsStringMatching(idPattern))

	fmt.Println(isID(42))
	fmt.Println(isID("user-42"))
	fmt.Println(isID(-1))
	// Output:
	// true
	// true
	// false
}
