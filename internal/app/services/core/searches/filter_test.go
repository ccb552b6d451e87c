package searches

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterParams(t *testing.T) {
	t.Run("Preserves Parameter Order", func(t *testing.T) {
		params := ParseFilterParams("price=100%2C%3E%3D&city=lyon&bedrooms=3")
		assert.Len(t, params, 3)
		assert.Equal(t, "price", params[0].Field)
		assert.Equal(t, "100,>=", params[0].Raw)
		assert.Equal(t, "city", params[1].Field)
		assert.Equal(t, "bedrooms", params[2].Field)
	})

	t.Run("Skips Reserved Keys", func(t *testing.T) {
		params := ParseFilterParams("query=loft&per_page=25&price=100")
		assert.Len(t, params, 1)
		assert.Equal(t, "price", params[0].Field)
	})

	t.Run("Empty Query String", func(t *testing.T) {
		assert.Empty(t, ParseFilterParams(""))
	})

	t.Run("Page Is Not Reserved", func(t *testing.T) {
		params := ParseFilterParams("page=2&price=100")
		assert.Len(t, params, 2)
		assert.Equal(t, "page", params[0].Field)
	})
}

func TestBuildFilterExpression(t *testing.T) {
	t.Run("Single Value Defaults To Equality", func(t *testing.T) {
		expr := BuildFilterExpression([]FilterParam{{Field: "price", Raw: "100"}})
		assert.Equal(t, "price=100", expr)
	})

	t.Run("Second Token Becomes Comparator", func(t *testing.T) {
		expr := BuildFilterExpression([]FilterParam{{Field: "price", Raw: "100,>="}})
		assert.Equal(t, "price>=100", expr)
	})

	t.Run("Extra Tokens Are Dropped", func(t *testing.T) {
		expr := BuildFilterExpression([]FilterParam{{Field: "price", Raw: "100,<,ignored,also-ignored"}})
		assert.Equal(t, "price<100", expr)
	})

	t.Run("Clauses Join With AND In Input Order", func(t *testing.T) {
		expr := BuildFilterExpression([]FilterParam{
			{Field: "price", Raw: "100,>="},
			{Field: "city", Raw: "lyon"},
			{Field: "bedrooms", Raw: "3,>"},
		})
		assert.Equal(t, "price>=100 AND city=lyon AND bedrooms>3", expr)
	})

	t.Run("No Trailing AND", func(t *testing.T) {
		expr := BuildFilterExpression([]FilterParam{
			{Field: "a", Raw: "1"},
			{Field: "b", Raw: "2"},
		})
		assert.False(t, len(expr) == 0)
		assert.NotContains(t, expr+"$", " AND $")
		assert.Equal(t, "a=1 AND b=2", expr)
	})

	t.Run("Empty Input Produces Empty Expression", func(t *testing.T) {
		assert.Equal(t, "", BuildFilterExpression(nil))
	})

	t.Run("Comparator Is Not Validated", func(t *testing.T) {
		expr := BuildFilterExpression([]FilterParam{{Field: "price", Raw: "100,banana"}})
		assert.Equal(t, "pricebanana100", expr)
	})
}
