package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type image struct {
	URL string `json:"url" validate:"required"`
}

type sample struct {
	Name   string          `json:"name" validate:"required"`
	Value  string          `json:"value" validate:"required,min=4,startswith=#"`
	Price  decimal.Decimal `json:"price" validate:"gte=1"`
	Images []image         `json:"images" validate:"min=1,dive"`
}

func TestStructValid(t *testing.T) {
	err := Struct(sample{
		Name:   "Black",
		Value:  "#000000",
		Price:  decimal.RequireFromString("12.50"),
		Images: []image{{URL: "https://img.example/a.png"}},
	})
	assert.NoError(t, err)
}

func TestStructReportsFieldsByJSONName(t *testing.T) {
	err := Struct(sample{Value: "abc", Price: decimal.RequireFromString("0.5")})
	require.Error(t, err)

	var verrs Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Required", verrs["name"])
	assert.Equal(t, "Must contain at least 4 character(s)", verrs["value"])
	assert.Equal(t, "Must be greater than or equal to 1", verrs["price"])
	assert.Equal(t, "Must contain at least 1 item(s)", verrs["images"])
}

func TestStructNestedField(t *testing.T) {
	err := Struct(sample{
		Name:   "Black",
		Value:  "#000",
		Price:  decimal.NewFromInt(3),
		Images: []image{{URL: ""}},
	})
	var verrs Errors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("images[0].url"))
	assert.Contains(t, verrs.Error(), "images[0].url: Required")
}

func TestStructStartsWith(t *testing.T) {
	err := Struct(sample{
		Name:   "Black",
		Value:  "000000",
		Price:  decimal.NewFromInt(3),
		Images: []image{{URL: "u"}},
	})
	var verrs Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, `Must start with "#"`, verrs["value"])
}
