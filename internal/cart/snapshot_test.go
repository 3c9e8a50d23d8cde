package cart

import (
	"math"
	"testing"

	"github.com/JonMunkholm/catalogo/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Format(t *testing.T) {
	data, err := Encode([]Line{{
		Product: catalog.Product{
			ID: "1", Name: "Widget", Reference: "W-1", Description: "d",
			Price: decimal.RequireFromString("19.99"), Image: "w.png", Category: "Tools",
		},
		Quantity: 2,
	}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","name":"Widget","reference":"W-1","description":"d",
		"price":19.99,"image":"w.png","category":"Tools","quantity":2}]`, string(data))
}

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecode_NormalizesLines(t *testing.T) {
	lines, err := Decode([]byte(`[
		{"id":"1","name":"A","price":2,"quantity":1},
		{"id":"2","name":"B","price":"3.5","quantity":0},
		{"id":"1","name":"A","price":2,"quantity":4},
		{"id":"3","name":"C","quantity":2}
	]`))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "1", lines[0].Product.ID)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "3", lines[1].Product.ID)
	assert.True(t, lines[1].Product.Price.IsZero())
}

func TestDecode_MergeSaturates(t *testing.T) {
	lines, err := Decode([]byte(`[
		{"id":"1","name":"A","price":1,"quantity":9223372036854775807},
		{"id":"1","name":"A","price":1,"quantity":5}
	]`))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, math.MaxInt, lines[0].Quantity)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte(`{"not":"a list"}`))
	assert.Error(t, err)
}
