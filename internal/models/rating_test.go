package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingKey(t *testing.T) {
	r := Rating{UserID: "anjo1257", ClipID: "clip_001"}
	assert.Equal(t, "anjo1257_clip_001", r.Key())
	assert.Equal(t, "anjo1257_clip_001.json", r.Filename())
}

func TestRatingIsComplete(t *testing.T) {
	dims := []RatingDimension{
		{Name: "creativity", Kind: DimensionKindDiscrete, Required: true},
		{Name: "technical_correctness", Kind: DimensionKindDiscrete},
		{Name: "comment", Kind: DimensionKindText},
	}

	tests := []struct {
		name     string
		rating   Rating
		complete bool
	}{
		{
			name:     "required dimension answered",
			rating:   Rating{Values: map[string]any{"creativity": float64(2)}},
			complete: true,
		},
		{
			name:     "required dimension missing",
			rating:   Rating{Values: map[string]any{"technical_correctness": float64(1)}},
			complete: false,
		},
		{
			name:     "required dimension explicitly nil",
			rating:   Rating{Values: map[string]any{"creativity": nil}},
			complete: false,
		},
		{
			name:     "no values at all",
			rating:   Rating{},
			complete: false,
		},
		{
			name:     "not recognized overrides missing values",
			rating:   Rating{NotRecognized: true},
			complete: true,
		},
		{
			name:     "zero is a valid scale value",
			rating:   Rating{Values: map[string]any{"creativity": float64(0)}},
			complete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.complete, tt.rating.IsComplete(dims))
		})
	}
}

func TestRatingIsCompleteTextDimension(t *testing.T) {
	dims := []RatingDimension{
		{Name: "comment", Kind: DimensionKindText, Required: true},
	}

	assert.False(t, Rating{Values: map[string]any{"comment": ""}}.IsComplete(dims))
	assert.True(t, Rating{Values: map[string]any{"comment": "nice turn"}}.IsComplete(dims))
}

func TestRatingMissingDimensions(t *testing.T) {
	dims := []RatingDimension{
		{Name: "creativity", Required: true},
		{Name: "aesthetic_appeal", Required: true},
		{Name: "technical_correctness"},
	}

	r := Rating{Values: map[string]any{"creativity": float64(3)}}
	assert.Equal(t, []string{"aesthetic_appeal"}, r.MissingDimensions(dims))

	r.NotRecognized = true
	assert.Nil(t, r.MissingDimensions(dims))
}

func TestDimensionInBounds(t *testing.T) {
	d := RatingDimension{Name: "creativity", Kind: DimensionKindDiscrete, Min: -3, Max: 3}
	assert.True(t, d.InBounds(0))
	assert.True(t, d.InBounds(-3))
	assert.True(t, d.InBounds(3))
	assert.False(t, d.InBounds(4))
	assert.False(t, d.InBounds(-4))

	unbounded := RatingDimension{Name: "comment", Kind: DimensionKindText}
	assert.True(t, unbounded.InBounds(1000))
}

func TestDefaultDimensions(t *testing.T) {
	dims := DefaultDimensions()
	assert.Len(t, dims, 3)
	assert.Equal(t, "creativity", dims[0].Name)
	assert.True(t, dims[0].Required)
	assert.False(t, dims[1].Required)
	assert.False(t, dims[2].Required)
}
