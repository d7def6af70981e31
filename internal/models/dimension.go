package models

// Dimension kind constants
const (
	DimensionKindDiscrete = "discrete" // Integer scale (e.g. 7-point Likert)
	DimensionKindSlider   = "slider"   // Continuous scale
	DimensionKindText     = "text"     // Free text
)

// RatingDimension describes one configured axis of judgment. The list of
// dimensions drives both the form the GUI renders and the completeness
// check applied before a rating is stored.
type RatingDimension struct {
	Name     string  `json:"name" mapstructure:"name"`
	Kind     string  `json:"kind" mapstructure:"kind"`
	Required bool    `json:"required" mapstructure:"required"`
	Min      float64 `json:"min,omitempty" mapstructure:"min"`
	Max      float64 `json:"max,omitempty" mapstructure:"max"`
	Label    string  `json:"label,omitempty" mapstructure:"label"`
}

// IsScale reports whether the dimension collects a numeric value.
func (d RatingDimension) IsScale() bool {
	return d.Kind == DimensionKindDiscrete || d.Kind == DimensionKindSlider
}

// InBounds reports whether a numeric value falls inside the configured
// bounds. Dimensions without bounds (Min == Max == 0) accept everything.
func (d RatingDimension) InBounds(value float64) bool {
	if d.Min == 0 && d.Max == 0 {
		return true
	}
	return value >= d.Min && value <= d.Max
}

// DefaultDimensions returns the three axes collected by the original
// creativity study: a required creativity rating plus optional technical
// correctness and aesthetic appeal, all on a 7-point scale from -3 to 3.
func DefaultDimensions() []RatingDimension {
	return []RatingDimension{
		{Name: "creativity", Kind: DimensionKindDiscrete, Required: true, Min: -3, Max: 3, Label: "Creativity"},
		{Name: "technical_correctness", Kind: DimensionKindDiscrete, Min: -3, Max: 3, Label: "Technical correctness"},
		{Name: "aesthetic_appeal", Kind: DimensionKindDiscrete, Min: -3, Max: 3, Label: "Aesthetic appeal"},
	}
}
