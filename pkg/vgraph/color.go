package vgraph

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownColorModel is returned when a color value carries a model tag
// outside the defined set, or when a serialized color matches neither the
// HSLA nor the RGBA field shape.
var ErrUnknownColorModel = errors.New("unknown color model")

// ColorModel discriminates the variants of the ColorValue union.
type ColorModel int

const (
	// ModelHSLA selects the hue/saturation/lightness payload.
	ModelHSLA ColorModel = iota
	// ModelRGBA selects the red/green/blue payload.
	ModelRGBA
)

func (m ColorModel) String() string {
	switch m {
	case ModelHSLA:
		return "hsla"
	case ModelRGBA:
		return "rgba"
	default:
		return fmt.Sprintf("ColorModel(%d)", int(m))
	}
}

// HSLA is a hue/saturation/lightness/alpha color.
type HSLA struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
	A float64 `json:"a"`
}

// RGBA is a red/green/blue/alpha color.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// ColorValue is a tagged union over the two color representations. On the
// wire it is a bare HSLA or RGBA object; the variant is recovered from the
// field names, matching documents written by earlier authoring tools.
type ColorValue struct {
	Model ColorModel
	HSLA  HSLA // Model == ModelHSLA
	RGBA  RGBA // Model == ModelRGBA
}

// HSLAValue builds an HSLA color value.
func HSLAValue(h, s, l, a float64) ColorValue {
	return ColorValue{Model: ModelHSLA, HSLA: HSLA{H: h, S: s, L: l, A: a}}
}

// RGBAValue builds an RGBA color value.
func RGBAValue(r, g, b, a float64) ColorValue {
	return ColorValue{Model: ModelRGBA, RGBA: RGBA{R: r, G: g, B: b, A: a}}
}

// MarshalJSON writes the selected payload as a bare object.
func (c ColorValue) MarshalJSON() ([]byte, error) {
	switch c.Model {
	case ModelHSLA:
		return json.Marshal(c.HSLA)
	case ModelRGBA:
		return json.Marshal(c.RGBA)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownColorModel, int(c.Model))
	}
}

// UnmarshalJSON sniffs the variant from the field names. Objects carrying
// an "h" key decode as HSLA, objects carrying an "r" key as RGBA.
func (c *ColorValue) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch {
	case probe["h"] != nil:
		var v HSLA
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = ColorValue{Model: ModelHSLA, HSLA: v}
		return nil
	case probe["r"] != nil:
		var v RGBA
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = ColorValue{Model: ModelRGBA, RGBA: v}
		return nil
	default:
		return fmt.Errorf("%w: object has neither h nor r", ErrUnknownColorModel)
	}
}
