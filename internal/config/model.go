package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DPI holds pixels-per-inch values. Only rasterization backends without
// DPI autodetection consult these.
type DPI struct {
	x float64
	y float64
}

func defaultDPI() DPI {
	return DPI{x: 96.0, y: 96.0}
}

// X returns the horizontal dpi.
func (d DPI) X() float64 { return d.x }

// Y returns the vertical dpi.
func (d DPI) Y() float64 { return d.y }

func (d *DPI) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		X *float64 `yaml:"x"`
		Y *float64 `yaml:"y"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.X == nil {
		return missingKey(value, "dpi", "x")
	}
	if raw.Y == nil {
		return missingKey(value, "dpi", "y")
	}
	d.x = *raw.X
	d.y = *raw.Y
	return nil
}

func (d DPI) MarshalYAML() (any, error) {
	return struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	}{d.x, d.y}, nil
}

// Font holds the font selection and metrics adjustments. A present `font`
// section requires every field; defaults exist only for the section as a
// whole, chosen per platform.
type Font struct {
	family string
	style  string
	size   float64
	offset FontOffset
}

// Family returns the font family name.
func (f Font) Family() string { return f.family }

// Style returns the font style name.
func (f Font) Style() string { return f.style }

// Size returns the font size in points.
func (f Font) Size() float64 { return f.size }

// Offset returns the spacing adjustments applied per glyph and per line.
func (f Font) Offset() FontOffset { return f.offset }

func (f *Font) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Family *string     `yaml:"family"`
		Style  *string     `yaml:"style"`
		Size   *float64    `yaml:"size"`
		Offset *FontOffset `yaml:"offset"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Family == nil {
		return missingKey(value, "font", "family")
	}
	if raw.Style == nil {
		return missingKey(value, "font", "style")
	}
	if raw.Size == nil {
		return missingKey(value, "font", "size")
	}
	if raw.Offset == nil {
		return missingKey(value, "font", "offset")
	}
	f.family = *raw.Family
	f.style = *raw.Style
	f.size = *raw.Size
	f.offset = *raw.Offset
	return nil
}

func (f Font) MarshalYAML() (any, error) {
	return struct {
		Family string     `yaml:"family"`
		Style  string     `yaml:"style"`
		Size   float64    `yaml:"size"`
		Offset FontOffset `yaml:"offset"`
	}{f.family, f.style, f.size, f.offset}, nil
}

// FontOffset holds extra horizontal letter spacing and extra vertical line
// spacing. Cell size computation may not suit every font; these let the
// user tweak the result.
type FontOffset struct {
	x float64
	y float64
}

// X returns the extra letter spacing.
func (o FontOffset) X() float64 { return o.x }

// Y returns the extra line spacing.
func (o FontOffset) Y() float64 { return o.y }

func (o *FontOffset) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		X *float64 `yaml:"x"`
		Y *float64 `yaml:"y"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.X == nil {
		return missingKey(value, "font.offset", "x")
	}
	if raw.Y == nil {
		return missingKey(value, "font.offset", "y")
	}
	o.x = *raw.X
	o.y = *raw.Y
	return nil
}

func (o FontOffset) MarshalYAML() (any, error) {
	return struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	}{o.x, o.y}, nil
}

func missingKey(node *yaml.Node, section, key string) error {
	return fmt.Errorf("line %d: %s: missing required key %q", node.Line, section, key)
}
