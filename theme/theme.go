package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Minimal color policy: only the error block is coloured by us.
// Clock blocks otherwise take their colours from the analog style.

type Palette struct {
	Danger string
}

var DefaultPalette = Palette{
	Danger: "#bf616a", // red
}

// Current holds the active palette.
var Current = DefaultPalette

type Severity int

const (
	SeverityNormal Severity = iota
	SeverityDanger
)

// ColorFor returns the hex color and true if severity maps to a color.
func ColorFor(sev Severity) (string, bool) {
	switch sev {
	case SeverityDanger:
		return Current.Danger, true
	default:
		return "", false
	}
}

// ParseRGB reads an "R, G, B" triplet of 0..255 components.
func ParseRGB(s string) (colorful.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("rgb %q: want 3 components", s)
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return colorful.Color{}, fmt.Errorf("rgb %q: bad component %q", s, p)
		}
		c[i] = float64(v) / 255
	}
	return colorful.Color{R: c[0], G: c[1], B: c[2]}, nil
}

// RGBA formats an "R, G, B" triplet and alpha as #RRGGBBAA, the form
// swaybar accepts for block colours.
func RGBA(rgb string, alpha float64) (string, error) {
	c, err := ParseRGB(rgb)
	if err != nil {
		return "", err
	}
	a := int(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	return fmt.Sprintf("%s%02x", c.Hex(), a), nil
}

// Blend flattens an "R, G, B" colour with alpha over base, for outputs with
// no alpha channel.
func Blend(rgb string, alpha float64, base colorful.Color) (colorful.Color, error) {
	c, err := ParseRGB(rgb)
	if err != nil {
		return colorful.Color{}, err
	}
	return base.BlendRgb(c, math.Max(0, math.Min(1, alpha))).Clamped(), nil
}

// ParseRGBA splits a CSS "rgba(R, G, B, A)" value into its triplet and alpha.
func ParseRGBA(s string) (rgb string, alpha float64, ok bool) {
	inner, found := strings.CutPrefix(strings.TrimSpace(s), "rgba(")
	if !found {
		return "", 0, false
	}
	inner = strings.TrimSuffix(inner, ")")
	i := strings.LastIndex(inner, ",")
	if i < 0 {
		return "", 0, false
	}
	alpha, err := strconv.ParseFloat(strings.TrimSpace(inner[i+1:]), 64)
	if err != nil {
		return "", 0, false
	}
	return inner[:i], alpha, true
}
