package clock

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Measurer reports the rendered width of a string in the bar font.
type Measurer interface {
	Width(s string) float64
}

// RuneMeasurer measures in terminal cells. Every digit is one cell, so the
// table it yields is flat.
type RuneMeasurer struct{}

func (RuneMeasurer) Width(s string) float64 { return float64(runewidth.StringWidth(s)) }

// Advances holds measured glyph advances for the digits "0".."n". Runes
// outside the table fall back to cell width.
type Advances []float64

func (a Advances) Width(s string) float64 {
	var w float64
	for _, r := range s {
		if i := int(r - '0'); r >= '0' && i < len(a) {
			w += a[i]
			continue
		}
		w += float64(runewidth.RuneWidth(r))
	}
	return w
}

// measureWidths returns [1, w1/w0 .. w5/w0], each ratio rounded to one decimal.
func measureWidths(m Measurer) []float64 {
	widths := []float64{1}
	zero := m.Width("0")
	for i := 1; i < 6; i++ {
		if zero <= 0 {
			widths = append(widths, 1)
			continue
		}
		widths = append(widths, round1(m.Width(string(rune('0'+i)))/zero))
	}
	return widths
}

// secondsWidth is the reserved width in ch for the seconds field whose tens
// digit is tens.
func secondsWidth(widths []float64, tens int) float64 {
	if len(widths) == 0 {
		widths = []float64{1}
	}
	if tens < 0 || tens >= len(widths) {
		tens = 0
	}
	least := widths[0]
	for _, w := range widths[1:] {
		least = math.Min(least, w)
	}
	return round1(least + widths[tens])
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
