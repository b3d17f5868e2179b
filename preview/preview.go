// Package preview draws the clock surface in a terminal.
package preview

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"swayclock/surface"
	"swayclock/theme"
)

const faceWidth = 13

var (
	greetingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	frameStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

var arrows = [8]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// Render lays out the greeting, the time and the date as they currently
// stand on s. tag is used for title casing the greeting.
func Render(s *surface.Surface, tag language.Tag) string {
	var rows []string
	if g := greeting(s, tag); g != "" {
		rows = append(rows, g)
	}
	if s.El("time").HasClass("analog") {
		rows = append(rows, analog(s))
	} else {
		rows = append(rows, timeStyle.Render(digital(s)))
	}
	if d := date(s); d != "" {
		rows = append(rows, dateStyle.Render(d))
	}
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func greeting(s *surface.Surface, tag language.Tag) string {
	text := s.El("greeting").Text()
	name := s.El("greeting-name").Text()
	if text == "" && name == "" {
		return ""
	}
	if s.El("greetings").Style("text-transform") == "capitalize" {
		text = cases.Title(tag, cases.NoLower).String(text)
	}
	out := greetingStyle.Render(text)
	if name != "" {
		out += nameStyle.Render(name)
	}
	return out
}

func digital(s *surface.Surface) string {
	text := s.El("digital-hh").Text() + ":" + s.El("digital-mm").Text()
	if s.El("time").HasClass("seconds") {
		text += ":" + s.El("digital-ss").Text()
	}
	return text
}

func date(s *surface.Surface) string {
	var parts []string
	for _, id := range []string{"date-aa", "date-bb", "date-cc"} {
		if t := s.El(id).Text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// analog draws the four face glyphs around the hour and minute hands,
// framed by a border matching the face shape.
func analog(s *surface.Surface) string {
	el := s.El("analog")
	glyph := func(i int) string { return s.El("analog-face-" + strconv.Itoa(i)).Text() }

	hands := arrow(s.El("analog-hours").Style("--deg")) + arrow(s.El("analog-minutes").Style("--deg"))
	if s.El("time").HasClass("seconds") {
		hands += arrow(s.El("analog-seconds").Style("--deg"))
	}
	side := (faceWidth - lipgloss.Width(hands)) / 2
	face := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(faceWidth, lipgloss.Center, glyph(0)),
		lipgloss.PlaceHorizontal(side, lipgloss.Left, glyph(3))+
			hands+
			lipgloss.PlaceHorizontal(faceWidth-side-lipgloss.Width(hands), lipgloss.Right, glyph(1)),
		lipgloss.PlaceHorizontal(faceWidth, lipgloss.Center, glyph(2)),
	)

	style := lipgloss.NewStyle().Border(border(el.Data("shape")))
	if c, ok := flatten(el.Style("--analog-border")); ok {
		style = style.BorderForeground(lipgloss.Color(c))
	}
	if !el.HasClass("transparent") {
		if c, ok := flatten(el.Style("--analog-background")); ok {
			style = style.Background(lipgloss.Color(c))
		}
	}
	return style.Render(face)
}

func border(shape string) lipgloss.Border {
	switch shape {
	case "square":
		return lipgloss.NormalBorder()
	case "rectangle":
		return lipgloss.ThickBorder()
	}
	return lipgloss.RoundedBorder()
}

// arrow picks the direction nearest to a "<n>deg" hand angle.
func arrow(deg string) string {
	angle, err := strconv.ParseFloat(strings.TrimSuffix(deg, "deg"), 64)
	if err != nil {
		return arrows[0]
	}
	i := int(math.Round(angle/45)) % len(arrows)
	if i < 0 {
		i += len(arrows)
	}
	return arrows[i]
}

// flatten blends a CSS rgba value over black; terminals have no alpha.
func flatten(css string) (string, bool) {
	rgb, alpha, ok := theme.ParseRGBA(css)
	if !ok {
		return "", false
	}
	c, err := theme.Blend(rgb, alpha, colorful.Color{})
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}
