package blocks

import (
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"swayclock/surface"
)

// DateProvider shows the three date slots in the order the clock wrote them.
type DateProvider struct {
	s   *surface.Surface
	blk Block
}

func NewDateProvider(e *Env) *DateProvider { return &DateProvider{s: e.Surface} }

func (d *DateProvider) Name() string   { return "date" }
func (d *DateProvider) Current() Block { return d.blk }

func (d *DateProvider) Refresh() bool {
	var parts []string
	for _, id := range []string{"date-aa", "date-bb", "date-cc"} {
		if t := d.s.El(id).Text(); t != "" {
			parts = append(parts, t)
		}
	}
	blk := Block{
		Name:                "date",
		FullText:            strings.Join(parts, " "),
		Separator:           false,
		SeparatorBlockWidth: SeparatorWidth,
	}
	if blk == d.blk {
		return false
	}
	d.blk = blk
	return true
}

// GreetingProvider shows the time-of-day greeting and the optional name.
type GreetingProvider struct {
	s    *surface.Surface
	lang func() language.Tag
	blk  Block
}

func NewGreetingProvider(e *Env) *GreetingProvider {
	lang := e.Lang
	if lang == nil {
		lang = func() language.Tag { return language.English }
	}
	return &GreetingProvider{s: e.Surface, lang: lang}
}

func (g *GreetingProvider) Name() string   { return "greeting" }
func (g *GreetingProvider) Current() Block { return g.blk }

func (g *GreetingProvider) Refresh() bool {
	greeting := g.s.El("greeting").Text()
	if g.s.El("greetings").Style("text-transform") == "capitalize" {
		greeting = cases.Title(g.lang(), cases.NoLower).String(greeting)
	}
	name := g.s.El("greeting-name").Text()

	text := html.EscapeString(greeting)
	if name != "" {
		text += "<b>" + html.EscapeString(name) + "</b>"
	}
	blk := Block{
		Name:                "greeting",
		FullText:            text,
		Separator:           false,
		SeparatorBlockWidth: SeparatorWidth,
		Markup:              "pango",
	}
	if blk == g.blk {
		return false
	}
	g.blk = blk
	return true
}
