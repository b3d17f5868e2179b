// Package surface holds the element tree the clock renders into.
// Outputs (bar blocks, terminal preview) read it back after each render.
package surface

import "sort"

// Element is a single addressable node: text, classes, data attributes
// and style properties.
type Element struct {
	ID      string
	text    string
	classes map[string]bool
	data    map[string]string
	style   map[string]string
}

func newElement(id string) *Element {
	return &Element{
		ID:      id,
		classes: map[string]bool{},
		data:    map[string]string{},
		style:   map[string]string{},
	}
}

func (e *Element) SetText(s string) { e.text = s }
func (e *Element) Text() string     { return e.text }

func (e *Element) AddClass(names ...string) {
	for _, n := range names {
		e.classes[n] = true
	}
}

func (e *Element) RemoveClass(names ...string) {
	for _, n := range names {
		delete(e.classes, n)
	}
}

// ToggleClass forces the class on or off.
func (e *Element) ToggleClass(name string, on bool) {
	if on {
		e.classes[name] = true
		return
	}
	delete(e.classes, name)
}

// FlipClass toggles the class and reports whether it is now present.
func (e *Element) FlipClass(name string) bool {
	on := !e.classes[name]
	e.ToggleClass(name, on)
	return on
}

func (e *Element) HasClass(name string) bool { return e.classes[name] }

// Classes returns the present classes sorted by name.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (e *Element) SetData(key, val string) { e.data[key] = val }
func (e *Element) Data(key string) string  { return e.data[key] }

func (e *Element) SetStyle(prop, val string) { e.style[prop] = val }
func (e *Element) Style(prop string) string  { return e.style[prop] }

// Surface is not safe for concurrent use; the clock event loop owns it.
type Surface struct {
	els map[string]*Element
}

func New() *Surface {
	return &Surface{els: map[string]*Element{}}
}

// El returns the element for id, creating it on first use.
func (s *Surface) El(id string) *Element {
	if e, ok := s.els[id]; ok {
		return e
	}
	e := newElement(id)
	s.els[id] = e
	return e
}

// Lookup returns the element only if something has written to it.
func (s *Surface) Lookup(id string) (*Element, bool) {
	e, ok := s.els[id]
	return e, ok
}
