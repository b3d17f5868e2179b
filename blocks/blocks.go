package blocks

// Block represents an i3bar protocol block.
// Only fields actually needed now; others can be added later.
type Block struct {
	Name                string `json:"name,omitempty"`
	Instance            string `json:"instance,omitempty"`
	FullText            string `json:"full_text"`
	ShortText           string `json:"short_text,omitempty"`
	Color               string `json:"color,omitempty"`
	Background          string `json:"background,omitempty"`
	Border              string `json:"border,omitempty"`
	MinWidth            int    `json:"min_width,omitempty"`
	Align               string `json:"align,omitempty"`
	Separator           bool   `json:"separator"`
	SeparatorBlockWidth int    `json:"separator_block_width,omitempty"`
	Urgent              bool   `json:"urgent,omitempty"`
	Markup              string `json:"markup,omitempty"`
}

const SeparatorWidth = 12

// Provider turns one facet of the clock surface into a Block.
// Refresh re-reads the surface and reports whether the Block changed.
type Provider interface {
	Name() string
	Refresh() (changed bool)
	Current() Block
}
