package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Emitter writes the i3bar protocol: a header, the opening of the infinite
// array, then one comma-prefixed row per change.
type Emitter struct {
	w       io.Writer
	buf     bytes.Buffer
	started bool
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Start writes the protocol header and an initial empty row.
func (e *Emitter) Start() error {
	if e.started {
		return nil
	}
	e.started = true
	_, err := fmt.Fprint(e.w, "{\"version\":1,\"click_events\":true}\n[\n[]\n")
	return err
}

// Render refreshes providers and emits a row if any block changed.
func (e *Emitter) Render(providers []Provider) error {
	changed := false
	out := make([]Block, 0, len(providers))
	for _, p := range providers {
		if p.Refresh() {
			changed = true
		}
		out = append(out, p.Current())
	}
	if !changed {
		return nil
	}
	return e.Row(out)
}

// Row emits blocks unconditionally.
func (e *Emitter) Row(blocksOut []Block) error {
	if err := e.Start(); err != nil {
		return err
	}
	e.buf.Reset()
	enc := json.NewEncoder(&e.buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(blocksOut); err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}
	// After emitting the initial empty array, every subsequent row must be comma-prefixed per i3bar protocol.
	row := bytes.TrimRight(e.buf.Bytes(), "\n")
	if _, err := fmt.Fprintf(e.w, ",%s\n", row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}
