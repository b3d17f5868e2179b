package cli

import (
	"context"
	"fmt"
	"os"

	"swayclock/preview"
)

// PreviewCmd prints the clock once, as it would look with the stored settings.
type PreviewCmd struct{}

func (c *PreviewCmd) Run(ctx *Context) error {
	w, st, err := openWidget(ctx.Config, nil)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := initWidget(context.Background(), w, st); err != nil {
		return err
	}
	w.Stop()
	fmt.Fprintln(os.Stdout, preview.Render(w.Surface, w.Translator().Tag()))
	return nil
}
