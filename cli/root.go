package cli

import (
	"context"
	"fmt"
	"time"

	"swayclock/clock"
	"swayclock/config"
	"swayclock/i18n"
	"swayclock/logging"
	"swayclock/store"
)

type Context struct {
	Config *config.Config
}

// openWidget opens the settings store and builds a widget over it. The
// caller closes the returned store.
func openWidget(cfg *config.Config, onReady func(string)) (*clock.Widget, *store.SQLite, error) {
	st := store.NewSQLite(cfg.Store)
	if err := st.Open(); err != nil {
		return nil, nil, fmt.Errorf("open settings: %w", err)
	}
	debounce := store.NewDebouncer(st, time.Duration(cfg.DebounceMs)*time.Millisecond, func(err error) {
		logging.Warn("debounced write failed", "error", err)
	})
	var measurer clock.Measurer = clock.RuneMeasurer{}
	if len(cfg.DigitWidths) > 0 {
		measurer = clock.Advances(cfg.DigitWidths)
	}
	w := clock.New(clock.Options{
		Store:      st,
		Debouncer:  debounce,
		Translator: i18n.New(cfg.Lang),
		Measurer:   measurer,
		OnReady:    onReady,
	})
	return w, st, nil
}

func initWidget(ctx context.Context, w *clock.Widget, st store.Store) error {
	data, err := clock.Load(ctx, st)
	if err != nil {
		return err
	}
	return w.Init(data)
}
