package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/text/language"

	"swayclock/blocks"
	"swayclock/clicks"
	"swayclock/clock"
	"swayclock/config"
	"swayclock/control"
	"swayclock/logging"
)

// RunCmd is the swaybar status command.
type RunCmd struct {
	NoSocket bool `help:"Do not listen for settings changes on the control socket."`
	NoWatch  bool `help:"Do not reload the config file when it changes."`
}

func (c *RunCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	emitter := blocks.NewEmitter(os.Stdout)
	ready := false
	w, st, err := openWidget(cfg, func(feature string) {
		logging.Debug("ready", "feature", feature)
		ready = true
	})
	if err == nil {
		defer st.Close()
		err = initWidget(sigCtx, w, st)
	}
	if err != nil {
		// The bar keeps showing the failure until it restarts us.
		logging.Error("clock init failed", "error", err)
		if rowErr := emitter.Row([]blocks.Block{blocks.ErrorBlock("clock", "clock: "+err.Error())}); rowErr != nil {
			return rowErr
		}
		<-sigCtx.Done()
		return nil
	}

	providers := blocks.BuildProviders(&blocks.Env{
		Config:  cfg,
		Surface: w.Surface,
		Lang:    func() language.Tag { return w.Translator().Tag() },
	})
	events := make(chan clock.Event, 16)
	send := func(ev clock.Event) {
		select {
		case events <- ev:
		case <-sigCtx.Done():
		}
	}

	clickCh := make(chan clicks.Click, 16)
	go func() {
		clicks.Read(os.Stdin, clickCh)
		close(clickCh)
	}()
	go func() {
		for click := range clickCh {
			if ev, ok := clicks.Event(click); ok {
				send(ev)
			}
		}
	}()

	if !c.NoSocket {
		srv, err := control.Listen(cfg.Socket)
		if err != nil {
			logging.Warn("control socket disabled", "error", err)
		} else {
			defer srv.Close()
			go func() {
				if err := srv.Serve(sigCtx, events); err != nil {
					logging.Warn("control socket", "error", err)
				}
			}()
		}
	}

	if !c.NoWatch && cfg.Path() != "" {
		go func() {
			err := config.Watch(sigCtx, cfg.Path(), func(next *config.Config, err error) {
				if err != nil {
					logging.Warn("config reload", "error", err)
					return
				}
				logging.Info("config reloaded", "lang", next.Lang)
				send(clock.LangEvent(next.Lang))
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logging.Warn("config watch stopped", "error", err)
			}
		}()
	}

	flush := func() {
		if !ready {
			return
		}
		if err := emitter.Render(providers); err != nil {
			logging.Warn("emit", "error", err)
		}
	}
	if err := w.Run(sigCtx, events, flush); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
