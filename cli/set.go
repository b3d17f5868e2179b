package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"swayclock/clock"
	"swayclock/control"
)

// SetCmd sends a settings change to the running clock.
type SetCmd struct {
	Ampm       string   `help:"12-hour clock (on|off)."`
	Analog     string   `help:"Analog face (on|off)."`
	Seconds    string   `help:"Show seconds (on|off)."`
	DateFormat string   `name:"dateformat" help:"Date order (eu|us|cn)."`
	Greeting   *string  `help:"Name shown after the greeting; empty clears it."`
	Timezone   string   `help:"Fixed UTC offset such as +2 or -3.30, or auto."`
	Face       string   `help:"Analog face (none|number|roman|marks|swiss|braun)."`
	Hands      string   `help:"Analog hands (modern|swiss-hands|classic|braun|apple)."`
	Shape      string   `help:"Analog shape (round|square|rectangle)."`
	Size       *float64 `help:"Clock size multiplier."`

	BorderOpacity     *float64 `name:"border-opacity" help:"Analog border opacity (0..1)."`
	BorderShade       string   `name:"border-shade" help:"Analog border shade (light|dark)."`
	BackgroundOpacity *float64 `name:"background-opacity" help:"Analog background opacity (0..1)."`
	BackgroundShade   string   `name:"background-shade" help:"Analog background shade (light|dark)."`

	Timeout time.Duration `help:"How long to wait for the clock." default:"5s"`
}

func (c *SetCmd) Validate() error {
	_, err := c.update()
	return err
}

func (c *SetCmd) Run(ctx *Context) error {
	u, err := c.update()
	if err != nil {
		return err
	}
	sendCtx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()
	return control.Send(sendCtx, ctx.Config.Socket, u)
}

func (c *SetCmd) update() (clock.Update, error) {
	var u clock.Update
	var err error
	if u.Ampm, err = parseSwitch("ampm", c.Ampm); err != nil {
		return u, err
	}
	if u.Analog, err = parseSwitch("analog", c.Analog); err != nil {
		return u, err
	}
	if u.Seconds, err = parseSwitch("seconds", c.Seconds); err != nil {
		return u, err
	}
	u.DateFormat = optional(c.DateFormat)
	u.Greeting = c.Greeting
	u.Timezone = optional(c.Timezone)
	u.Face = optional(c.Face)
	u.Hands = optional(c.Hands)
	u.Shape = optional(c.Shape)
	u.Size = c.Size
	u.Border = shade(c.BorderOpacity, c.BorderShade)
	u.Background = shade(c.BackgroundOpacity, c.BackgroundShade)

	if u == (clock.Update{}) {
		return u, errors.New("nothing to set")
	}
	return u, nil
}

func parseSwitch(name, v string) (*bool, error) {
	switch v {
	case "":
		return nil, nil
	case "on":
		b := true
		return &b, nil
	case "off":
		b := false
		return &b, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("--%s: want on or off, got %q", name, v)
	}
	return &b, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func shade(opacity *float64, shade string) *clock.ShadeUpdate {
	if opacity == nil && shade == "" {
		return nil
	}
	return &clock.ShadeUpdate{Opacity: opacity, Shade: shade}
}
