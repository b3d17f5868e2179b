package clicks

import (
	"context"
	"strings"
	"testing"
	"time"

	"swayclock/clock"
	"swayclock/store"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC) }

type idleTicker struct{ c chan time.Time }

func (t idleTicker) C() <-chan time.Time { return t.c }
func (t idleTicker) Stop()               {}

func newWidget(t *testing.T) *clock.Widget {
	t.Helper()
	mem := store.NewMemory()
	clk := clock.DefaultSettings()
	rec, err := store.Fields(map[string]any{
		clock.KeyClock:       clk,
		clock.KeyDateFormat:  clock.DateEU,
		clock.KeyGreeting:    "",
		clock.KeyAnalogStyle: clock.DefaultAnalogStyle(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := mem.Set(context.Background(), rec); err != nil {
		t.Fatal(err)
	}
	w := clock.New(clock.Options{
		Store:     mem,
		Debouncer: store.NewDebouncer(mem, time.Hour, nil),
		Clock:     fixedClock{},
		NewTicker: func(time.Duration) clock.Ticker { return idleTicker{c: make(chan time.Time)} },
	})
	data, err := clock.Load(context.Background(), mem)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Init(data); err != nil {
		t.Fatal(err)
	}
	return w
}

func apply(t *testing.T, w *clock.Widget, c Click) {
	t.Helper()
	ev, ok := Event(c)
	if !ok {
		t.Fatalf("Event(%+v) not mapped", c)
	}
	if err := ev(context.Background(), w); err != nil {
		t.Fatalf("apply %+v: %v", c, err)
	}
}

func TestRead(t *testing.T) {
	in := strings.NewReader("[\n" +
		`{"name":"clock","button":1}` + "\n" +
		"not json\n" +
		`,{"name":"date","button":3,"x":4}` + "\n")
	out := make(chan Click, 4)
	Read(in, out)
	close(out)
	var got []Click
	for c := range out {
		got = append(got, c)
	}
	if len(got) != 2 {
		t.Fatalf("got %d clicks, want 2: %+v", len(got), got)
	}
	if got[0].Name != "clock" || got[0].Button != 1 {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Name != "date" || got[1].Button != 3 || got[1].X != 4 {
		t.Errorf("second = %+v", got[1])
	}
}

func TestReadDropsWhenFull(t *testing.T) {
	in := strings.NewReader(`{"name":"clock","button":1}` + "\n" + `{"name":"clock","button":2}` + "\n")
	out := make(chan Click, 1)
	Read(in, out)
	if c := <-out; c.Button != 1 {
		t.Errorf("kept %+v, want first click", c)
	}
}

func TestEventToggles(t *testing.T) {
	w := newWidget(t)

	apply(t, w, Click{Name: "clock", Button: ButtonLeft})
	if !w.Settings().Analog {
		t.Error("left click did not switch to analog")
	}
	apply(t, w, Click{Name: "clock", Button: ButtonLeft})
	if w.Settings().Analog {
		t.Error("second left click did not switch back")
	}

	apply(t, w, Click{Name: "clock", Button: ButtonRight})
	if !w.Settings().Ampm {
		t.Error("right click did not enable ampm")
	}
	apply(t, w, Click{Name: "clock", Button: ButtonMiddle})
	if !w.Settings().Seconds {
		t.Error("middle click did not enable seconds")
	}
}

func TestEventSize(t *testing.T) {
	w := newWidget(t)
	apply(t, w, Click{Name: "clock", Button: ButtonScrollUp})
	if got := w.Settings().Size; got != 1.1 {
		t.Errorf("size after scroll up = %v, want 1.1", got)
	}
	for range 10 {
		apply(t, w, Click{Name: "clock", Button: ButtonScrollDown})
	}
	if got := w.Settings().Size; got != sizeMin {
		t.Errorf("size after scrolling down = %v, want %v", got, sizeMin)
	}
}

func TestEventDateFormat(t *testing.T) {
	w := newWidget(t)
	want := []clock.DateFormat{clock.DateUS, clock.DateCN, clock.DateEU}
	for _, df := range want {
		apply(t, w, Click{Name: "date", Button: ButtonLeft})
		if got := w.DateFormat(); got != df {
			t.Fatalf("dateformat = %q, want %q", got, df)
		}
	}
}

func TestEventUnmapped(t *testing.T) {
	for _, c := range []Click{
		{Name: "greeting", Button: ButtonLeft},
		{Name: "date", Button: ButtonRight},
		{Name: "clock", Button: 9},
	} {
		if _, ok := Event(c); ok {
			t.Errorf("Event(%+v) mapped, want unmapped", c)
		}
	}
}

func TestNextSize(t *testing.T) {
	tests := []struct {
		size, step, want float64
	}{
		{1, 0.1, 1.1},
		{2.95, 0.1, 3},
		{3, 0.1, 3},
		{0.5, -0.1, 0.5},
		{0, 0.1, 1.1},
	}
	for _, tt := range tests {
		if got := nextSize(tt.size, tt.step); got != tt.want {
			t.Errorf("nextSize(%v, %v) = %v, want %v", tt.size, tt.step, got, tt.want)
		}
	}
}
