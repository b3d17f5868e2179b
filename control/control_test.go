package control

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"swayclock/clock"
	"swayclock/store"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC) }

type idleTicker struct{ c chan time.Time }

func (t idleTicker) C() <-chan time.Time { return t.c }
func (t idleTicker) Stop()               {}

func newWidget(t *testing.T) *clock.Widget {
	t.Helper()
	mem := store.NewMemory()
	rec, err := store.Fields(map[string]any{
		clock.KeyClock:       clock.DefaultSettings(),
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
	if err := w.Init(clock.Sync{}); err != nil {
		t.Fatal(err)
	}
	return w
}

func listen(t *testing.T) *Server {
	t.Helper()
	srv, err := Listen(filepath.Join(t.TempDir(), "c.sock"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { srv.Close() })
	return srv
}

func TestSendAppliesUpdate(t *testing.T) {
	w := newWidget(t)
	srv := listen(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan clock.Event)
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx, events) }()
	ran := make(chan struct{})
	go func() {
		w.Run(ctx, events, nil)
		close(ran)
	}()

	on := true
	sendCtx, sendCancel := context.WithTimeout(ctx, 2*time.Second)
	defer sendCancel()
	if err := Send(sendCtx, srv.Path(), clock.Update{Ampm: &on}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	cancel()
	<-ran
	if err := <-served; err != nil {
		t.Errorf("Serve: %v", err)
	}
	if !w.Settings().Ampm {
		t.Error("ampm not applied")
	}
	if got := w.Surface.El("digital-hh").Text(); got != "3" {
		t.Errorf("hour = %q, want 3", got)
	}
}

func TestBadRequest(t *testing.T) {
	srv := listen(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Serve(ctx, make(chan clock.Event))

	conn, err := net.Dial("unix", srv.Path())
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(2 * time.Second))
	if _, err := conn.Write([]byte("not json\n")); err != nil {
		t.Fatal(err)
	}
	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		t.Fatal(err)
	}
	var reply Reply
	if err := json.Unmarshal(line, &reply); err != nil {
		t.Fatal(err)
	}
	if reply.OK || !strings.Contains(reply.Error, "decode update") {
		t.Errorf("reply = %+v", reply)
	}
}

func TestListenReplacesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.sock")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	srv, err := Listen(path)
	if err != nil {
		t.Fatalf("Listen over stale file: %v", err)
	}
	defer srv.Close()

	if _, err := Listen(path); err == nil {
		t.Error("second Listen succeeded while first is alive")
	}
}

func TestCloseRemovesSocket(t *testing.T) {
	srv, err := Listen(filepath.Join(t.TempDir(), "c.sock"))
	if err != nil {
		t.Fatal(err)
	}
	if err := srv.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(srv.Path()); !os.IsNotExist(err) {
		t.Errorf("socket still present: %v", err)
	}
}

func TestSendNoServer(t *testing.T) {
	err := Send(context.Background(), filepath.Join(t.TempDir(), "none.sock"), clock.Update{})
	if err == nil {
		t.Fatal("Send to missing socket succeeded")
	}
}
