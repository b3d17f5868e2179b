// Package control exposes the running clock over a unix socket so that a
// settings change can be sent from another process, the way the settings
// panel posts to the new tab.
package control

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"swayclock/clock"
	"swayclock/logging"
)

// applyTimeout bounds how long a connection waits for the loop to apply
// its update.
const applyTimeout = 5 * time.Second

// Reply is written back once per request line.
type Reply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Server accepts newline-delimited JSON clock.Update values.
type Server struct {
	path string
	ln   net.Listener
	wg   sync.WaitGroup
}

// Listen binds the socket, replacing a stale one left by a crashed process.
func Listen(path string) (*Server, error) {
	if conn, err := net.Dial("unix", path); err == nil {
		conn.Close()
		return nil, fmt.Errorf("listen %s: another instance is running", path)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket: %w", err)
	}
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", path, err)
	}
	return &Server{path: path, ln: ln}, nil
}

func (s *Server) Path() string { return s.path }

// Serve forwards each request to events and replies with its outcome.
// It returns when ctx is done or the listener is closed.
func (s *Server) Serve(ctx context.Context, events chan<- clock.Event) error {
	go func() {
		<-ctx.Done()
		s.ln.Close()
	}()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.wg.Wait()
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(ctx, conn, events)
		}()
	}
}

// Close stops accepting and removes the socket file.
func (s *Server) Close() error {
	err := s.ln.Close()
	if errors.Is(err, net.ErrClosed) {
		err = nil
	}
	if rmErr := os.Remove(s.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
		err = rmErr
	}
	return err
}

func (s *Server) handle(ctx context.Context, conn net.Conn, events chan<- clock.Event) {
	defer conn.Close()
	sc := bufio.NewScanner(conn)
	enc := json.NewEncoder(conn)
	for sc.Scan() {
		var u clock.Update
		reply := Reply{OK: true}
		if err := json.Unmarshal(sc.Bytes(), &u); err != nil {
			reply = Reply{Error: fmt.Sprintf("decode update: %v", err)}
		} else if err := apply(ctx, events, u); err != nil {
			reply = Reply{Error: err.Error()}
		}
		if err := enc.Encode(reply); err != nil {
			logging.Debug("control reply", "error", err)
			return
		}
	}
}

// apply hands u to the loop goroutine and waits for the result.
func apply(ctx context.Context, events chan<- clock.Event, u clock.Update) error {
	ctx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()
	done := make(chan error, 1)
	ev := func(evCtx context.Context, w *clock.Widget) error {
		err := w.Update(evCtx, u)
		done <- err
		return err
	}
	select {
	case events <- ev:
	case <-ctx.Done():
		return fmt.Errorf("queue update: %w", ctx.Err())
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("apply update: %w", ctx.Err())
	}
}

// Send delivers u to the clock listening on path.
func Send(ctx context.Context, path string, u clock.Update) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return fmt.Errorf("dial %s: %w", path, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}
	if err := json.NewEncoder(conn).Encode(u); err != nil {
		return fmt.Errorf("send update: %w", err)
	}
	var reply Reply
	if err := json.NewDecoder(conn).Decode(&reply); err != nil {
		return fmt.Errorf("read reply: %w", err)
	}
	if !reply.OK {
		return errors.New(reply.Error)
	}
	return nil
}
