package store

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces rapid writes: every Push restarts the wait, and only
// the merged pending record is written once the wait elapses.
type Debouncer struct {
	store   Store
	wait    time.Duration
	onError func(error)

	mu      sync.Mutex
	pending Record
	timer   *time.Timer
}

func NewDebouncer(s Store, wait time.Duration, onError func(error)) *Debouncer {
	return &Debouncer{store: s, wait: wait, onError: onError}
}

// Push merges rec into the pending write and reschedules it.
func (d *Debouncer) Push(rec Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		d.pending = Record{}
	}
	for k, v := range rec {
		d.pending[k] = v
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fire)
}

// Pending returns a copy of the record waiting to be written.
func (d *Debouncer) Pending() Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(Record, len(d.pending))
	for k, v := range d.pending {
		out[k] = v
	}
	return out
}

// Flush writes any pending record now.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	rec := d.pending
	d.pending = nil
	d.mu.Unlock()
	d.write(rec)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	rec := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()
	d.write(rec)
}

func (d *Debouncer) write(rec Record) {
	if len(rec) == 0 {
		return
	}
	if err := d.store.Set(context.Background(), rec); err != nil && d.onError != nil {
		d.onError(err)
	}
}
