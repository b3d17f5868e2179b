// Package store persists the clock's synced settings as JSON values under
// named keys.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrClosed = errors.New("store closed")

// Record maps setting keys to their JSON encoded values. Keys that were never
// written are absent.
type Record map[string]json.RawMessage

// Store is the key-value collaborator used by the clock.
type Store interface {
	Get(ctx context.Context, keys ...string) (Record, error)
	Set(ctx context.Context, rec Record) error
}

// Fields encodes each value of m into a Record.
func Fields(m map[string]any) (Record, error) {
	rec := make(Record, len(m))
	for k, v := range m {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", k, err)
		}
		rec[k] = b
	}
	return rec, nil
}

// Decode unmarshals rec[key] into v. It reports false when the key is absent
// or the value does not decode.
func (r Record) Decode(key string, v any) bool {
	raw, ok := r[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}
