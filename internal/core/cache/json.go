package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SchemaVersion tags every JSON value written through PutJSON.
// Readers accept older versions; unknown fields are ignored.
const SchemaVersion = 1

// ErrCorrupt is returned by GetJSON when a stored value cannot be decoded.
var ErrCorrupt = errors.New("corrupt stored value")

type envelope struct {
	Version int             `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// PutJSON encodes v inside a versioned envelope and stores it under key.
func PutJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	raw, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal envelope %s: %w", key, err)
	}

	return c.Set(ctx, key, raw, ttl)
}

// GetJSON loads key into v. It reports false with a nil error when the key is absent,
// and wraps ErrCorrupt when the stored bytes are not a valid envelope for v.
func GetJSON(ctx context.Context, c Cache, key string, v any) (bool, error) {
	raw, err := c.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Data) == 0 {
		return false, fmt.Errorf("%w: %s", ErrCorrupt, key)
	}

	if err := json.Unmarshal(env.Data, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}

	return true, nil
}
