// Package kv is the persisted key/value storage shared by the auth token,
// the persisted store blobs, and the mock/live mode flag.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// Well-known keys.
const (
	KeyToken     = "arkode_token"
	KeyAuth      = "arkode-auth"
	KeyWorkspace = "arkode-workspace"
	KeyMockMode  = "MOCK_API"
)

// Store is a flat string key/value store. Writes are last-writer-wins.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON decodes the value under key into v. It returns false when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(raw))
}
