package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// KV is a durable string-keyed slot store. Set overwrites the whole slot
// atomically; Get returns ErrNotFound for an absent key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
