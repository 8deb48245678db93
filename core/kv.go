package core

import "context"

// KVStore persists serialized values under fixed string keys.
// Get returns ErrKeyNotFound when nothing was ever stored under key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
