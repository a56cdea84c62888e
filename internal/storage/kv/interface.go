// Package kv implements the local persistence medium: a flat key-to-value
// table where each value holds one JSON-serialized collection or scalar.
package kv

import (
	"context"
)

// Repository describes access to the key-value medium. Get returns (nil, nil)
// when the key is absent; absence is never an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
