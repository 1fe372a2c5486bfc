// Package storage provides the single key-value record store that backs the
// quiz collection.
package storage

import (
	"context"
	"errors"
)

var ErrEmptyKey = errors.New("storage key must not be empty")

// Store reads and writes whole values under string keys. Get reports
// found=false for an absent key instead of an error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
