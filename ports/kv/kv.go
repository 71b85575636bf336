package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/codewandler/freqcache-go/internal/codec"
)

var (
	ErrNotFound = errors.New("not found")
)

type Entry struct {
	Data []byte
	Meta map[string]any
}

type Store interface {
	Put(ctx context.Context, key string, entry Entry) error
	Get(ctx context.Context, key string) (entry Entry, err error)
	Delete(ctx context.Context, key string) error
}

func Put[T any](ctx context.Context, store Store, key string, v T) error {
	data, err := codec.Default.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv: encode %q: %w", key, err)
	}
	return store.Put(ctx, key, Entry{Data: data})
}

func Get[T any](ctx context.Context, store Store, key string) (out T, err error) {
	entry, err := store.Get(ctx, key)
	if err != nil {
		return
	}
	if err = codec.Default.Unmarshal(entry.Data, &out); err != nil {
		err = fmt.Errorf("kv: decode %q: %w", key, err)
	}
	return
}
