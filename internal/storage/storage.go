// Package storage is the client's durable local state: a small key-value
// settings table in a SQLite database next to the binary. It backs the
// persisted view selection, the theme, and the push permission answer.
package storage

import (
	"context"
	"errors"
)

// Keys owned by the client. Values are read at store construction and
// written on every mutation.
const (
	KeyTheme          = "theme"
	KeyCurrentView    = "currentView"
	KeyPushPermission = "push_permission"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("setting not found")

// Repository is the durable settings store.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
