package core

import "errors"

// ErrNotFound is returned by KV.Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// KV is a minimal string key-value store used for small persisted values
// such as the best score.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
