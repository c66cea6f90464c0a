package repository

import "context"

// Repository is the composed interface for the tracker data store.
type Repository interface {
	ValueRepository
}

// ValueRepository stores raw JSON documents under string keys.
// Normalizing what comes back is the caller's job.
type ValueRepository interface {
	// GetValue returns "" with no error when key is absent.
	GetValue(ctx context.Context, key string) (string, error)
	// SetValues writes every pair or none of them.
	SetValues(ctx context.Context, opt SetValuesOptions) error
	ListKeys(ctx context.Context, opt ListKeysOptions) ([]string, error)
}
