package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	repo "pacekeeper/internal/tracker/repository"
)

type implRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an in-process Repository. Contents are lost on exit.
func New() repo.Repository {
	return &implRepository{values: map[string]string{}}
}

// NewWithValues seeds the store, mostly for tests.
func NewWithValues(values map[string]string) repo.Repository {
	r := &implRepository{values: make(map[string]string, len(values))}
	for k, v := range values {
		r.values[k] = v
	}
	return r
}

func (r *implRepository) GetValue(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[key], nil
}

func (r *implRepository) SetValues(_ context.Context, opt repo.SetValuesOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range opt.Values {
		r.values[k] = v
	}
	return nil
}

func (r *implRepository) ListKeys(_ context.Context, opt repo.ListKeysOptions) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		if strings.HasPrefix(k, opt.Prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}
