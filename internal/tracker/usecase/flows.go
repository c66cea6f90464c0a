package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"pacekeeper/internal/suggest"
	"pacekeeper/internal/wizard"
)

// flow is one open wizard plus the latest suggestion for its intent.
type flow struct {
	mu         sync.Mutex
	id         string
	wiz        *wizard.Wizard
	suggestion *suggest.Suggestion
	// suggestSeq discards answers for intent text that has since changed.
	suggestSeq int
}

// flowStore keeps open flows in memory; idle ones expire and are never persisted.
type flowStore struct {
	cache *expirable.LRU[string, *flow]
}

func newFlowStore(size int, ttl time.Duration) *flowStore {
	return &flowStore{cache: expirable.NewLRU[string, *flow](size, nil, ttl)}
}

func (s *flowStore) open(w *wizard.Wizard) *flow {
	f := &flow{id: uuid.NewString(), wiz: w}
	s.cache.Add(f.id, f)
	return f
}

func (s *flowStore) get(id string) (*flow, bool) {
	return s.cache.Get(id)
}

// touch re-adds f so its TTL restarts.
func (s *flowStore) touch(f *flow) {
	s.cache.Add(f.id, f)
}

func (s *flowStore) remove(id string) bool {
	return s.cache.Remove(id)
}
