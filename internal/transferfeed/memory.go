package transferfeed

import (
	"context"
	"sync"

	"github.com/gabapcia/btcwatch/internal/pkg/types"
)

// memoryStorage is a process-local SeenStorage.
type memoryStorage struct {
	mu   sync.Mutex
	seen map[string]types.Set[string]
}

// Ensure compile-time compliance with the SeenStorage interface.
var _ SeenStorage = (*memoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory SeenStorage.
func NewMemoryStorage() *memoryStorage {
	return &memoryStorage{
		seen: make(map[string]types.Set[string]),
	}
}

// MarkSeen implements SeenStorage.
func (m *memoryStorage) MarkSeen(_ context.Context, address string, hashes []string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.seen[address]
	if !ok {
		set = types.NewSet[string]()
		m.seen[address] = set
	}

	return set.AddMissing(hashes...), nil
}
