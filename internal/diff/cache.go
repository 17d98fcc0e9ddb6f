package diff

import (
	"sync"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
)

type cacheKey struct {
	runId string
	mode  datasource.CompareMode
}

// memo is the append-only diff cache. Entries are never invalidated, even
// when the underlying log files change; a cached comparison stays exactly as
// first computed for the life of the process. Concurrent requests for the
// same key settle on a single value via putIfAbsent.
type memo struct {
	lock    sync.Mutex
	entries map[cacheKey]string
}

func newMemo() *memo {
	return &memo{
		entries: make(map[cacheKey]string),
	}
}

func (m *memo) get(key cacheKey) (string, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()
	text, ok := m.entries[key]
	return text, ok
}

// putIfAbsent stores text unless the key is already present, and returns the
// winning value either way.
func (m *memo) putIfAbsent(key cacheKey, text string) string {
	m.lock.Lock()
	defer m.lock.Unlock()
	if existing, ok := m.entries[key]; ok {
		return existing
	}
	m.entries[key] = text
	return text
}

func (m *memo) size() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.entries)
}
