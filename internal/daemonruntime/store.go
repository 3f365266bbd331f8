package daemonruntime

import (
	"sort"
	"strings"
	"sync"

	"github.com/quailyquaily/cronsay/internal/records"
)

const (
	defaultMaxItems  = 1000
	defaultListLimit = 20
	maxListLimit     = 200
)

// HistoryReader is the minimal read API required by the history routes.
type HistoryReader interface {
	List(status RecordStatus, limit int) []records.Record
	Get(id string) (*records.Record, bool)
}

// MemoryStore keeps the most recent describe results in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	items    map[string]records.Record
	maxItems int
}

func NewMemoryStore(maxItems int) *MemoryStore {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	return &MemoryStore{
		items:    make(map[string]records.Record),
		maxItems: maxItems,
	}
}

func (s *MemoryStore) Add(rec records.Record) {
	if s == nil {
		return
	}
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		return
	}
	rec.ID = id

	s.mu.Lock()
	s.items[id] = rec
	s.pruneLocked()
	s.mu.Unlock()
}

func (s *MemoryStore) Get(id string) (*records.Record, bool) {
	if s == nil {
		return nil, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	s.mu.RLock()
	item, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	cp := item
	return &cp, true
}

func (s *MemoryStore) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// List returns matching records newest first.
func (s *MemoryStore) List(status RecordStatus, limit int) []records.Record {
	if s == nil {
		return nil
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	s.mu.RLock()
	out := make([]records.Record, 0, len(s.items))
	for _, item := range s.items {
		if !status.matches(item) {
			continue
		}
		out = append(out, item)
	}
	s.mu.RUnlock()

	sortNewestFirst(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *MemoryStore) pruneLocked() {
	if s.maxItems <= 0 || len(s.items) <= s.maxItems {
		return
	}
	all := make([]records.Record, 0, len(s.items))
	for _, item := range s.items {
		all = append(all, item)
	}
	sortNewestFirst(all)
	keep := make(map[string]records.Record, s.maxItems)
	for i := 0; i < len(all) && i < s.maxItems; i++ {
		keep[all[i].ID] = all[i]
	}
	s.items = keep
}

func sortNewestFirst(items []records.Record) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
