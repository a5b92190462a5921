package fixtures

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/models"
)

// MemoryStore is an in-memory application store. Records are copied in and
// out so callers never share state with the store.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]models.ApplicationRecord

	// Err, when set, is returned by every operation.
	Err error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.ApplicationRecord)}
}

func copyRecord(rec *models.ApplicationRecord) models.ApplicationRecord {
	c := *rec
	if rec.Commercial != nil {
		addr := *rec.Commercial
		c.Commercial = &addr
	}
	if rec.Dependents != nil {
		c.Dependents = append([]models.Dependent(nil), rec.Dependents...)
	}
	if rec.UpdatedAt != nil {
		t := *rec.UpdatedAt
		c.UpdatedAt = &t
	}
	return c
}

func (s *MemoryStore) Insert(_ context.Context, rec *models.ApplicationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.records[rec.ID] = copyRecord(rec)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.ApplicationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	rec, ok := s.records[id]
	if !ok {
		return nil, models.ErrApplicationNotFound
	}
	c := copyRecord(&rec)
	return &c, nil
}

func (s *MemoryStore) List(_ context.Context, filter models.ListFilter) ([]models.ApplicationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []models.ApplicationRecord{}
	for _, rec := range s.records {
		if filter.Matches(rec.CreatedAt) {
			out = append(out, copyRecord(&rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, rec *models.ApplicationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.records[rec.ID]; !ok {
		return models.ErrApplicationNotFound
	}
	s.records[rec.ID] = copyRecord(rec)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.records[id]; !ok {
		return models.ErrApplicationNotFound
	}
	delete(s.records, id)
	return nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// RecordingMailer keeps every message it is asked to send.
type RecordingMailer struct {
	mu       sync.Mutex
	messages []models.EmailMessage

	// Err, when set, fails every send after recording it.
	Err error
}

func (m *RecordingMailer) Send(_ context.Context, msg *models.EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, *msg)
	return m.Err
}

// Messages returns a copy of the recorded messages.
func (m *RecordingMailer) Messages() []models.EmailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.EmailMessage(nil), m.messages...)
}

type kvEntry struct {
	value   string
	expires time.Time
}

// MemoryKV is an in-memory key-value store with expiry.
type MemoryKV struct {
	mu      sync.Mutex
	entries map[string]kvEntry
	now     func() time.Time
}

// NewMemoryKV returns an empty store on the wall clock.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string]kvEntry), now: time.Now}
}

func (kv *MemoryKV) live(key string) (kvEntry, bool) {
	e, ok := kv.entries[key]
	if !ok {
		return kvEntry{}, false
	}
	if !e.expires.IsZero() && !kv.now().Before(e.expires) {
		delete(kv.entries, key)
		return kvEntry{}, false
	}
	return e, true
}

func (kv *MemoryKV) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return kv.now().Add(ttl)
}

func (kv *MemoryKV) Get(_ context.Context, key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	e, ok := kv.live(key)
	if !ok {
		return "", models.ErrCacheMiss
	}
	return e.value, nil
}

func (kv *MemoryKV) Set(_ context.Context, key, value string, ttl time.Duration) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.entries[key] = kvEntry{value: value, expires: kv.expiry(ttl)}
	return nil
}

func (kv *MemoryKV) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if _, ok := kv.live(key); ok {
		return false, nil
	}
	kv.entries[key] = kvEntry{value: value, expires: kv.expiry(ttl)}
	return true, nil
}

func (kv *MemoryKV) Del(_ context.Context, keys ...string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	for _, k := range keys {
		delete(kv.entries, k)
	}
	return nil
}

// Keys returns the live keys with the given prefix, sorted.
func (kv *MemoryKV) Keys(prefix string) []string {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	var keys []string
	for k := range kv.entries {
		if _, ok := kv.live(k); ok && strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
