package repositories

import (
	"context"
	"sync"
	"time"

	apperrors "payment-admin/pkg/errors"
)

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryCredentialRepository is the single-process store used when
// SESSION_STORE=memory. Expired entries are dropped on read.
type MemoryCredentialRepository struct {
	mu      sync.Mutex
	prefix  string
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCredentialRepository(prefix string) *MemoryCredentialRepository {
	return &MemoryCredentialRepository{
		prefix:  prefix,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (r *MemoryCredentialRepository) Get(_ context.Context, sessionID string) (string, error) {
	key := credentialKey(r.prefix, sessionID)

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[key]
	if !ok || entry.token == "" {
		return "", apperrors.ErrCredentialNotFound
	}
	if !entry.expiresAt.IsZero() && !r.now().Before(entry.expiresAt) {
		delete(r.entries, key)
		return "", apperrors.ErrCredentialNotFound
	}
	return entry.token, nil
}

func (r *MemoryCredentialRepository) Set(_ context.Context, sessionID, token string, ttl time.Duration) error {
	entry := memoryEntry{token: token}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}

	r.mu.Lock()
	r.entries[credentialKey(r.prefix, sessionID)] = entry
	r.mu.Unlock()
	return nil
}

func (r *MemoryCredentialRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.entries, credentialKey(r.prefix, sessionID))
	r.mu.Unlock()
	return nil
}
