package tracker

import (
	"context"
	"sync"

	"github.com/Dino-996/microservizi-tracker/internal/models"
)

// MemoryStore keeps users and log entries in process memory. The server
// falls back to it when no MONGO_URI is configured; the tests run on it.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]models.User
	userIDs []string
	logs    map[string][]models.LogEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]models.User),
		logs:  make(map[string][]models.LogEntry),
	}
}

func (m *MemoryStore) InsertUser(ctx context.Context, user models.User) error {
	_ = ctx

	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[user.ID] = user
	m.userIDs = append(m.userIDs, user.ID)
	return nil
}

func (m *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	_ = ctx

	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.userIDs))
	for _, id := range m.userIDs {
		users = append(users, m.users[id])
	}
	return users, nil
}

func (m *MemoryStore) FindUser(ctx context.Context, id string) (*models.User, error) {
	_ = ctx

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (m *MemoryStore) InsertLog(ctx context.Context, entry models.LogEntry) error {
	_ = ctx

	m.mu.Lock()
	defer m.mu.Unlock()

	m.logs[entry.UserID] = append(m.logs[entry.UserID], entry)
	return nil
}

func (m *MemoryStore) LogsByUser(ctx context.Context, userID string) ([]models.LogEntry, error) {
	_ = ctx

	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]models.LogEntry, len(m.logs[userID]))
	copy(entries, m.logs[userID])
	return entries, nil
}
