// Package session owns the chat-id to dialogue session mapping. The
// in-memory map is authoritative; an optional snapshot backend keeps
// in-flight dialogues across restarts.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"nanoconsult/internal/dialogue"
)

// SnapshotStore mirrors sessions to external storage, best effort.
type SnapshotStore interface {
	Save(ctx context.Context, s dialogue.Session) error
	Load(ctx context.Context, chatID int64) (*dialogue.Session, error)
	Delete(ctx context.Context, chatID int64) error
}

// Manager serializes create/lookup/delete per chat id. Sessions are
// replaced wholesale on Put, never mutated in place.
type Manager struct {
	mu        sync.RWMutex
	sessions  map[int64]dialogue.Session
	snapshots SnapshotStore
	logger    *zap.Logger
}

// NewManager builds a store. snapshots may be nil.
func NewManager(snapshots SnapshotStore, logger *zap.Logger) *Manager {
	return &Manager{
		sessions:  make(map[int64]dialogue.Session),
		snapshots: snapshots,
		logger:    logger,
	}
}

// Resolve returns the session for a chat, falling through to the
// snapshot backend on a miss.
func (m *Manager) Resolve(ctx context.Context, chatID int64) (dialogue.Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[chatID]
	m.mu.RUnlock()
	if ok {
		return s, true
	}

	if m.snapshots == nil {
		return dialogue.Session{}, false
	}
	restored, err := m.snapshots.Load(ctx, chatID)
	if err != nil {
		m.logger.Warn("failed to load session snapshot", zap.Int64("chat_id", chatID), zap.Error(err))
		return dialogue.Session{}, false
	}
	if restored == nil {
		return dialogue.Session{}, false
	}

	m.mu.Lock()
	m.sessions[chatID] = *restored
	m.mu.Unlock()
	return *restored, true
}

// Put swaps in the new session value atomically.
func (m *Manager) Put(ctx context.Context, s dialogue.Session) {
	m.mu.Lock()
	m.sessions[s.ChatID] = s
	m.mu.Unlock()

	if m.snapshots != nil {
		if err := m.snapshots.Save(ctx, s); err != nil {
			m.logger.Warn("failed to save session snapshot", zap.Int64("chat_id", s.ChatID), zap.Error(err))
		}
	}
}

// Delete tears the session down on completion, reset or cancel.
func (m *Manager) Delete(ctx context.Context, chatID int64) {
	m.mu.Lock()
	delete(m.sessions, chatID)
	m.mu.Unlock()

	if m.snapshots != nil {
		if err := m.snapshots.Delete(ctx, chatID); err != nil {
			m.logger.Warn("failed to delete session snapshot", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}
}
