package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"nanoconsult/internal/dialogue"
)

type fakeSnapshots struct {
	mu      sync.Mutex
	saved   map[int64]dialogue.Session
	loadErr error
	saveErr error
	deletes int
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{saved: make(map[int64]dialogue.Session)}
}

func (f *fakeSnapshots) Save(_ context.Context, s dialogue.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[s.ChatID] = s
	return nil
}

func (f *fakeSnapshots) Load(_ context.Context, chatID int64) (*dialogue.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	s, ok := f.saved[chatID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSnapshots) Delete(_ context.Context, chatID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	delete(f.saved, chatID)
	return nil
}

func TestManagerPutResolveDelete(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(nil, zap.NewNop())

	if _, ok := manager.Resolve(ctx, 10); ok {
		t.Fatalf("expected miss for unknown chat")
	}

	s := dialogue.NewSession(10)
	manager.Put(ctx, s)

	got, ok := manager.Resolve(ctx, 10)
	if !ok || got.ChatID != 10 {
		t.Fatalf("expected stored session back, got %+v ok=%v", got, ok)
	}

	manager.Delete(ctx, 10)
	if _, ok := manager.Resolve(ctx, 10); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestManagerRestoresFromSnapshots(t *testing.T) {
	ctx := context.Background()
	snapshots := newFakeSnapshots()
	snapshots.saved[42] = dialogue.Session{ChatID: 42, Step: dialogue.StepOilVolume}

	manager := NewManager(snapshots, zap.NewNop())

	got, ok := manager.Resolve(ctx, 42)
	if !ok {
		t.Fatalf("expected snapshot restore")
	}
	if got.Step != dialogue.StepOilVolume {
		t.Fatalf("expected restored step, got %s", got.Step)
	}
}

func TestManagerMirrorsToSnapshots(t *testing.T) {
	ctx := context.Background()
	snapshots := newFakeSnapshots()
	manager := NewManager(snapshots, zap.NewNop())

	manager.Put(ctx, dialogue.NewSession(7))
	if _, ok := snapshots.saved[7]; !ok {
		t.Fatalf("expected put to mirror into snapshots")
	}

	manager.Delete(ctx, 7)
	if snapshots.deletes != 1 {
		t.Fatalf("expected snapshot delete, got %d", snapshots.deletes)
	}
}

func TestManagerSurvivesSnapshotFailures(t *testing.T) {
	ctx := context.Background()
	snapshots := newFakeSnapshots()
	snapshots.saveErr = errors.New("redis down")
	snapshots.loadErr = errors.New("redis down")

	manager := NewManager(snapshots, zap.NewNop())

	// Put must still land in memory even when the mirror fails.
	manager.Put(ctx, dialogue.NewSession(5))
	if got, ok := manager.Resolve(ctx, 5); !ok || got.ChatID != 5 {
		t.Fatalf("expected in-memory session despite snapshot failure")
	}
	// A load failure on a miss must look like a plain miss.
	if _, ok := manager.Resolve(ctx, 6); ok {
		t.Fatalf("expected miss when snapshot load fails")
	}
}
