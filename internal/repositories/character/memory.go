package character

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/pkg/clock"
)

type memoryEntry struct {
	payload []byte
	savedAt time.Time
}

type memoryRepository struct {
	mu    sync.RWMutex
	slots map[string]memoryEntry
	clock clock.Clock
}

// MemoryConfig contains configuration for the in-memory repository
type MemoryConfig struct {
	Clock clock.Clock
}

// NewMemory creates a repository that keeps encoded sheets in a map. Sheets
// go through the same JSON encoding as the other backends.
func NewMemory(cfg *MemoryConfig) Repository {
	c := clock.New()
	if cfg != nil && cfg.Clock != nil {
		c = cfg.Clock
	}
	return &memoryRepository{
		slots: make(map[string]memoryEntry),
		clock: c,
	}
}

func (r *memoryRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	r.mu.RLock()
	entry, ok := r.slots[input.Slot]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.SlotEmpty(input.Slot)
	}

	character, err := decode(input.Slot, entry.payload)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Character: character, SavedAt: entry.savedAt}, nil
}

func (r *memoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := encode(input.Character)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()
	r.mu.Lock()
	r.slots[input.Slot] = memoryEntry{payload: data, savedAt: now}
	r.mu.Unlock()

	return &SaveOutput{SavedAt: now}, nil
}

func (r *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	r.mu.Lock()
	delete(r.slots, input.Slot)
	r.mu.Unlock()

	return &DeleteOutput{}, nil
}
