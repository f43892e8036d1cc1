// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/vop-sheet/internal/repositories/character"
	charactermock "github.com/KirkDiggler/vop-sheet/internal/repositories/character/mock"
)

// SavedAt is the stamp the helpers report for saves and loads
var SavedAt = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// ExpectLoad sets up a load of slot returning c
func ExpectLoad(
	ctx context.Context, mockRepo *charactermock.MockRepository, slot string, c *entities.Character,
) *gomock.Call {
	return mockRepo.EXPECT().
		Load(ctx, characterrepo.LoadInput{Slot: slot}).
		Return(&characterrepo.LoadOutput{Character: c, SavedAt: SavedAt}, nil)
}

// ExpectLoadError sets up a load of slot failing with err
func ExpectLoadError(
	ctx context.Context, mockRepo *charactermock.MockRepository, slot string, err error,
) *gomock.Call {
	return mockRepo.EXPECT().
		Load(ctx, characterrepo.LoadInput{Slot: slot}).
		Return(nil, err)
}

// ExpectEmptySlot sets up a load of slot that finds nothing
func ExpectEmptySlot(ctx context.Context, mockRepo *charactermock.MockRepository, slot string) *gomock.Call {
	return ExpectLoadError(ctx, mockRepo, slot, errors.SlotEmpty(slot))
}

// SaveRecorder collects the characters handed to Save
type SaveRecorder struct {
	mu    sync.Mutex
	saved []*entities.Character
}

// Saved returns the characters saved so far, oldest first
func (r *SaveRecorder) Saved() []*entities.Character {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entities.Character(nil), r.saved...)
}

// Last returns the most recently saved character, or nil
func (r *SaveRecorder) Last() *entities.Character {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saved) == 0 {
		return nil
	}
	return r.saved[len(r.saved)-1]
}

// ExpectSaves accepts any number of saves to slot and records them
func ExpectSaves(mockRepo *charactermock.MockRepository, slot string) *SaveRecorder {
	rec := &SaveRecorder{}
	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.SaveInput) (*characterrepo.SaveOutput, error) {
			if input.Slot != slot {
				return nil, errors.InvalidArgumentf("unexpected slot %q", input.Slot)
			}
			rec.mu.Lock()
			rec.saved = append(rec.saved, input.Character)
			rec.mu.Unlock()
			return &characterrepo.SaveOutput{SavedAt: SavedAt}, nil
		}).
		AnyTimes()
	return rec
}

// ExpectSaveError sets up one failing save
func ExpectSaveError(mockRepo *charactermock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, err)
}
