// Package character persists the character sheet in a named save slot
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/vop-sheet/internal/repositories/character Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
)

// DefaultSlot is the save slot used when none is configured
const DefaultSlot = "vop.character.v1"

const errCharacterNil = "character cannot be nil"

// Repository defines the interface for save slot persistence
type Repository interface {
	// Load reads the sheet saved in a slot
	// Returns errors.InvalidArgument for an empty slot name
	// Returns errors.NotFound if nothing was saved in the slot
	// Returns errors.DataLoss if the saved payload cannot be decoded
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save writes the sheet to a slot, replacing what was there
	// Returns errors.InvalidArgument for an empty slot name or nil character
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete clears a slot. Deleting an empty slot is not an error.
	// Returns errors.InvalidArgument for an empty slot name
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// LoadInput defines the input for loading a slot
type LoadInput struct {
	Slot string
}

// LoadOutput defines the output for loading a slot
type LoadOutput struct {
	Character *entities.Character
	SavedAt   time.Time
}

// SaveInput defines the input for saving a slot
type SaveInput struct {
	Slot      string
	Character *entities.Character
}

// SaveOutput defines the output for saving a slot
type SaveOutput struct {
	SavedAt time.Time
}

// DeleteInput defines the input for clearing a slot
type DeleteInput struct {
	Slot string
}

// DeleteOutput defines the output for clearing a slot
type DeleteOutput struct{}

func validateSlot(slot string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("slot", slot, vb)
	return vb.Build()
}

func validateSave(input SaveInput) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("slot", input.Slot, vb)
	if input.Character == nil {
		vb.Field("character", errCharacterNil)
	}
	return vb.Build()
}

func encode(c *entities.Character) ([]byte, error) {
	data, err := entities.EncodeCharacter(c, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character")
	}
	return data, nil
}

func decode(slot string, data []byte) (*entities.Character, error) {
	c, err := entities.DecodeCharacter(data)
	if err != nil {
		return nil, errors.SlotUnreadable(err, slot)
	}
	return c, nil
}
