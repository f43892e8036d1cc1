// Package sheet defines the interface for character sheet operations
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/vop-sheet/internal/services/sheet Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
)

// Service owns the one character being edited. Every output carrying a
// Character holds the value current after the call; callers must treat it
// as read-only.
type Service interface {
	// Lifecycle
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
	SetAutosave(ctx context.Context, input *SetAutosaveInput) (*SetAutosaveOutput, error)

	// Scalar and derived fields
	UpdateField(ctx context.Context, input *UpdateFieldInput) (*UpdateFieldOutput, error)
	SetRace(ctx context.Context, input *SetRaceInput) (*SetRaceOutput, error)
	SetRaceTalent(ctx context.Context, input *SetRaceTalentInput) (*SetRaceTalentOutput, error)
	SetAbilityBase(ctx context.Context, input *SetAbilityInput) (*SetAbilityOutput, error)
	SetAbilitySave(ctx context.Context, input *SetAbilityInput) (*SetAbilityOutput, error)
	SetSkillBonus(ctx context.Context, input *SetSkillBonusInput) (*SetSkillBonusOutput, error)
	SetSpellcasting(ctx context.Context, input *SetSpellcastingInput) (*SetSpellcastingOutput, error)

	// Row collections
	EditRow(ctx context.Context, input *EditRowInput) (*EditRowOutput, error)
	MoveRow(ctx context.Context, input *MoveRowInput) (*MoveRowOutput, error)
	AddRow(ctx context.Context, input *AddRowInput) (*AddRowOutput, error)
	RemoveRow(ctx context.Context, input *RemoveRowInput) (*RemoveRowOutput, error)

	// Catalog pickers
	ListOptions(ctx context.Context, input *ListOptionsInput) (*ListOptionsOutput, error)
	PreviewItem(ctx context.Context, input *PreviewItemInput) (*PreviewItemOutput, error)
	AddFromCatalog(ctx context.Context, input *AddFromCatalogInput) (*AddFromCatalogOutput, error)
	ReplaceFromCatalog(ctx context.Context, input *ReplaceFromCatalogInput) (*ReplaceFromCatalogOutput, error)
	DeleteViaPicker(ctx context.Context, input *DeleteViaPickerInput) (*DeleteViaPickerOutput, error)

	// Race lookups
	RaceInfo(ctx context.Context, input *RaceInfoInput) (*RaceInfoOutput, error)
	AllowedTalents(ctx context.Context, input *AllowedTalentsInput) (*AllowedTalentsOutput, error)

	// Export and import
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// Lifecycle types

// LoadInput defines the request for loading the saved character
type LoadInput struct{}

// LoadOutput defines the response for loading the saved character. Found is
// false when the slot was empty or unreadable and a fresh sheet was used.
type LoadOutput struct {
	Character *entities.Character
	Found     bool
	SavedAt   time.Time
}

// GetInput defines the request for the current character
type GetInput struct{}

// GetOutput defines the response for the current character
type GetOutput struct {
	Character *entities.Character
}

// ResetInput defines the request for replacing the sheet with a blank one
type ResetInput struct{}

// ResetOutput defines the response for a reset
type ResetOutput struct {
	Character *entities.Character
}

// SetAutosaveInput turns saving after every change on or off
type SetAutosaveInput struct {
	Enabled bool
}

// SetAutosaveOutput reports the autosave setting now in effect
type SetAutosaveOutput struct {
	Enabled bool
}

// Field types

// UpdateFieldInput sets one scalar field by its JSON key ("name", "maxHP",
// "desc.nemesis", ...). Numbers may be given as ints or as text.
type UpdateFieldInput struct {
	Key   string
	Value interface{}
}

// UpdateFieldOutput defines the response for a field update
type UpdateFieldOutput struct {
	Character *entities.Character
}

// SetRaceInput chooses the race. A race talent the new race does not allow
// is cleared.
type SetRaceInput struct {
	Race string
}

// SetRaceOutput defines the response for a race change
type SetRaceOutput struct {
	Character      *entities.Character
	TalentCleared  bool
	AllowedTalents []string
}

// SetRaceTalentInput chooses the race talent. Blank clears it.
type SetRaceTalentInput struct {
	Talent string
}

// SetRaceTalentOutput defines the response for a race talent change
type SetRaceTalentOutput struct {
	Character *entities.Character
}

// SetAbilityInput sets an ability's base or save from typed text. Partial
// input such as "" or "-" stores blank.
type SetAbilityInput struct {
	Ability entities.AbilityKey
	Value   string
}

// SetAbilityOutput defines the response for an ability change
type SetAbilityOutput struct {
	Character *entities.Character
}

// SetSkillBonusInput sets a skill's bonus from typed text
type SetSkillBonusInput struct {
	Skill string
	Value string
}

// SetSkillBonusOutput defines the response for a skill change
type SetSkillBonusOutput struct {
	Character *entities.Character
}

// SetSpellcastingInput updates the spellcasting block. Nil fields are left
// alone.
type SetSpellcastingInput struct {
	Ability     *entities.AbilityKey
	Domain      *string
	SpellAttack *string
}

// SetSpellcastingOutput defines the response for a spellcasting change
type SetSpellcastingOutput struct {
	Character *entities.Character
}

// Row types

// EditRowInput sets one cell of one row by hand
type EditRowInput struct {
	Collection entities.Collection
	Index      int
	Field      string
	Value      string
}

// EditRowOutput defines the response for a cell edit
type EditRowOutput struct {
	Character *entities.Character
}

// MoveRowInput reorders a row. To is read after the row is taken out.
type MoveRowInput struct {
	Collection entities.Collection
	From       int
	To         int
}

// MoveRowOutput defines the response for a reorder
type MoveRowOutput struct {
	Character *entities.Character
}

// AddRowInput adds a blank row at Index, or at the end when Index is nil
type AddRowInput struct {
	Collection entities.Collection
	Index      *int
}

// AddRowOutput defines the response for adding a blank row
type AddRowOutput struct {
	Character *entities.Character
	Index     int
}

// RemoveRowInput removes a row
type RemoveRowInput struct {
	Collection entities.Collection
	Index      int
}

// RemoveRowOutput defines the response for removing a row
type RemoveRowOutput struct {
	Character *entities.Character
}

// Picker types

// Option is one catalog item offered by a picker
type Option struct {
	Key   string
	Label string
}

// FilterState is a picker filter with the value it was evaluated at
type FilterState struct {
	Name    string
	Label   string
	Value   string
	Choices []string
}

// Field is one preview line
type Field struct {
	Label string
	Value string
}

// ListOptionsInput asks a picker for its options. Filters override the
// defaults by name. With EditIndex set the picker opens on that row.
type ListOptionsInput struct {
	Collection entities.Collection
	Filters    map[string]string
	EditIndex  *int
}

// ListOptionsOutput defines the filtered options, in display order
type ListOptionsOutput struct {
	Options  []Option
	Filters  []FilterState
	Selected string
}

// PreviewItemInput asks for the preview of one catalog item, which must be
// among the options under Filters
type PreviewItemInput struct {
	Collection entities.Collection
	Key        string
	Filters    map[string]string
}

// PreviewItemOutput defines the preview, plus the child picks the item
// offers
type PreviewItemOutput struct {
	Fields          []Field
	ChildSlots      int
	ChildCandidates []Option
}

// AddFromCatalogInput appends the row built from a catalog item. Key must be
// among the options under Filters. Children fills child slots in order.
type AddFromCatalogInput struct {
	Collection entities.Collection
	Key        string
	Filters    map[string]string
	Children   []string
}

// AddFromCatalogOutput defines the response for a catalog add
type AddFromCatalogOutput struct {
	Character *entities.Character
}

// ReplaceFromCatalogInput overwrites a row with the one built from a catalog
// item
type ReplaceFromCatalogInput struct {
	Collection entities.Collection
	Index      int
	Key        string
	Filters    map[string]string
	Children   []string
}

// ReplaceFromCatalogOutput defines the response for a catalog replace
type ReplaceFromCatalogOutput struct {
	Character *entities.Character
}

// DeleteViaPickerInput deletes a row from the picker's edit mode
type DeleteViaPickerInput struct {
	Collection entities.Collection
	Index      int
}

// DeleteViaPickerOutput defines the response for a picker delete
type DeleteViaPickerOutput struct {
	Character *entities.Character
}

// Race types

// RaceInfoInput names the race and talent to describe. Blank values use the
// current character's.
type RaceInfoInput struct {
	Race   string
	Talent string
}

// RaceInfoOutput describes a race and race talent from the catalog
type RaceInfoOutput struct {
	Races        []string
	Race         string
	Found        bool
	RaceFields   []Field
	Talent       string
	TalentFound  bool
	TalentFields []Field
}

// AllowedTalentsInput names a race; blank uses the current character's
type AllowedTalentsInput struct {
	Race string
}

// AllowedTalentsOutput lists the race talents the race may take
type AllowedTalentsOutput struct {
	Race    string
	Talents []string
}

// Export types

// ExportInput defines the request for exporting the sheet
type ExportInput struct {
	Indent bool
}

// ExportOutput holds the sheet as JSON
type ExportOutput struct {
	Data []byte
}

// ImportInput holds a sheet to replace the current one
type ImportInput struct {
	Data []byte
}

// ImportOutput defines the response for an import
type ImportOutput struct {
	Character *entities.Character
}
