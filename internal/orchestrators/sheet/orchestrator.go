// Package sheet implements the sheet service: it owns the character being
// edited, applies every change as a whole-value replacement and saves the
// result in the background.
package sheet

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/vop-sheet/internal/catalog"
	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/vop-sheet/internal/repositories/character"
	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

const errInputRequired = "input is required"

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	Repository characterrepo.Repository
	Catalog    *catalog.Catalog
	Slot       string
	Autosave   bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	errors.ValidateRequired("Slot", c.Slot, vb)

	return vb.Build()
}

// Orchestrator implements the sheet.Service interface
type Orchestrator struct {
	repo    characterrepo.Repository
	catalog *catalog.Catalog
	slot    string

	mu       sync.Mutex
	current  *entities.Character
	version  uint64
	autosave bool

	saveMu       sync.Mutex
	savedVersion uint64
	pending      sync.WaitGroup
}

// New creates a sheet orchestrator holding a blank character. Call Load to
// pick up the saved one.
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		repo:     cfg.Repository,
		catalog:  cfg.Catalog,
		slot:     cfg.Slot,
		current:  entities.NewCharacter(),
		autosave: cfg.Autosave,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ sheet.Service = (*Orchestrator)(nil)

// Wait blocks until every save started so far has finished
func (o *Orchestrator) Wait() {
	o.pending.Wait()
}

// commit installs next as the current character. Callers hold o.mu.
func (o *Orchestrator) commit(ctx context.Context, next *entities.Character) {
	o.current = next
	o.version++

	if o.autosave {
		o.saveAsync(ctx, next, o.version)
	}
}

// saveAsync writes c in the background. Saves run one at a time, and a save
// that finds a newer version already written is skipped.
func (o *Orchestrator) saveAsync(ctx context.Context, c *entities.Character, version uint64) {
	ctx = context.WithoutCancel(ctx)

	o.pending.Add(1)
	go func() {
		defer o.pending.Done()

		o.saveMu.Lock()
		defer o.saveMu.Unlock()

		if version <= o.savedVersion {
			return
		}

		out, err := o.repo.Save(ctx, characterrepo.SaveInput{Slot: o.slot, Character: c})
		if err != nil {
			slog.ErrorContext(ctx, "autosave failed",
				"slot", o.slot,
				"version", version,
				"error", err.Error())
			return
		}
		o.savedVersion = version

		slog.DebugContext(ctx, "autosaved character",
			"slot", o.slot,
			"version", version,
			"saved_at", out.SavedAt)
	}()
}

// mutate applies fn to the current character and commits the result
func (o *Orchestrator) mutate(
	ctx context.Context, fn func(c *entities.Character) (*entities.Character, error),
) (*entities.Character, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	next, err := fn(o.current)
	if err != nil {
		return nil, err
	}
	o.commit(ctx, next)
	return next, nil
}

func (o *Orchestrator) snapshot() *entities.Character {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

func validateCollection(col entities.Collection) error {
	if !col.IsValid() {
		return errors.InvalidArgumentf("unknown collection %q", col).
			WithMeta("collection", col.String())
	}
	return nil
}

// Lifecycle

// Load replaces the current character with the saved one. An empty or
// unreadable slot gives a blank character rather than an error.
func (o *Orchestrator) Load(ctx context.Context, input *sheet.LoadInput) (*sheet.LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := o.repo.Load(ctx, characterrepo.LoadInput{Slot: o.slot})
	if err != nil {
		switch {
		case !errors.IsAbsentSlot(err):
			slog.WarnContext(ctx, "failed to load saved character, starting fresh",
				"slot", o.slot,
				"error", err.Error())
		case errors.IsDataLoss(err):
			slog.WarnContext(ctx, "saved character is unreadable, starting fresh",
				"slot", o.slot,
				"error", err.Error())
		default:
			slog.DebugContext(ctx, "no saved character", "slot", o.slot)
		}
		o.current = entities.NewCharacter()
		o.version++
		return &sheet.LoadOutput{Character: o.current}, nil
	}

	o.current = out.Character
	o.version++
	return &sheet.LoadOutput{
		Character: o.current,
		Found:     true,
		SavedAt:   out.SavedAt,
	}, nil
}

// Get returns the current character
func (o *Orchestrator) Get(_ context.Context, input *sheet.GetInput) (*sheet.GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	return &sheet.GetOutput{Character: o.snapshot()}, nil
}

// Reset replaces the character with a blank one
func (o *Orchestrator) Reset(ctx context.Context, input *sheet.ResetInput) (*sheet.ResetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	next, err := o.mutate(ctx, func(*entities.Character) (*entities.Character, error) {
		return entities.NewCharacter(), nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character reset", "slot", o.slot)
	return &sheet.ResetOutput{Character: next}, nil
}

// SetAutosave turns background saving on or off. Turning it on saves the
// current character straight away.
func (o *Orchestrator) SetAutosave(ctx context.Context, input *sheet.SetAutosaveInput) (*sheet.SetAutosaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	was := o.autosave
	o.autosave = input.Enabled
	if input.Enabled && !was {
		o.saveAsync(ctx, o.current, o.version)
	}
	return &sheet.SetAutosaveOutput{Enabled: o.autosave}, nil
}

// Fields

// UpdateField sets one scalar field
func (o *Orchestrator) UpdateField(ctx context.Context, input *sheet.UpdateFieldInput) (*sheet.UpdateFieldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("key", input.Key, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.Key == entities.FieldRaceTalent {
		return o.updateRaceTalent(ctx, input.Value)
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		return c.WithField(input.Key, input.Value)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update %s", input.Key)
	}
	return &sheet.UpdateFieldOutput{Character: next}, nil
}

// updateRaceTalent writes the combined field under the race change rule: a
// talent the written race may not take is dropped.
func (o *Orchestrator) updateRaceTalent(ctx context.Context, value interface{}) (*sheet.UpdateFieldOutput, error) {
	combined, ok := value.(string)
	if !ok {
		return nil, errors.InvalidArgumentf("expected text, got %T", value).
			WithMeta("field", entities.FieldRaceTalent)
	}

	race, talent := entities.ParseRaceTalent(combined)
	allowed := o.catalog.TalentsAllowedForRace(race)

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		written, err := c.WithField(entities.FieldRaceTalent, entities.FormatRaceTalent(race, talent))
		if err != nil {
			return nil, err
		}
		return written.WithRace(race, allowed), nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update %s", entities.FieldRaceTalent)
	}

	if talent != "" && next.Talent() == "" {
		slog.DebugContext(ctx, "race talent dropped from field update",
			"race", race,
			"talent", talent)
	}
	return &sheet.UpdateFieldOutput{Character: next}, nil
}

// SetRace changes the race, clearing a race talent the new race cannot take
func (o *Orchestrator) SetRace(ctx context.Context, input *sheet.SetRaceInput) (*sheet.SetRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	race := strings.TrimSpace(input.Race)
	allowed := o.catalog.TalentsAllowedForRace(race)

	var cleared bool
	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		next := c.WithRace(race, allowed)
		cleared = c.Talent() != "" && next.Talent() == ""
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	if cleared {
		slog.DebugContext(ctx, "race talent cleared by race change", "race", race)
	}
	return &sheet.SetRaceOutput{
		Character:      next,
		TalentCleared:  cleared,
		AllowedTalents: allowed,
	}, nil
}

// SetRaceTalent chooses a race talent the current race may take
func (o *Orchestrator) SetRaceTalent(ctx context.Context, input *sheet.SetRaceTalentInput) (*sheet.SetRaceTalentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	talent := strings.TrimSpace(input.Talent)
	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		if talent != "" && !o.catalog.TalentAllowedForRace(c.Race(), talent) {
			return nil, errors.InvalidArgumentf("%q is not a race talent for %q", talent, c.Race()).
				WithMeta("allowed", o.catalog.TalentsAllowedForRace(c.Race()))
		}
		return c.WithRaceTalent(talent), nil
	})
	if err != nil {
		return nil, err
	}
	return &sheet.SetRaceTalentOutput{Character: next}, nil
}

// SetAbilityBase sets an ability's base score from typed text
func (o *Orchestrator) SetAbilityBase(ctx context.Context, input *sheet.SetAbilityInput) (*sheet.SetAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		return c.WithAbilityBase(input.Ability, parseTyped(input.Value))
	})
	if err != nil {
		return nil, err
	}
	return &sheet.SetAbilityOutput{Character: next}, nil
}

// SetAbilitySave overrides an ability's save from typed text. Blank goes
// back to following the modifier.
func (o *Orchestrator) SetAbilitySave(ctx context.Context, input *sheet.SetAbilityInput) (*sheet.SetAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		return c.WithAbilitySave(input.Ability, parseTyped(input.Value))
	})
	if err != nil {
		return nil, err
	}
	return &sheet.SetAbilityOutput{Character: next}, nil
}

// SetSkillBonus sets a skill's bonus from typed text
func (o *Orchestrator) SetSkillBonus(ctx context.Context, input *sheet.SetSkillBonusInput) (*sheet.SetSkillBonusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		return c.WithSkillBonus(input.Skill, parseTyped(input.Value))
	})
	if err != nil {
		return nil, err
	}
	return &sheet.SetSkillBonusOutput{Character: next}, nil
}

// SetSpellcasting updates the spellcasting block
func (o *Orchestrator) SetSpellcasting(ctx context.Context, input *sheet.SetSpellcastingInput) (*sheet.SetSpellcastingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		next := c
		if input.Ability != nil {
			var err error
			if next, err = next.WithSpellcastingAbility(*input.Ability); err != nil {
				return nil, err
			}
		}
		if input.Domain != nil {
			next = next.WithSpellcastingDomain(strings.TrimSpace(*input.Domain))
		}
		if input.SpellAttack != nil {
			next = next.WithSpellAttack(parseTyped(*input.SpellAttack))
		}
		if next == c {
			next = c.Clone()
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &sheet.SetSpellcastingOutput{Character: next}, nil
}

// Row collections

// EditRow sets one cell of a row
func (o *Orchestrator) EditRow(ctx context.Context, input *sheet.EditRowInput) (*sheet.EditRowOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if err := validateCollection(input.Collection); err != nil {
		return nil, err
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		return c.WithRowCell(input.Collection, input.Index, input.Field, input.Value)
	})
	if err != nil {
		return nil, err
	}
	return &sheet.EditRowOutput{Character: next}, nil
}

// MoveRow reorders a row
func (o *Orchestrator) MoveRow(ctx context.Context, input *sheet.MoveRowInput) (*sheet.MoveRowOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if err := validateCollection(input.Collection); err != nil {
		return nil, err
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		return c.WithRowMoved(input.Collection, input.From, input.To)
	})
	if err != nil {
		return nil, err
	}
	return &sheet.MoveRowOutput{Character: next}, nil
}

// AddRow adds a blank row
func (o *Orchestrator) AddRow(ctx context.Context, input *sheet.AddRowInput) (*sheet.AddRowOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if err := validateCollection(input.Collection); err != nil {
		return nil, err
	}

	var index int
	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		if input.Index == nil {
			next, err := c.WithRowAppended(input.Collection)
			if err != nil {
				return nil, err
			}
			n, _ := next.RowCount(input.Collection)
			index = n - 1
			return next, nil
		}
		index = *input.Index
		return c.WithRowInserted(input.Collection, index)
	})
	if err != nil {
		return nil, err
	}
	return &sheet.AddRowOutput{Character: next, Index: index}, nil
}

// RemoveRow removes a row
func (o *Orchestrator) RemoveRow(ctx context.Context, input *sheet.RemoveRowInput) (*sheet.RemoveRowOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if err := validateCollection(input.Collection); err != nil {
		return nil, err
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		return c.WithRowRemoved(input.Collection, input.Index)
	})
	if err != nil {
		return nil, err
	}
	return &sheet.RemoveRowOutput{Character: next}, nil
}

// Export and import

// Export writes the current character as JSON
func (o *Orchestrator) Export(_ context.Context, input *sheet.ExportInput) (*sheet.ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	data, err := entities.EncodeCharacter(o.snapshot(), input.Indent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export character")
	}
	return &sheet.ExportOutput{Data: data}, nil
}

// Import replaces the character with the one in Data. Data that is not a
// character leaves the current one untouched.
func (o *Orchestrator) Import(ctx context.Context, input *sheet.ImportInput) (*sheet.ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	imported, err := entities.DecodeCharacter(input.Data)
	if err != nil {
		slog.InfoContext(ctx, "import rejected", "error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid character JSON")
	}

	next, err := o.mutate(ctx, func(*entities.Character) (*entities.Character, error) {
		return imported, nil
	})
	if err != nil {
		return nil, err
	}
	return &sheet.ImportOutput{Character: next}, nil
}

// Race lookups

// RaceInfo describes a race and race talent from the catalog
func (o *Orchestrator) RaceInfo(_ context.Context, input *sheet.RaceInfoInput) (*sheet.RaceInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	race, talent := strings.TrimSpace(input.Race), strings.TrimSpace(input.Talent)
	if race == "" {
		c := o.snapshot()
		race = c.Race()
		if talent == "" {
			talent = c.Talent()
		}
	}

	info := o.catalog.RaceInfo(race, talent)
	return &sheet.RaceInfoOutput{
		Races:        o.catalog.RaceNames(),
		Race:         info.Race,
		Found:        info.Found,
		RaceFields:   toFields(info.RaceFields),
		Talent:       info.Talent,
		TalentFound:  info.TalentFound,
		TalentFields: toFields(info.TalentFields),
	}, nil
}

// AllowedTalents lists the race talents a race may take
func (o *Orchestrator) AllowedTalents(_ context.Context, input *sheet.AllowedTalentsInput) (*sheet.AllowedTalentsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	race := strings.TrimSpace(input.Race)
	if race == "" {
		race = o.snapshot().Race()
	}
	return &sheet.AllowedTalentsOutput{
		Race:    race,
		Talents: o.catalog.TalentsAllowedForRace(race),
	}, nil
}

func toFields(in []catalog.Field) []sheet.Field {
	out := make([]sheet.Field, 0, len(in))
	for _, f := range in {
		out = append(out, sheet.Field{Label: f.Label, Value: f.Value})
	}
	return out
}
