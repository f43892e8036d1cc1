// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/numeric"
)

// CharacterBuilder provides a fluent interface for building test sheets
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder starts from a blank sheet
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{character: entities.NewCharacter()}
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithRaceTalent sets the race and race talent
func (b *CharacterBuilder) WithRaceTalent(race, talent string) *CharacterBuilder {
	b.character.RaceTalent = entities.FormatRaceTalent(race, talent)
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = numeric.Of(level)
	return b
}

// WithAbility sets an ability's base score
func (b *CharacterBuilder) WithAbility(key entities.AbilityKey, base int) *CharacterBuilder {
	score := b.character.Abilities[key]
	score.Base = numeric.Of(base)
	b.character.Abilities[key] = score
	return b
}

// WithSpellcasting sets the spellcasting ability and domain
func (b *CharacterBuilder) WithSpellcasting(key entities.AbilityKey, domain string) *CharacterBuilder {
	b.character.Spellcasting.Ability = key
	b.character.Spellcasting.Domain = domain
	return b
}

// WithWeapons replaces the weapon rows
func (b *CharacterBuilder) WithWeapons(rows ...entities.WeaponRow) *CharacterBuilder {
	b.character.Weapons = rows
	return b
}

// WithTalents replaces the talent rows
func (b *CharacterBuilder) WithTalents(rows ...entities.TalentRow) *CharacterBuilder {
	b.character.Talents = rows
	return b
}

// WithActions replaces the action rows
func (b *CharacterBuilder) WithActions(rows ...entities.ActionRow) *CharacterBuilder {
	b.character.Actions = rows
	return b
}

// Build returns the sheet
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character.Clone()
}
