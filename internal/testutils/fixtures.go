package testutils

import (
	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/numeric"
)

const (
	// TestSlot is the save slot used by repository and orchestrator tests
	TestSlot = "vop.character.test"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Maren Ashdown"
)

// CreateTestCharacter returns a sheet with something in every section, so
// round trips exercise every field.
func CreateTestCharacter() *entities.Character {
	c := entities.NewCharacter()

	c.Name = TestCharacterName
	c.RaceTalent = entities.FormatRaceTalent("Elf", "Fey Step")
	c.Level = numeric.Of(3)
	c.Age = numeric.Of(112)
	c.Speed = numeric.Of(30)
	c.Gender = "F"
	c.Initiative = numeric.Of(2)
	c.Occupation = "Cartographer"
	c.ArmorClass = numeric.Of(13)
	c.Patron = "The Pale Archivist"
	c.MaxHP = numeric.Of(21)
	c.CurHP = numeric.Of(17)
	c.MaxMana = numeric.Of(8)
	c.CurMana = numeric.Blank()

	c.Abilities[entities.Phy] = entities.AbilityScore{Base: numeric.Of(9)}
	c.Abilities[entities.Agi] = entities.AbilityScore{Base: numeric.Of(15), Save: numeric.Of(4)}
	c.Abilities[entities.Int] = entities.AbilityScore{Base: numeric.Of(16)}
	c.Abilities[entities.Con] = entities.AbilityScore{Base: numeric.Of(12)}
	c.Abilities[entities.Cha] = entities.AbilityScore{Base: numeric.Of(7)}
	c.Skills[0].Bonus = numeric.Of(2)

	c.Actions[0] = entities.ActionRow{Ability: "Agi", ToHit: "+4", Damage: "1d4+2", Effect: "Dagger"}
	c.Reactions[0] = entities.ReactionRow{Ability: "Int", Effect: "Counter-glyph"}
	c.Specials[0] = entities.SpecialRow{Name: "Trance", Effect: "Rest in 4 hours"}

	c.Spellcasting = entities.Spellcasting{Ability: entities.Int, Domain: "Knowledge", SpellAttack: numeric.Of(5)}
	c.Spells[0] = entities.SpellRow{Name: "Spark", Action: "Action", Mana: "1", Range: "30 ft", Duration: "Instant", Focus: "no"}

	c.Talents[0] = entities.TalentRow{
		Name:            "Weapon Training",
		Action:          "Passive",
		ChildSelections: []string{"Dual Wield Mastery"},
	}
	c.Talents[1] = entities.TalentRow{Name: "Dual Wield Mastery", Action: "Passive"}

	c.Weapons = []entities.WeaponRow{{
		Name: "Dagger", Type: "Light, Finesse, Thrown", Damage: "1d4",
		Reach: "5 ft / 20 ft", Ability: "Agi", Starting: "Yes",
	}}
	c.Armor = []entities.ArmorRow{{Name: "Leather", Type: "Light", ACBonus: "2", Starting: "1"}}
	c.Equipment[0] = entities.EquipRow{Name: "Rope", Description: "50 ft, hemp"}

	c.Desc = entities.Desc{Area: "Saltmarsh", Nemesis: "The Drowned Cartel"}

	return c
}
