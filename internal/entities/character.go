// Package entities holds the character sheet aggregate and its row types.
//
// A Character is treated as a value: every With* method returns a new
// *Character and leaves the receiver untouched, so anyone holding the old
// pointer keeps a consistent snapshot.
package entities

import (
	"github.com/KirkDiggler/vop-sheet/internal/numeric"
)

// Character is the complete sheet. JSON names match exported sheet files.
type Character struct {
	Name       string         `json:"name"`
	RaceTalent string         `json:"raceTalent"`
	Level      numeric.Number `json:"level"`
	Age        numeric.Number `json:"age"`
	Speed      numeric.Number `json:"speed"`
	Gender     string         `json:"gender"`
	Initiative numeric.Number `json:"initiative"`
	Occupation string         `json:"occupation"`
	ArmorClass numeric.Number `json:"armorClass"`
	Patron     string         `json:"patron"`
	MaxHP      numeric.Number `json:"maxHP"`
	CurHP      numeric.Number `json:"curHP"`
	MaxMana    numeric.Number `json:"maxMana"`
	CurMana    numeric.Number `json:"curMana"`

	Abilities      Abilities     `json:"abilities"`
	Skills         []Skill       `json:"skills"`
	Actions        []ActionRow   `json:"actions"`
	SupportActions []ActionRow   `json:"supportActions"`
	Reactions      []ReactionRow `json:"reactions"`
	Specials       []SpecialRow  `json:"specials"`
	Spellcasting   Spellcasting  `json:"spellcasting"`
	Spells         []SpellRow    `json:"spells"`
	Talents        []TalentRow   `json:"talents"`
	Weapons        []WeaponRow   `json:"weapons"`
	Armor          []ArmorRow    `json:"armor"`
	Equipment      []EquipRow    `json:"equipment"`
	Desc           Desc          `json:"desc"`
}

// Spellcasting is the spellcasting block. The modifier and save DC are
// derived from the chosen ability.
type Spellcasting struct {
	Ability     AbilityKey     `json:"ability"`
	Domain      string         `json:"domain"`
	SpellAttack numeric.Number `json:"spellAttack"`
}

// Desc holds the narrative prompts
type Desc struct {
	Area         string `json:"area"`
	FriendHome   string `json:"friendHome"`
	Seeking      string `json:"seeking"`
	FriendNearby string `json:"friendNearby"`
	Nemesis      string `json:"nemesis"`
	Profession   string `json:"profession"`
	Physical     string `json:"physical"`
	Personality  string `json:"personality"`
}

// Minimum rows shown for each collection
const (
	DefaultActions        = 3
	DefaultSupportActions = 3
	DefaultReactions      = 6
	DefaultSpecials       = 3
	DefaultSpells         = 12
	DefaultTalents        = 10
	DefaultEquipment      = 10
)

// NewCharacter returns a blank level 1 sheet with every collection seeded
func NewCharacter() *Character {
	c := &Character{
		Level:        numeric.Of(1),
		Spellcasting: Spellcasting{Ability: Int},
	}
	c.Normalize()
	return c
}

// Normalize fills whatever a decoded sheet left out: missing abilities and
// skills, and absent collections seeded to their minimum row counts. A
// collection that is present but empty stays empty.
func (c *Character) Normalize() {
	abilities := make(Abilities, len(AbilityKeys))
	for _, k := range AbilityKeys {
		abilities[k] = c.Abilities[k]
	}
	c.Abilities = abilities

	c.Skills = normalizeSkills(c.Skills)

	c.Actions = seed(c.Actions, DefaultActions)
	c.SupportActions = seed(c.SupportActions, DefaultSupportActions)
	c.Reactions = seed(c.Reactions, DefaultReactions)
	c.Specials = seed(c.Specials, DefaultSpecials)
	c.Spells = seed(c.Spells, DefaultSpells)
	c.Talents = seed(c.Talents, DefaultTalents)
	c.Equipment = seed(c.Equipment, DefaultEquipment)
	c.Weapons = seed(c.Weapons, 0)
	c.Armor = seed(c.Armor, 0)
}

func seed[T any](rows []T, n int) []T {
	if rows != nil {
		return rows
	}
	return make([]T, n)
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c

	out.Abilities = make(Abilities, len(c.Abilities))
	for k, v := range c.Abilities {
		out.Abilities[k] = v
	}

	out.Skills = cloneSlice(c.Skills)
	out.Actions = cloneSlice(c.Actions)
	out.SupportActions = cloneSlice(c.SupportActions)
	out.Reactions = cloneSlice(c.Reactions)
	out.Specials = cloneSlice(c.Specials)
	out.Spells = cloneSlice(c.Spells)
	out.Weapons = cloneSlice(c.Weapons)
	out.Armor = cloneSlice(c.Armor)
	out.Equipment = cloneSlice(c.Equipment)

	out.Talents = cloneSlice(c.Talents)
	for i := range out.Talents {
		out.Talents[i].ChildSelections = cloneSlice(out.Talents[i].ChildSelections)
	}

	return &out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
