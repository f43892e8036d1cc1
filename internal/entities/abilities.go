package entities

import (
	"encoding/json"

	"github.com/KirkDiggler/vop-sheet/internal/abilities"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/numeric"
)

// AbilityKey names one of the five abilities
type AbilityKey string

const (
	Phy AbilityKey = "Phy"
	Agi AbilityKey = "Agi"
	Int AbilityKey = "Int"
	Con AbilityKey = "Con"
	Cha AbilityKey = "Cha"
)

// AbilityKeys lists the abilities in sheet order
var AbilityKeys = []AbilityKey{Phy, Agi, Int, Con, Cha}

// SpellcastingAbilities are the abilities a caster may cast with
var SpellcastingAbilities = []AbilityKey{Int, Con, Cha}

// String returns the key
func (k AbilityKey) String() string {
	return string(k)
}

// IsValid reports whether k is one of AbilityKeys
func (k AbilityKey) IsValid() bool {
	switch k {
	case Phy, Agi, Int, Con, Cha:
		return true
	default:
		return false
	}
}

// AbilityScore is one ability row. A blank Save follows the modifier; once
// set it no longer tracks Base.
type AbilityScore struct {
	Base numeric.Number
	Save numeric.Number
}

// Mod is the modifier derived from Base
func (a AbilityScore) Mod() numeric.Number {
	return abilities.Modifier(a.Base)
}

// EffectiveSave is Save when set, else Mod
func (a AbilityScore) EffectiveSave() numeric.Number {
	return abilities.EffectiveSave(a.Base, a.Save)
}

type abilityScoreJSON struct {
	Base numeric.Number `json:"base"`
	Mod  numeric.Number `json:"mod"`
	Save numeric.Number `json:"save"`
}

// MarshalJSON writes mod alongside base and save for readers of exported
// sheets. mod is ignored on decode.
func (a AbilityScore) MarshalJSON() ([]byte, error) {
	return json.Marshal(abilityScoreJSON{Base: a.Base, Mod: a.Mod(), Save: a.Save})
}

// UnmarshalJSON reads base and save
func (a *AbilityScore) UnmarshalJSON(data []byte) error {
	var raw abilityScoreJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Base = raw.Base
	a.Save = raw.Save
	return nil
}

// Abilities maps each ability to its score
type Abilities map[AbilityKey]AbilityScore

// Skill is one fixed skill row
type Skill struct {
	Key     string         `json:"key"`
	Ability AbilityKey     `json:"ability"`
	Bonus   numeric.Number `json:"bonus"`
}

// SkillDef pairs a skill with its governing ability
type SkillDef struct {
	Key     string
	Ability AbilityKey
}

// Skills lists every skill in sheet order
var Skills = []SkillDef{
	{"Arcana", Int},
	{"Athletics", Phy},
	{"Deception", Cha},
	{"Finesse", Agi},
	{"Insight", Con},
	{"Intimidation", Cha},
	{"Lore", Int},
	{"Might", Phy},
	{"Perception", Con},
	{"Performance", Cha},
	{"Persuasion", Cha},
	{"Religion", Int},
	{"Stealth", Agi},
	{"Survival", Con},
}

// normalizeSkills returns one row per known skill in sheet order, keeping
// bonuses from rows that are already present.
func normalizeSkills(in []Skill) []Skill {
	bonus := make(map[string]numeric.Number, len(in))
	for _, s := range in {
		bonus[s.Key] = s.Bonus
	}
	out := make([]Skill, len(Skills))
	for i, def := range Skills {
		out[i] = Skill{Key: def.Key, Ability: def.Ability, Bonus: bonus[def.Key]}
	}
	return out
}

// Ability returns the score for key
func (c *Character) Ability(key AbilityKey) AbilityScore {
	return c.Abilities[key]
}

// WithAbilityBase sets an ability's base score
func (c *Character) WithAbilityBase(key AbilityKey, base numeric.Number) (*Character, error) {
	if !key.IsValid() {
		return nil, errors.InvalidArgumentf("unknown ability %q", key)
	}
	out := c.Clone()
	score := out.Abilities[key]
	score.Base = base
	out.Abilities[key] = score
	return out, nil
}

// WithAbilitySave overrides an ability's save. Blank returns the save to
// following the modifier.
func (c *Character) WithAbilitySave(key AbilityKey, save numeric.Number) (*Character, error) {
	if !key.IsValid() {
		return nil, errors.InvalidArgumentf("unknown ability %q", key)
	}
	out := c.Clone()
	score := out.Abilities[key]
	score.Save = save
	out.Abilities[key] = score
	return out, nil
}

// WithSkillBonus sets the bonus of the named skill
func (c *Character) WithSkillBonus(skill string, bonus numeric.Number) (*Character, error) {
	for i, s := range c.Skills {
		if s.Key != skill {
			continue
		}
		out := c.Clone()
		out.Skills[i].Bonus = bonus
		return out, nil
	}
	return nil, errors.InvalidArgumentf("unknown skill %q", skill)
}

// SkillTotal is the skill bonus plus its ability modifier
func (c *Character) SkillTotal(skill string) (numeric.Number, error) {
	for _, s := range c.Skills {
		if s.Key == skill {
			return abilities.SkillTotal(s.Bonus, c.Ability(s.Ability).Mod()), nil
		}
	}
	return numeric.Blank(), errors.InvalidArgumentf("unknown skill %q", skill)
}

// SpellcastingMod is the modifier of the spellcasting ability
func (c *Character) SpellcastingMod() numeric.Number {
	if c.Spellcasting.Ability == "" {
		return numeric.Blank()
	}
	return c.Ability(c.Spellcasting.Ability).Mod()
}

// SpellSaveDC is 10 plus the spellcasting modifier
func (c *Character) SpellSaveDC() numeric.Number {
	return abilities.SpellSaveDC(c.SpellcastingMod())
}

// WithSpellcastingAbility changes the casting ability. When no spell attack
// has been entered it is seeded from the new ability's modifier.
func (c *Character) WithSpellcastingAbility(key AbilityKey) (*Character, error) {
	if key != "" && !isSpellcastingAbility(key) {
		return nil, errors.InvalidArgumentf("%q cannot be a spellcasting ability", key)
	}
	out := c.Clone()
	out.Spellcasting.Ability = key
	if out.Spellcasting.SpellAttack.IsBlank() {
		out.Spellcasting.SpellAttack = out.SpellcastingMod()
	}
	return out, nil
}

// WithSpellcastingDomain sets the casting domain
func (c *Character) WithSpellcastingDomain(domain string) *Character {
	out := c.Clone()
	out.Spellcasting.Domain = domain
	return out
}

// WithSpellAttack sets the spell attack bonus
func (c *Character) WithSpellAttack(n numeric.Number) *Character {
	out := c.Clone()
	out.Spellcasting.SpellAttack = n
	return out
}

func isSpellcastingAbility(key AbilityKey) bool {
	for _, k := range SpellcastingAbilities {
		if k == key {
			return true
		}
	}
	return false
}
