package entities

import (
	"sort"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
)

// Domains are the spellcasting domains
var Domains = []string{"Darkness", "Light", "Chaos", "Order", "Nature", "Beauty", "Knowledge"}

// ActionRow is an action or support action
type ActionRow struct {
	Ability string `json:"ability"`
	ToHit   string `json:"toHit"`
	Damage  string `json:"damage"`
	Effect  string `json:"effect"`
}

// ReactionRow is a reaction
type ReactionRow struct {
	Ability string `json:"ability"`
	Effect  string `json:"effect"`
}

// SpecialRow is a special ability
type SpecialRow struct {
	Name   string `json:"name"`
	Effect string `json:"effect"`
}

// SpellRow is a known spell
type SpellRow struct {
	Name        string `json:"name"`
	Action      string `json:"action"`
	Mana        string `json:"mana"`
	Range       string `json:"range"`
	Duration    string `json:"duration"`
	Focus       string `json:"focus"`
	Description string `json:"description"`
}

// TalentRow is a talent. ChildSelections names the child talents picked
// along with it.
type TalentRow struct {
	Name            string   `json:"name"`
	Action          string   `json:"action"`
	Description     string   `json:"description"`
	ChildSelections []string `json:"childSelections,omitempty"`
}

// WeaponRow is a carried weapon
type WeaponRow struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Damage   string `json:"dmg"`
	Bonus    string `json:"bonus"`
	Reach    string `json:"reach"`
	Ability  string `json:"ability"`
	Starting string `json:"starting"`
}

// ArmorRow is a worn armor piece
type ArmorRow struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	ACBonus      string `json:"acBonus"`
	Penalty      string `json:"penalty"`
	Property     string `json:"property"`
	Requirements string `json:"requirements"`
	Starting     string `json:"starting"`
}

// EquipRow is a piece of equipment
type EquipRow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// cells maps a row's JSON field names to its text fields
type cells[T any] map[string]func(*T) *string

func (cs cells[T]) set(row T, field, value string) (T, error) {
	get, ok := cs[field]
	if !ok {
		return row, errors.UnknownField(field).
			WithMeta("fields", cs.names())
	}
	*get(&row) = value
	return row, nil
}

func (cs cells[T]) get(row T, field string) (string, error) {
	get, ok := cs[field]
	if !ok {
		return "", errors.UnknownField(field)
	}
	return *get(&row), nil
}

func (cs cells[T]) names() []string {
	out := make([]string, 0, len(cs))
	for k := range cs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var actionCells = cells[ActionRow]{
	"ability": func(r *ActionRow) *string { return &r.Ability },
	"toHit":   func(r *ActionRow) *string { return &r.ToHit },
	"damage":  func(r *ActionRow) *string { return &r.Damage },
	"effect":  func(r *ActionRow) *string { return &r.Effect },
}

var reactionCells = cells[ReactionRow]{
	"ability": func(r *ReactionRow) *string { return &r.Ability },
	"effect":  func(r *ReactionRow) *string { return &r.Effect },
}

var specialCells = cells[SpecialRow]{
	"name":   func(r *SpecialRow) *string { return &r.Name },
	"effect": func(r *SpecialRow) *string { return &r.Effect },
}

var spellCells = cells[SpellRow]{
	"name":        func(r *SpellRow) *string { return &r.Name },
	"action":      func(r *SpellRow) *string { return &r.Action },
	"mana":        func(r *SpellRow) *string { return &r.Mana },
	"range":       func(r *SpellRow) *string { return &r.Range },
	"duration":    func(r *SpellRow) *string { return &r.Duration },
	"focus":       func(r *SpellRow) *string { return &r.Focus },
	"description": func(r *SpellRow) *string { return &r.Description },
}

var talentCells = cells[TalentRow]{
	"name":        func(r *TalentRow) *string { return &r.Name },
	"action":      func(r *TalentRow) *string { return &r.Action },
	"description": func(r *TalentRow) *string { return &r.Description },
}

var weaponCells = cells[WeaponRow]{
	"name":     func(r *WeaponRow) *string { return &r.Name },
	"type":     func(r *WeaponRow) *string { return &r.Type },
	"dmg":      func(r *WeaponRow) *string { return &r.Damage },
	"bonus":    func(r *WeaponRow) *string { return &r.Bonus },
	"reach":    func(r *WeaponRow) *string { return &r.Reach },
	"ability":  func(r *WeaponRow) *string { return &r.Ability },
	"starting": func(r *WeaponRow) *string { return &r.Starting },
}

var armorCells = cells[ArmorRow]{
	"name":         func(r *ArmorRow) *string { return &r.Name },
	"type":         func(r *ArmorRow) *string { return &r.Type },
	"acBonus":      func(r *ArmorRow) *string { return &r.ACBonus },
	"penalty":      func(r *ArmorRow) *string { return &r.Penalty },
	"property":     func(r *ArmorRow) *string { return &r.Property },
	"requirements": func(r *ArmorRow) *string { return &r.Requirements },
	"starting":     func(r *ArmorRow) *string { return &r.Starting },
}

var equipCells = cells[EquipRow]{
	"name":        func(r *EquipRow) *string { return &r.Name },
	"description": func(r *EquipRow) *string { return &r.Description },
}
