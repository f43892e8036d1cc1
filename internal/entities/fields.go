package entities

import (
	"sort"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/numeric"
)

// DescPrefix addresses the narrative fields, e.g. "desc.nemesis"
const DescPrefix = "desc."

// FieldRaceTalent is the combined "<race> | <talent>" field
const FieldRaceTalent = "raceTalent"

// fieldDef describes one key accepted by WithField. Exactly one of text,
// number or value is set.
type fieldDef struct {
	text   func(*Character) *string
	number func(*Character) *numeric.Number
	value  func(c *Character, v interface{}) error
}

func textField(get func(*Character) *string) fieldDef {
	return fieldDef{text: get}
}

func numberField(get func(*Character) *numeric.Number) fieldDef {
	return fieldDef{number: get}
}

func valueField[T any](get func(*Character) *T) fieldDef {
	return fieldDef{value: func(c *Character, value interface{}) error {
		v, ok := value.(T)
		if !ok {
			var want T
			return errors.InvalidArgumentf("expected %T, got %T", want, value)
		}
		*get(c) = v
		return nil
	}}
}

var fields = map[string]fieldDef{
	"name":          textField(func(c *Character) *string { return &c.Name }),
	FieldRaceTalent: textField(func(c *Character) *string { return &c.RaceTalent }),
	"gender":        textField(func(c *Character) *string { return &c.Gender }),
	"occupation":    textField(func(c *Character) *string { return &c.Occupation }),
	"patron":        textField(func(c *Character) *string { return &c.Patron }),

	"level":      numberField(func(c *Character) *numeric.Number { return &c.Level }),
	"age":        numberField(func(c *Character) *numeric.Number { return &c.Age }),
	"speed":      numberField(func(c *Character) *numeric.Number { return &c.Speed }),
	"initiative": numberField(func(c *Character) *numeric.Number { return &c.Initiative }),
	"armorClass": numberField(func(c *Character) *numeric.Number { return &c.ArmorClass }),
	"maxHP":      numberField(func(c *Character) *numeric.Number { return &c.MaxHP }),
	"curHP":      numberField(func(c *Character) *numeric.Number { return &c.CurHP }),
	"maxMana":    numberField(func(c *Character) *numeric.Number { return &c.MaxMana }),
	"curMana":    numberField(func(c *Character) *numeric.Number { return &c.CurMana }),

	"abilities":      valueField(func(c *Character) *Abilities { return &c.Abilities }),
	"skills":         valueField(func(c *Character) *[]Skill { return &c.Skills }),
	"actions":        valueField(func(c *Character) *[]ActionRow { return &c.Actions }),
	"supportActions": valueField(func(c *Character) *[]ActionRow { return &c.SupportActions }),
	"reactions":      valueField(func(c *Character) *[]ReactionRow { return &c.Reactions }),
	"specials":       valueField(func(c *Character) *[]SpecialRow { return &c.Specials }),
	"spellcasting":   valueField(func(c *Character) *Spellcasting { return &c.Spellcasting }),
	"spells":         valueField(func(c *Character) *[]SpellRow { return &c.Spells }),
	"talents":        valueField(func(c *Character) *[]TalentRow { return &c.Talents }),
	"weapons":        valueField(func(c *Character) *[]WeaponRow { return &c.Weapons }),
	"armor":          valueField(func(c *Character) *[]ArmorRow { return &c.Armor }),
	"equipment":      valueField(func(c *Character) *[]EquipRow { return &c.Equipment }),
	"desc":           valueField(func(c *Character) *Desc { return &c.Desc }),

	DescPrefix + "area":         textField(func(c *Character) *string { return &c.Desc.Area }),
	DescPrefix + "friendHome":   textField(func(c *Character) *string { return &c.Desc.FriendHome }),
	DescPrefix + "seeking":      textField(func(c *Character) *string { return &c.Desc.Seeking }),
	DescPrefix + "friendNearby": textField(func(c *Character) *string { return &c.Desc.FriendNearby }),
	DescPrefix + "nemesis":      textField(func(c *Character) *string { return &c.Desc.Nemesis }),
	DescPrefix + "profession":   textField(func(c *Character) *string { return &c.Desc.Profession }),
	DescPrefix + "physical":     textField(func(c *Character) *string { return &c.Desc.Physical }),
	DescPrefix + "personality":  textField(func(c *Character) *string { return &c.Desc.Personality }),
}

// FieldKeys returns every key accepted by WithField, sorted
func FieldKeys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ScalarFieldKeys returns the text and number keys, sorted
func ScalarFieldKeys() []string {
	var keys []string
	for _, k := range FieldKeys() {
		if IsScalarField(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// IsScalarField reports whether key holds text or a number
func IsScalarField(key string) bool {
	def, ok := fields[key]
	return ok && def.value == nil
}

// WithField returns a copy with one field replaced. Text fields take a
// string. Number fields take a numeric.Number, an integer, a whole float, or
// text read leniently, where anything that is not a number is blank.
// Structured fields take a value of their own type.
func (c *Character) WithField(key string, value interface{}) (*Character, error) {
	def, ok := fields[key]
	if !ok {
		return nil, errors.UnknownField(key)
	}

	out := c.Clone()
	var err error
	switch {
	case def.text != nil:
		s, ok := value.(string)
		if !ok {
			err = errors.InvalidArgumentf("expected text, got %T", value)
			break
		}
		*def.text(out) = s
	case def.number != nil:
		var n numeric.Number
		n, err = ToNumber(value)
		if err == nil {
			*def.number(out) = n
		}
	default:
		err = def.value(out, value)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set %s", key).WithMeta("field", key)
	}
	return out, nil
}

// Field reads a scalar field as text. Blank numbers read as "".
func (c *Character) Field(key string) (string, error) {
	def, ok := fields[key]
	if !ok || def.value != nil {
		return "", errors.InvalidArgumentf("%q is not a scalar field", key)
	}
	if def.text != nil {
		return *def.text(c), nil
	}
	return def.number(c).String(), nil
}

// ToNumber converts the loosely typed values that reach number fields
func ToNumber(value interface{}) (numeric.Number, error) {
	switch v := value.(type) {
	case nil:
		return numeric.Blank(), nil
	case numeric.Number:
		return v, nil
	case int:
		return numeric.Of(v), nil
	case int32:
		return numeric.Of(int(v)), nil
	case int64:
		return numeric.Of(int(v)), nil
	case float64:
		n, err := numeric.FromFloat(v)
		if err != nil {
			return numeric.Blank(), errors.InvalidArgumentf("%v is not a whole number in range", v)
		}
		return n, nil
	case string:
		return numeric.ParseSigned(v), nil
	default:
		return numeric.Blank(), errors.InvalidArgumentf("expected a number, got %T", value)
	}
}
