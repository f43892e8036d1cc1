// Package abilities derives the arithmetic shown next to ability scores,
// skills and the spellcasting block.
package abilities

import "github.com/KirkDiggler/vop-sheet/internal/numeric"

// Modifier returns floor((base-10)/2), or blank for a blank base.
func Modifier(base numeric.Number) numeric.Number {
	b, ok := base.Int()
	if !ok {
		return numeric.Blank()
	}
	return numeric.Of(floorDiv(b-10, 2))
}

// EffectiveSave returns the stored save when one has been set, otherwise the
// modifier derived from base.
func EffectiveSave(base, save numeric.Number) numeric.Number {
	if !save.IsBlank() {
		return save
	}
	return Modifier(base)
}

// SkillTotal adds a skill bonus to its governing ability modifier. A blank
// bonus counts as zero; a blank modifier makes the total blank.
func SkillTotal(bonus, mod numeric.Number) numeric.Number {
	m, ok := mod.Int()
	if !ok {
		return numeric.Blank()
	}
	return numeric.Of(bonus.Or(0) + m)
}

// SpellSaveDC is 10 plus the spellcasting modifier
func SpellSaveDC(mod numeric.Number) numeric.Number {
	m, ok := mod.Int()
	if !ok {
		return numeric.Blank()
	}
	return numeric.Of(10 + m)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
