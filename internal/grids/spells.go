package grids

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/vop-sheet/internal/catalog"
	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/picker"
	"github.com/KirkDiggler/vop-sheet/internal/pkg/collation"
)

// Spells binds the spells collection to the spell catalog. The Ability and
// Domain filters start from the character's spellcasting block and match a
// spell when either one does; with both blank every spell matches.
func Spells(c *catalog.Catalog, ability, domain string) picker.Config[catalog.Spell, entities.SpellRow] {
	match := func(s catalog.Spell, v picker.Values) bool {
		return SpellMatches(s, v.Get(FilterAbility), v.Get(FilterDomain))
	}

	return picker.Config[catalog.Spell, entities.SpellRow]{
		Items:  c.Spells(),
		Label:  SpellLabel,
		Key:    func(s catalog.Spell) string { return s.Name },
		RowKey: func(r entities.SpellRow) string { return r.Name },
		ToRow: func(s catalog.Spell) entities.SpellRow {
			return entities.SpellRow{
				Name:        s.Name,
				Action:      s.Action,
				Mana:        s.Mana,
				Range:       s.Range,
				Duration:    s.Duration,
				Focus:       s.Focus,
				Description: s.Description,
			}
		},
		Less: func(a, b catalog.Spell) bool {
			ma, mb := ManaCost(a.Mana), ManaCost(b.Mana)
			if ma != mb {
				return ma < mb
			}
			return collation.Compare(a.Name, b.Name) < 0
		},
		Filters: []picker.Filter[catalog.Spell]{
			{Name: FilterAbility, Label: "Ability", Default: ability, Match: match},
			{Name: FilterDomain, Label: "Domain", Default: domain, Choices: append([]string{""}, entities.Domains...), Match: match},
		},
		Preview: recordPreview(func(s catalog.Spell) catalog.Record { return s.Record },
			"Name", "Ability", "Action", "Mana", "Damage Type", "Domain", "Duration", "Focus", "Range", "Description"),
	}
}

// SpellMatches is the Ability OR Domain test. Ability compares whole values;
// Domain looks for one of the spell's comma separated domains.
func SpellMatches(s catalog.Spell, ability, domain string) bool {
	a, d := norm(ability), norm(domain)
	if a == "" && d == "" {
		return true
	}
	if a != "" && norm(s.Ability) == a {
		return true
	}
	return d != "" && HasToken(s.Domain, d)
}

// ManaCost reads the leading integer of a mana cost. Costs without one sort
// after every numeric cost.
func ManaCost(raw string) float64 {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return math.Inf(1)
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return math.Inf(1)
	}
	return float64(n)
}

// HasFocus reports whether the spell needs focus
func HasFocus(s catalog.Spell) bool {
	return IsTruthy(s.Focus)
}

// SpellLabel renders "<mana> – <name>[ (F)] – <action>", with "?" for a
// mana cost that is not a number.
func SpellLabel(s catalog.Spell) string {
	mana := "?"
	if m := ManaCost(s.Mana); !math.IsInf(m, 1) {
		mana = strconv.Itoa(int(m))
	}
	focus := ""
	if HasFocus(s) {
		focus = " (F)"
	}
	return mana + " – " + s.Name + focus + " – " + s.Action
}
