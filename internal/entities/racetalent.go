package entities

import "strings"

const raceTalentSeparator = " | "

// ParseRaceTalent splits the combined "<race> | <talent>" value
func ParseRaceTalent(combined string) (race, talent string) {
	race, talent, _ = strings.Cut(combined, raceTalentSeparator)
	return strings.TrimSpace(race), strings.TrimSpace(talent)
}

// FormatRaceTalent joins race and talent. A blank talent leaves just the
// race, with no trailing separator.
func FormatRaceTalent(race, talent string) string {
	race = strings.TrimSpace(race)
	talent = strings.TrimSpace(talent)
	if talent == "" {
		return race
	}
	return race + raceTalentSeparator + talent
}

// Race returns the race segment
func (c *Character) Race() string {
	race, _ := ParseRaceTalent(c.RaceTalent)
	return race
}

// Talent returns the race talent segment
func (c *Character) Talent() string {
	_, talent := ParseRaceTalent(c.RaceTalent)
	return talent
}

// WithRace changes the race. The current talent survives only if it is in
// allowed, the talents the new race may take.
func (c *Character) WithRace(race string, allowed []string) *Character {
	talent := c.Talent()
	keep := false
	for _, a := range allowed {
		if a == talent {
			keep = true
			break
		}
	}
	if !keep {
		talent = ""
	}

	out := c.Clone()
	out.RaceTalent = FormatRaceTalent(race, talent)
	return out
}

// WithRaceTalent sets the talent segment, keeping the race
func (c *Character) WithRaceTalent(talent string) *Character {
	out := c.Clone()
	out.RaceTalent = FormatRaceTalent(c.Race(), talent)
	return out
}
