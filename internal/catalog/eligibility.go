package catalog

import (
	"regexp"
	"slices"
	"strings"

	"github.com/KirkDiggler/vop-sheet/internal/pkg/collation"
)

var raceLabelPrefix = regexp.MustCompile(`(?i)^Race\s*:\s*`)

// TalentsAllowedForRace lists the Race Talent names a character of race may
// take, sorted by collation.Compare. Results are cached per race.
func (c *Catalog) TalentsAllowedForRace(race string) []string {
	key := strings.ToLower(strings.TrimSpace(race))
	if key == "" {
		return []string{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.allowed[key]; ok {
		return slices.Clone(cached)
	}

	out := []string{}
	for _, t := range c.talents {
		if !t.IsRaceTalent() || !t.AllowsRace(key) {
			continue
		}
		out = append(out, t.Name)
	}
	slices.SortStableFunc(out, collation.Compare)

	c.allowed[key] = out
	return slices.Clone(out)
}

// TalentAllowedForRace reports whether talent is one of race's allowed talents
func (c *Catalog) TalentAllowedForRace(race, talent string) bool {
	talent = strings.TrimSpace(talent)
	return slices.Contains(c.TalentsAllowedForRace(race), talent)
}

// Field is one label/value pair of an info or preview panel
type Field struct {
	Label string
	Value string
}

// RaceInfo is the race panel: race fields followed by the chosen race
// talent's fields. Fields without a value are omitted.
type RaceInfo struct {
	Race         string
	Found        bool
	RaceFields   []Field
	Talent       string
	TalentFound  bool
	TalentFields []Field
}

// RaceInfo collects the info panel for race and, when given, its race talent
func (c *Catalog) RaceInfo(race, talent string) RaceInfo {
	info := RaceInfo{Race: strings.TrimSpace(race), Talent: strings.TrimSpace(talent)}

	if r, ok := c.RaceByName(info.Race); ok {
		info.Found = true
		info.RaceFields = presentFields(r.Record, append([]string{"Name"}, RaceInfoFields...))
	}

	if t, ok := c.RaceTalentByName(info.Talent); ok {
		info.TalentFound = true
		info.Talent = t.Name
		info.TalentFields = presentFields(t.Record, RaceTalentInfoFields)
	}

	return info
}

func presentFields(r Record, labels []string) []Field {
	var out []Field
	for _, label := range labels {
		if !r.Has(label) {
			continue
		}
		out = append(out, Field{Label: label, Value: r.Get(label)})
	}
	return out
}
