package catalog

import (
	"strconv"
	"strings"
)

// Kind names one catalog collection
type Kind string

const (
	KindRaces   Kind = "races"
	KindTalents Kind = "talents"
	KindSpells  Kind = "spells"
	KindWeapons Kind = "weapons"
	KindArmor   Kind = "armor"
)

// Kinds lists every collection in load order
var Kinds = []Kind{KindRaces, KindTalents, KindSpells, KindWeapons, KindArmor}

// FallbackRaces are offered when no race data could be loaded
var FallbackRaces = []string{"Human", "Elf", "Dwarf", "Halfling", "Half-Giant", "Gnome"}

// RaceInfoFields are the race fields shown in the race info panel, after Name
var RaceInfoFields = []string{
	"Description",
	"Ability Score",
	"Size",
	"Speed",
	"Hit Point Die",
	"Mana",
	"Demographics",
}

// RaceTalentInfoFields are the race talent fields shown in the race info panel
var RaceTalentInfoFields = []string{"Description", "Action", "Mana"}

// Race is a playable race
type Race struct {
	Record
	Name string
}

// Talent is a talent record. Race talents carry Table "Race Talent" and a
// Requirements list of races.
type Talent struct {
	Record
	Name            string
	Table           string
	Requirements    string
	ParentName      string
	Action          string
	Description     string
	ChildSelections int
}

// Spell is a spell record
type Spell struct {
	Record
	Name        string
	Ability     string
	Domain      string
	Action      string
	Mana        string
	Range       string
	Duration    string
	Focus       string
	Description string
}

// Weapon is a weapon record
type Weapon struct {
	Record
	Name            string
	Type            string
	Damage          string
	Bonus           string
	Reach           string
	AbilityModifier string
	Starting        string
}

// Armor is an armor record
type Armor struct {
	Record
	Name         string
	Type         string
	ACBonus      string
	Penalty      string
	Property     string
	Requirements string
	Starting     string
}

func recordName(r Record) string {
	return strings.TrimSpace(r.first("Name", "Label", "Title"))
}

func newRace(r Record) Race {
	return Race{Record: r, Name: recordName(r)}
}

func newTalent(r Record) Talent {
	return Talent{
		Record:          r,
		Name:            recordName(r),
		Table:           r.first("Table", "table"),
		Requirements:    strings.TrimSpace(r.first("Requirements", "Requirement")),
		ParentName:      strings.TrimSpace(r.Get("ParentName")),
		Action:          r.Get("Action"),
		Description:     r.Get("Description"),
		ChildSelections: childSelectionCount(r.Get("No. child selections")),
	}
}

func newSpell(r Record) Spell {
	return Spell{
		Record:      r,
		Name:        recordName(r),
		Ability:     r.Get("Ability"),
		Domain:      r.Get("Domain"),
		Action:      r.Get("Action"),
		Mana:        r.Get("Mana"),
		Range:       r.Get("Range"),
		Duration:    r.Get("Duration"),
		Focus:       r.Get("Focus"),
		Description: r.Get("Description"),
	}
}

func newWeapon(r Record) Weapon {
	return Weapon{
		Record:          r,
		Name:            recordName(r),
		Type:            r.Get("Type"),
		Damage:          r.Get("dmg"),
		Bonus:           r.Get("Bonus"),
		Reach:           r.Get("Reach"),
		AbilityModifier: r.Get("Ability modifier"),
		Starting:        r.Get("Starting?"),
	}
}

func newArmor(r Record) Armor {
	return Armor{
		Record:       r,
		Name:         recordName(r),
		Type:         r.Get("Type"),
		ACBonus:      r.Get("AC bonus"),
		Penalty:      r.Get("Penalty"),
		Property:     r.Get("Property"),
		Requirements: r.Get("Requirements"),
		Starting:     r.Get("Starting?"),
	}
}

func childSelectionCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// IsRaceTalent reports whether the talent belongs to the Race Talent table,
// ignoring case and whitespace.
func (t Talent) IsRaceTalent() bool {
	return squash(t.Table) == "racetalent"
}

// RequiredRaces parses Requirements as a comma separated list of race names,
// each optionally prefixed "Race:". Names are lower cased.
func (t Talent) RequiredRaces() []string {
	if t.Requirements == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(t.Requirements, ",") {
		part = strings.TrimSpace(part)
		part = raceLabelPrefix.ReplaceAllString(part, "")
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// AllowsRace reports whether race satisfies the talent's race requirement.
// An empty requirement allows every race.
func (t Talent) AllowsRace(race string) bool {
	required := t.RequiredRaces()
	if len(required) == 0 {
		return true
	}
	wanted := strings.ToLower(strings.TrimSpace(race))
	for _, r := range required {
		if r == wanted {
			return true
		}
	}
	return false
}

// squash lower cases s and strips all whitespace
func squash(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}
