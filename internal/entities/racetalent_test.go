package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
)

func TestParseRaceTalent(t *testing.T) {
	testCases := []struct {
		in     string
		race   string
		talent string
	}{
		{"", "", ""},
		{"Elf", "Elf", ""},
		{"Elf | Fey Step", "Elf", "Fey Step"},
		{"Elf | ", "Elf", ""},
		{" | Lucky", "", "Lucky"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			race, talent := entities.ParseRaceTalent(tc.in)
			assert.Equal(t, tc.race, race)
			assert.Equal(t, tc.talent, talent)
		})
	}
}

func TestFormatRaceTalent(t *testing.T) {
	assert.Equal(t, "Dwarf", entities.FormatRaceTalent("Dwarf", ""))
	assert.Equal(t, "Dwarf", entities.FormatRaceTalent("Dwarf", "  "))
	assert.Equal(t, "Elf | Fey Step", entities.FormatRaceTalent("Elf", "Fey Step"))
	assert.Equal(t, "", entities.FormatRaceTalent("", ""))
}

func TestWithRaceClearsDisallowedTalent(t *testing.T) {
	c := entities.NewCharacter()
	c.RaceTalent = "Elf | Fey Step"

	dwarf := c.WithRace("Dwarf", []string{"Dwarven Resilience", "Second Wind", "Stonecunning"})
	assert.Equal(t, "Dwarf", dwarf.RaceTalent)
	assert.Equal(t, "Dwarf", dwarf.Race())
	assert.Equal(t, "", dwarf.Talent())
	assert.Equal(t, "Elf | Fey Step", c.RaceTalent)
}

func TestWithRaceKeepsAllowedTalent(t *testing.T) {
	c := entities.NewCharacter()
	c.RaceTalent = "Elf | Keen Senses"

	gnome := c.WithRace("Gnome", []string{"Keen Senses", "Second Wind", "Tinker"})
	assert.Equal(t, "Gnome | Keen Senses", gnome.RaceTalent)
}

func TestWithRaceTalent(t *testing.T) {
	c := entities.NewCharacter().WithRace("Halfling", nil)
	assert.Equal(t, "Halfling", c.RaceTalent)

	c = c.WithRaceTalent("Lucky")
	assert.Equal(t, "Halfling | Lucky", c.RaceTalent)

	c = c.WithRaceTalent("")
	assert.Equal(t, "Halfling", c.RaceTalent)
}
