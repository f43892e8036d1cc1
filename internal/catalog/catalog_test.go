package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vop-sheet/internal/catalog"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog *catalog.Catalog
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.catalog = catalog.Load(s.ctx, catalog.EmbeddedSource{})
}

func (s *CatalogTestSuite) TestEmbeddedLoad() {
	s.Equal([]string{"Human", "Elf", "Dwarf", "Halfling", "Half-Giant", "Gnome"}, s.catalog.RaceNames())
	s.NotEmpty(s.catalog.Talents())
	s.NotEmpty(s.catalog.Spells())
	s.NotEmpty(s.catalog.Weapons())
	s.NotEmpty(s.catalog.Armor())
}

func (s *CatalogTestSuite) TestRecordNormalization() {
	gnome, ok := s.catalog.RaceByName("Gnome")
	s.Require().True(ok)
	s.Equal("Gnome", gnome.Get("Name"))
	_, hasLower := gnome.Lookup("name")
	s.False(hasLower)

	giant, ok := s.catalog.RaceByName("Half-Giant")
	s.Require().True(ok)
	s.Equal("30", giant.Get("Speed"))
	_, hasNotes := giant.Lookup("Notes")
	s.False(hasNotes, "null values are absent")
	demo, hasDemo := giant.Lookup("Demographics")
	s.True(hasDemo)
	s.Equal("", demo)
}

func (s *CatalogTestSuite) TestNumbersRenderWithoutTrailingZeros() {
	c := catalog.Load(s.ctx, catalog.MemorySource{
		catalog.KindWeapons: []byte(`[{"Name":"Club","Bonus":1.50,"Stock mod.":2.0,"Starting?":true}]`),
	})
	weapons := c.Weapons()
	s.Require().Len(weapons, 1)
	s.Equal("1.5", weapons[0].Bonus)
	s.Equal("2", weapons[0].Get("Stock mod."))
	s.Equal("true", weapons[0].Starting)
}

func (s *CatalogTestSuite) TestMalformedDataFallsBack() {
	testCases := []struct {
		name  string
		races string
	}{
		{"not json", `{{{`},
		{"object instead of array", `{"Name":"Elf"}`},
		{"empty array", `[]`},
		{"only unnamed", `[{"Size":"Small"},{"Name":"  "}]`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := catalog.Load(s.ctx, catalog.MemorySource{
				catalog.KindRaces:   []byte(tc.races),
				catalog.KindTalents: []byte(`nope`),
			})
			s.Equal(catalog.FallbackRaces, c.RaceNames())
			s.Empty(c.Talents())
			s.Empty(c.Spells())
			s.Empty(c.TalentsAllowedForRace("Elf"))
		})
	}
}

func (s *CatalogTestSuite) TestTalentsAllowedForRace() {
	testCases := []struct {
		race     string
		expected []string
	}{
		{"Elf", []string{"Fey Step", "Keen Senses", "Second Wind"}},
		{" elf ", []string{"Fey Step", "Keen Senses", "Second Wind"}},
		{"Dwarf", []string{"Dwarven Resilience", "Second Wind", "Stonecunning"}},
		{"Gnome", []string{"Keen Senses", "Second Wind", "Tinker"}},
		{"Orc", []string{"Second Wind"}},
		{"", []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.race, func() {
			s.Equal(tc.expected, s.catalog.TalentsAllowedForRace(tc.race))
		})
	}
}

func (s *CatalogTestSuite) TestAllowedTalentsSatisfyRules() {
	for _, race := range append(s.catalog.RaceNames(), "Orc", "ELF") {
		for _, name := range s.catalog.TalentsAllowedForRace(race) {
			t, ok := s.catalog.TalentByName(name)
			s.Require().True(ok, name)
			s.True(t.IsRaceTalent(), name)
			s.True(t.AllowsRace(race), "%s for %s", name, race)
		}
	}
}

func (s *CatalogTestSuite) TestAllowedTalentsAreCachedCopies() {
	first := s.catalog.TalentsAllowedForRace("Elf")
	first[0] = "mutated"
	s.Equal("Fey Step", s.catalog.TalentsAllowedForRace("Elf")[0])
	s.True(s.catalog.TalentAllowedForRace("Elf", "Keen Senses"))
	s.False(s.catalog.TalentAllowedForRace("Dwarf", "Keen Senses"))
}

func (s *CatalogTestSuite) TestAllowedTalentsSortIgnoresCase() {
	c := catalog.Load(s.ctx, catalog.MemorySource{
		catalog.KindTalents: []byte(`[
			{"Name":"beta","Table":"RaceTalent"},
			{"Name":"alpha","Table":"race talent","Requirement":"Race : elf"},
			{"Name":"Alpha","Table":"Race Talent"},
			{"Name":"Zed","Table":"Main"}
		]`),
	})
	s.Equal([]string{"Alpha", "alpha", "beta"}, c.TalentsAllowedForRace("Elf"))
	s.Equal([]string{"Alpha", "beta"}, c.TalentsAllowedForRace("Human"))
}

func (s *CatalogTestSuite) TestRequiredRaces() {
	t, ok := s.catalog.TalentByName("Keen Senses")
	s.Require().True(ok)
	s.Equal([]string{"elf", "gnome"}, t.RequiredRaces())

	t, ok = s.catalog.TalentByName("Dwarven Resilience")
	s.Require().True(ok)
	s.Equal([]string{"dwarf"}, t.RequiredRaces())

	t, ok = s.catalog.TalentByName("Second Wind")
	s.Require().True(ok)
	s.Empty(t.RequiredRaces())
	s.True(t.AllowsRace("anyone"))
}

func (s *CatalogTestSuite) TestIndexByNameKeepsFirst() {
	type item struct{ Name, Tag string }
	items := []item{{"Dagger", "first"}, {"Club", "only"}, {"Dagger", "second"}, {"", "blank"}}

	index, err := catalog.IndexByName(items, func(i item) string { return i.Name })
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Equal([]string{"Dagger"}, errors.GetMeta(err)["duplicates"])
	s.Len(index, 2)
	s.Equal("first", index["Dagger"].Tag)

	index, err = catalog.IndexByName(items[:2], func(i item) string { return i.Name })
	s.NoError(err)
	s.Len(index, 2)
}

func (s *CatalogTestSuite) TestDuplicateRaceKeepsFirst() {
	c := catalog.Load(s.ctx, catalog.MemorySource{
		catalog.KindRaces: []byte(`[{"Name":"Elf","Size":"Medium"},{"Name":"Elf","Size":"Tiny"}]`),
	})
	elf, ok := c.RaceByName("Elf")
	s.Require().True(ok)
	s.Equal("Medium", elf.Get("Size"))
}

func (s *CatalogTestSuite) TestChildren() {
	children := s.catalog.Children("Weapon Training")
	s.Require().Len(children, 3)
	s.Equal("Dual Wield Mastery", children[0].Name)

	parent, ok := s.catalog.TalentByName("Weapon Training")
	s.Require().True(ok)
	s.Equal(2, parent.ChildSelections)

	s.Empty(s.catalog.Children(""))
	s.Empty(s.catalog.Children("Alert"))
}

func (s *CatalogTestSuite) TestRaceInfo() {
	info := s.catalog.RaceInfo("Elf", "fey step")
	s.True(info.Found)
	s.Require().NotEmpty(info.RaceFields)
	s.Equal(catalog.Field{Label: "Name", Value: "Elf"}, info.RaceFields[0])
	s.Len(info.RaceFields, 8)

	s.True(info.TalentFound)
	s.Equal("Fey Step", info.Talent)
	s.Equal([]catalog.Field{
		{Label: "Description", Value: "Teleport up to 15 feet to a space you can see."},
		{Label: "Action", Value: "Support action"},
		{Label: "Mana", Value: "2"},
	}, info.TalentFields)
}

func (s *CatalogTestSuite) TestRaceInfoHidesOnlyEmptyFields() {
	info := s.catalog.RaceInfo("Half-Giant", "Alert")
	s.True(info.Found)
	s.False(info.TalentFound, "Alert is not a race talent")

	labels := map[string]string{}
	for _, f := range info.RaceFields {
		labels[f.Label] = f.Value
	}
	s.NotContains(labels, "Demographics")
	s.Equal("0", labels["Mana"])
}

func (s *CatalogTestSuite) TestRaceInfoUnknownRace() {
	info := s.catalog.RaceInfo("Orc", "")
	s.False(info.Found)
	s.Empty(info.RaceFields)
	s.False(info.TalentFound)
}

func (s *CatalogTestSuite) TestDirSource() {
	dir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "races.yaml"), []byte(`
- Name: Kobold
  Speed: 30
  Size: Small
- name: Lizardfolk
  Mana: 1.5
`), 0o600))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "weapons.json"), []byte(`[{"Name":"Sling","Starting?":"yes"}]`), 0o600))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "spells.yml"), []byte(`- Name: Glow
  Mana: 0
`), 0o600))

	c := catalog.Load(s.ctx, catalog.DirSource{Dir: dir})
	s.Equal([]string{"Kobold", "Lizardfolk"}, c.RaceNames())

	kobold, ok := c.RaceByName("Kobold")
	s.Require().True(ok)
	s.Equal("30", kobold.Get("Speed"))

	lizard, ok := c.RaceByName("Lizardfolk")
	s.Require().True(ok)
	s.Equal("1.5", lizard.Get("Mana"))

	s.Len(c.Weapons(), 1)
	s.Require().Len(c.Spells(), 1)
	s.Equal("0", c.Spells()[0].Mana)
	s.Empty(c.Armor())
}

func (s *CatalogTestSuite) TestDirSourceMissingKind() {
	_, _, err := catalog.DirSource{Dir: s.T().TempDir()}.Read(s.ctx, catalog.KindArmor)
	s.True(errors.IsNotFound(err))
}
