package grids_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vop-sheet/internal/catalog"
	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/grids"
	"github.com/KirkDiggler/vop-sheet/internal/picker"
)

type GridsTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestGridsTestSuite(t *testing.T) {
	suite.Run(t, new(GridsTestSuite))
}

func (s *GridsTestSuite) SetupSuite() {
	s.catalog = catalog.Load(context.Background(), catalog.EmbeddedSource{})
}

func keys[I any](opts []picker.Option[I]) []string {
	var out []string
	for _, o := range opts {
		out = append(out, o.Key)
	}
	return out
}

func labels[I any](opts []picker.Option[I]) []string {
	var out []string
	for _, o := range opts {
		out = append(out, o.Label)
	}
	return out
}

func (s *GridsTestSuite) TestWeaponPickerStartingScenario() {
	var changes [][]entities.WeaponRow
	cfg := grids.Weapons(s.catalog)
	cfg.OnChange = func(rows []entities.WeaponRow) { changes = append(changes, rows) }

	g, err := picker.New(cfg, []entities.WeaponRow{})
	s.Require().NoError(err)

	g.OpenAdd()
	s.Equal(grids.Starting, g.Values().Get(grids.FilterAvailability))
	s.Equal("", g.Values().Get(grids.FilterType))
	s.Equal([]string{"Dagger", "Longsword", "Quarterstaff", "Shortbow"}, keys(g.Options()))

	for _, opt := range g.Options() {
		s.True(grids.IsTruthy(opt.Item.Starting), opt.Key)
	}

	s.Require().NoError(g.Select("Dagger"))
	s.True(g.Confirm())

	s.Equal([]entities.WeaponRow{{
		Name:     "Dagger",
		Type:     "Light, Finesse, Thrown",
		Damage:   "1d4",
		Bonus:    "",
		Reach:    "5 ft / 20 ft",
		Ability:  "Agi",
		Starting: "Yes",
	}}, g.Rows())
	s.Len(changes, 1)
}

func (s *GridsTestSuite) TestWeaponFilters() {
	g, err := picker.New(grids.Weapons(s.catalog), nil)
	s.Require().NoError(err)
	g.OpenAdd()

	s.Require().NoError(g.SetFilter(grids.FilterAvailability, grids.NonStarting))
	s.Equal([]string{"Greataxe", "Runed Rapier"}, keys(g.Options()))

	s.Require().NoError(g.SetFilter(grids.FilterAvailability, grids.Starting))
	s.Require().NoError(g.SetFilter(grids.FilterType, "finesse"))
	s.Equal([]string{"Dagger"}, keys(g.Options()))

	s.Require().NoError(g.SetFilter(grids.FilterType, "Two-handed"))
	s.Equal([]string{"Shortbow"}, keys(g.Options()))
}

func (s *GridsTestSuite) TestWeaponTypeChoices() {
	filters := grids.Weapons(s.catalog).Filters
	s.Require().Len(filters, 2)
	s.Equal([]string{"", "Finesse", "Focus", "Heavy", "Light", "Ranged", "Thrown", "Two-handed", "Versatile"}, filters[1].Choices)
}

func (s *GridsTestSuite) TestWeaponPreview() {
	g, err := picker.New(grids.Weapons(s.catalog), nil)
	s.Require().NoError(err)
	g.OpenAdd()
	s.Require().NoError(g.Select("Dagger"))

	s.Equal([]picker.Field{
		{Label: "Name", Value: "Dagger"},
		{Label: "dmg", Value: "1d4"},
		{Label: "Reach", Value: "5 ft / 20 ft"},
		{Label: "Ability modifier", Value: "Agi"},
		{Label: "Type", Value: "Light, Finesse, Thrown"},
		{Label: "Rarity", Value: "Common"},
		{Label: "Stock mod.", Value: "0"},
		{Label: "Starting?", Value: "Yes"},
	}, g.Preview())
}

func (s *GridsTestSuite) TestWeaponEditPreselects() {
	g, err := picker.New(grids.Weapons(s.catalog), []entities.WeaponRow{{Name: "Shortbow", Bonus: "+2"}})
	s.Require().NoError(err)

	s.Require().NoError(g.OpenEdit(0))
	item, ok := g.Selected()
	s.Require().True(ok)
	s.Equal("Shortbow", item.Name)

	s.Require().NoError(g.Select("Longsword"))
	s.True(g.Confirm())
	s.Equal("Longsword", g.Rows()[0].Name)
	s.Equal("", g.Rows()[0].Bonus)
}

func (s *GridsTestSuite) TestArmorPicker() {
	g, err := picker.New(grids.Armor(s.catalog), nil)
	s.Require().NoError(err)
	g.OpenAdd()

	s.Equal([]string{"Buckler", "Chain Shirt", "Leather", "Padded"}, keys(g.Options()))

	s.Require().NoError(g.SetFilter(grids.FilterType, "light"))
	s.Equal([]string{"Buckler", "Leather", "Padded"}, keys(g.Options()))

	s.Require().NoError(g.SetFilter(grids.FilterType, ""))
	s.Require().NoError(g.SetFilter(grids.FilterAvailability, grids.NonStarting))
	s.Equal([]string{"Plate"}, keys(g.Options()))

	s.Require().NoError(g.Select("Plate"))
	s.True(g.Confirm())
	s.Equal([]entities.ArmorRow{{
		Name:         "Plate",
		Type:         "Heavy",
		ACBonus:      "6",
		Penalty:      "Stealth -2, Speed -5",
		Property:     "Imposing",
		Requirements: "Phy 15",
		Starting:     "no",
	}}, g.Rows())
}

func (s *GridsTestSuite) TestSpellOrderingAndLabels() {
	g, err := picker.New(grids.Spells(s.catalog, "", ""), nil)
	s.Require().NoError(err)
	g.OpenAdd()

	s.Equal([]string{"Mend", "Spark", "Bless", "Charm", "Entangle", "Shroud", "Fireball", "Insight of Ages"}, keys(g.Options()))
	s.Equal([]string{
		"1 – Mend – Support action",
		"1 – Spark – Action",
		"2 – Bless (F) – Action",
		"2 – Charm (F) – Action",
		"2 – Entangle (F) – Action",
		"2 – Shroud (F) – Action",
		"5 – Fireball – Action",
		"? – Insight of Ages – Ritual",
	}, labels(g.Options()))
}

func (s *GridsTestSuite) TestSpellAbilityDomainFilter() {
	testCases := []struct {
		name     string
		ability  string
		domain   string
		expected []string
	}{
		{"ability only", "Int", "", []string{"Spark", "Fireball", "Insight of Ages"}},
		{"domain only", "", "light", []string{"Spark", "Bless"}},
		{"either", "int", "Nature", []string{"Mend", "Spark", "Entangle", "Fireball", "Insight of Ages"}},
		{"no match", "Phy", "Void", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g, err := picker.New(grids.Spells(s.catalog, tc.ability, tc.domain), nil)
			s.Require().NoError(err)
			g.OpenAdd()
			s.Equal(tc.expected, keys(g.Options()))
		})
	}
}

func (s *GridsTestSuite) TestSpellFilterChangeKeepsOrLogic() {
	g, err := picker.New(grids.Spells(s.catalog, "Cha", ""), nil)
	s.Require().NoError(err)
	g.OpenAdd()
	s.Equal([]string{"Bless", "Charm", "Shroud"}, keys(g.Options()))

	s.Require().NoError(g.SetFilter(grids.FilterDomain, "Chaos"))
	s.Equal([]string{"Spark", "Bless", "Charm", "Shroud", "Fireball"}, keys(g.Options()))

	s.Require().NoError(g.Select("Shroud"))
	s.True(g.Confirm())
	s.Equal([]entities.SpellRow{{
		Name:        "Shroud",
		Action:      "Action",
		Mana:        "2",
		Range:       "Self",
		Duration:    "1 minute",
		Focus:       "yes",
		Description: "Shadows cling to you, granting advantage on Stealth.",
	}}, g.Rows())
}

func (s *GridsTestSuite) TestManaCost() {
	s.Equal(float64(2), grids.ManaCost("2"))
	s.Equal(float64(2), grids.ManaCost(" 2 per round"))
	s.Equal(float64(-1), grids.ManaCost("-1"))
	s.True(math.IsInf(grids.ManaCost("varies"), 1))
	s.True(math.IsInf(grids.ManaCost(""), 1))
	s.True(math.IsInf(grids.ManaCost("+"), 1))
}

func (s *GridsTestSuite) TestTalentPicker() {
	g, err := picker.New(grids.Talents(s.catalog), nil)
	s.Require().NoError(err)
	g.OpenAdd()

	s.Equal(grids.TableMain, g.Values().Get(grids.FilterType))
	s.Equal([]string{"Alert", "Ambush (Stealth +2)", "Weapon Training (Level 2)"}, labels(g.Options()))

	s.Require().NoError(g.SetFilter(grids.FilterType, grids.TableSecondary))
	s.Equal([]string{"Dual Wield Mastery", "Heavy Armor Mastery", "Light Armor Mastery"}, keys(g.Options()))

	s.Require().NoError(g.Select("Light Armor Mastery"))
	s.Equal([]picker.Field{
		{Label: "Name", Value: "Light Armor Mastery"},
		{Label: "Action", Value: "Passive"},
		{Label: "Race requirements", Value: "Elf, Halfling"},
		{Label: "Description", Value: "Your Agi modifier to AC is not capped in light armor."},
	}, g.Preview())
}

func (s *GridsTestSuite) TestTalentChildSelections() {
	existing := []entities.TalentRow{{Name: "Alert"}}
	g, err := picker.New(grids.Talents(s.catalog), existing)
	s.Require().NoError(err)
	g.OpenAdd()

	s.Require().NoError(g.Select("Weapon Training"))
	s.Equal(2, g.ChildSlots())
	s.Equal([]string{"Dual Wield Mastery", "Heavy Armor Mastery", "Light Armor Mastery"}, keys(g.ChildCandidates()))

	s.Require().NoError(g.ChooseChild(0, "Dual Wield Mastery"))
	s.Require().NoError(g.ChooseChild(1, "Heavy Armor Mastery"))
	s.True(g.Confirm())

	rows := g.Rows()
	s.Require().Len(rows, 4)
	s.Equal("Alert", rows[0].Name)
	s.Equal("Weapon Training", rows[1].Name)
	s.Equal([]string{"Dual Wield Mastery", "Heavy Armor Mastery"}, rows[1].ChildSelections)
	s.Equal("Dual Wield Mastery", rows[2].Name)
	s.Equal("Heavy Armor Mastery", rows[3].Name)
	s.Nil(rows[2].ChildSelections)
}

func (s *GridsTestSuite) TestHelpers() {
	for _, yes := range []string{"yes", "Y", " TRUE ", "1"} {
		s.True(grids.IsTruthy(yes), yes)
	}
	for _, no := range []string{"", "no", "0", "false", "yep"} {
		s.False(grids.IsTruthy(no), no)
	}

	s.True(grids.HasToken("Light, Finesse", " finesse"))
	s.False(grids.HasToken("Light, Finesse", "fin"))
	s.False(grids.HasToken("Light", ""))
}

func (s *GridsTestSuite) TestTalentRequirementAlias() {
	dir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "talents.json"), []byte(`[
		{"Name": "Shield Bash", "Table": "Main", "Requirement": "Phy 13", "Action": "Action"},
		{"Name": "Quick Step", "Table": "Main", "Requirements": "Agi 12"},
		{"Name": "Brace", "Table": "Main"}
	]`), 0o600))
	cat := catalog.Load(context.Background(), catalog.DirSource{Dir: dir})

	g, err := picker.New(grids.Talents(cat), nil)
	s.Require().NoError(err)
	g.OpenAdd()

	s.Equal([]string{"Brace", "Quick Step (Agi 12)", "Shield Bash (Phy 13)"}, labels(g.Options()))

	s.Require().NoError(g.Select("Shield Bash"))
	s.Equal([]picker.Field{
		{Label: "Name", Value: "Shield Bash"},
		{Label: "Action", Value: "Action"},
		{Label: "Requirements", Value: "Phy 13"},
	}, g.Preview())
}
