package picker_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/picker"
)

type gear struct {
	Name     string
	Type     string
	Starting string
	Slots    int
	Parent   string
}

type gearRow struct {
	Name     string
	Type     string
	Note     string
	Children []string
}

type GridTestSuite struct {
	suite.Suite
	items   []gear
	changes [][]gearRow
}

func TestGridTestSuite(t *testing.T) {
	suite.Run(t, new(GridTestSuite))
}

func (s *GridTestSuite) SetupTest() {
	s.items = []gear{
		{Name: "spear", Type: "Polearm", Starting: "yes"},
		{Name: "Axe", Type: "Heavy, Melee", Starting: "no"},
		{Name: "dagger", Type: "Light, Melee", Starting: "Y"},
		{Name: "Bow", Type: "Ranged", Starting: "1"},
		{Name: "Kit", Type: "Tools", Starting: "yes", Slots: 2},
		{Name: "Rope", Type: "Tools", Parent: "Kit"},
		{Name: "Lamp", Type: "Tools", Parent: "Kit"},
	}
	s.changes = nil
}

func (s *GridTestSuite) config() picker.Config[gear, gearRow] {
	return picker.Config[gear, gearRow]{
		Items: s.items,
		Label: func(g gear) string { return g.Name },
		Key:   func(g gear) string { return g.Name },
		ToRow: func(g gear) gearRow {
			return gearRow{Name: g.Name, Type: g.Type}
		},
		RowKey: func(r gearRow) string { return r.Name },
		Filters: []picker.Filter[gear]{
			{
				Name:    "availability",
				Label:   "Availability",
				Default: "Starting",
				Choices: []string{"Starting", "Non-starting"},
				Match: func(g gear, v picker.Values) bool {
					yes := g.Starting == "yes" || g.Starting == "Y" || g.Starting == "1"
					return yes == (v.Get("availability") == "Starting")
				},
			},
			{
				Name:  "type",
				Label: "Type",
				Match: func(g gear, v picker.Values) bool {
					want := strings.ToLower(v.Get("type"))
					return want == "" || strings.Contains(strings.ToLower(g.Type), want)
				},
			},
		},
		Preview: []picker.PreviewField[gear]{
			{Label: "Name", Value: func(g gear) (string, bool) { return g.Name, true }},
			{Label: "Type", Value: func(g gear) (string, bool) { return g.Type, g.Type != "" }},
			{Label: "Parent", Value: func(g gear) (string, bool) { return g.Parent, true }},
			{Label: "Slots", Value: func(g gear) (string, bool) {
				return map[int]string{0: "0", 2: "2"}[g.Slots], true
			}},
		},
		Children: &picker.Children[gear, gearRow]{
			Slots: func(g gear) int { return g.Slots },
			Candidates: func(g gear) []gear {
				var out []gear
				for _, c := range s.items {
					if c.Parent == g.Name {
						out = append(out, c)
					}
				}
				return out
			},
			Attach: func(r gearRow, chosen []gear) gearRow {
				for _, c := range chosen {
					r.Children = append(r.Children, c.Name)
				}
				return r
			},
		},
		OnChange: func(rows []gearRow) {
			s.changes = append(s.changes, rows)
		},
	}
}

func (s *GridTestSuite) newGrid(rows []gearRow) *picker.Grid[gear, gearRow] {
	g, err := picker.New(s.config(), rows)
	s.Require().NoError(err)
	return g
}

func optionKeys(opts []picker.Option[gear]) []string {
	var out []string
	for _, o := range opts {
		out = append(out, o.Key)
	}
	return out
}

func (s *GridTestSuite) TestInvalidConfig() {
	cfg := s.config()
	cfg.Label = nil
	cfg.Filters = append(cfg.Filters, picker.Filter[gear]{Name: "type"})

	_, err := picker.New(cfg, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Label: is required")
	s.Contains(err.Error(), `duplicate filter "type"`)
}

func (s *GridTestSuite) TestStartsIdle() {
	g := s.newGrid(nil)
	s.Equal(picker.ModeIdle, g.Mode())
	s.Equal(-1, g.EditIndex())
	_, ok := g.Selected()
	s.False(ok)
	s.Error(g.SetFilter("type", "x"))
	s.Error(g.Select("Bow"))
}

func (s *GridTestSuite) TestOpenAddAppliesDefaultsAndSorts() {
	g := s.newGrid(nil)
	g.OpenAdd()

	s.Equal(picker.ModeAdd, g.Mode())
	s.Equal("Starting", g.Values().Get("availability"))
	s.Equal([]string{"Bow", "dagger", "Kit", "spear"}, optionKeys(g.Options()))

	s.Require().NoError(g.SetFilter("availability", "Non-starting"))
	s.Equal([]string{"Axe", "Lamp", "Rope"}, optionKeys(g.Options()))

	s.Require().NoError(g.SetFilter("type", "melee"))
	s.Equal([]string{"Axe"}, optionKeys(g.Options()))

	s.True(errors.IsInvalidArgument(g.SetFilter("rarity", "rare")))
}

func (s *GridTestSuite) TestConfirmAppendsCopiedRow() {
	existing := []gearRow{{Name: "Old"}}
	g := s.newGrid(existing)
	g.OpenAdd()

	s.Require().NoError(g.Select("dagger"))
	s.Equal([]picker.Field{
		{Label: "Name", Value: "dagger"},
		{Label: "Type", Value: "Light, Melee"},
		{Label: "Slots", Value: "0"},
	}, g.Preview())

	s.True(g.Confirm())
	s.Equal(picker.ModeIdle, g.Mode())
	s.Equal([]gearRow{{Name: "Old"}, {Name: "dagger", Type: "Light, Melee"}}, g.Rows())
	s.Require().Len(s.changes, 1)
	s.Equal(g.Rows(), s.changes[0])
	s.Len(existing, 1)
}

func (s *GridTestSuite) TestConfirmWithoutSelectionIsNoop() {
	g := s.newGrid([]gearRow{{Name: "Old"}})
	s.False(g.Confirm())

	g.OpenAdd()
	s.False(g.Confirm())
	s.Equal(picker.ModeAdd, g.Mode())
	s.Equal([]gearRow{{Name: "Old"}}, g.Rows())
	s.Empty(s.changes)
}

func (s *GridTestSuite) TestSelectOutsideOptions() {
	g := s.newGrid(nil)
	g.OpenAdd()
	err := g.Select("Axe")
	s.True(errors.IsNotFound(err))
	_, ok := g.Selected()
	s.False(ok)
}

func (s *GridTestSuite) TestSelectionHiddenWhenFilteredOut() {
	g := s.newGrid(nil)
	g.OpenAdd()
	s.Require().NoError(g.Select("Bow"))
	s.Require().NoError(g.SetFilter("type", "melee"))

	_, ok := g.Selected()
	s.False(ok)
	s.Nil(g.Preview())
	s.False(g.Confirm())

	s.Require().NoError(g.SetFilter("type", ""))
	item, ok := g.Selected()
	s.True(ok)
	s.Equal("Bow", item.Name)
}

func (s *GridTestSuite) TestCancelLeavesRows() {
	g := s.newGrid([]gearRow{{Name: "Old"}})
	g.OpenAdd()
	s.Require().NoError(g.Select("Bow"))
	g.Cancel()

	s.Equal(picker.ModeIdle, g.Mode())
	s.Equal([]gearRow{{Name: "Old"}}, g.Rows())
	s.Empty(s.changes)
}

func (s *GridTestSuite) TestReopenResetsState() {
	g := s.newGrid(nil)
	g.OpenAdd()
	s.Require().NoError(g.SetFilter("availability", "Non-starting"))
	s.Require().NoError(g.Select("Axe"))
	g.Cancel()

	g.OpenAdd()
	s.Equal("Starting", g.Values().Get("availability"))
	_, ok := g.Selected()
	s.False(ok)
}

func (s *GridTestSuite) TestOpenEditPreselectsAndOverwrites() {
	g := s.newGrid([]gearRow{
		{Name: "dagger", Type: "Light, Melee", Note: "hand edited"},
		{Name: "Bow"},
	})

	s.Require().NoError(g.OpenEdit(0))
	s.Equal(picker.ModeEdit, g.Mode())
	s.Equal(0, g.EditIndex())
	item, ok := g.Selected()
	s.Require().True(ok)
	s.Equal("dagger", item.Name)

	s.Require().NoError(g.Select("spear"))
	s.True(g.Confirm())
	s.Equal([]gearRow{{Name: "spear", Type: "Polearm"}, {Name: "Bow"}}, g.Rows())
}

func (s *GridTestSuite) TestOpenEditRenamedRowHasNoSelection() {
	g := s.newGrid([]gearRow{{Name: "My dagger"}})
	s.Require().NoError(g.OpenEdit(0))
	_, ok := g.Selected()
	s.False(ok)
	s.False(g.Confirm())
}

func (s *GridTestSuite) TestOpenEditPreselectionRespectsFilters() {
	g := s.newGrid([]gearRow{{Name: "Axe"}})
	s.Require().NoError(g.OpenEdit(0))

	_, ok := g.Selected()
	s.False(ok, "Axe is not a starting item")

	s.Require().NoError(g.SetFilter("availability", "Non-starting"))
	item, ok := g.Selected()
	s.Require().True(ok)
	s.Equal("Axe", item.Name)
}

func (s *GridTestSuite) TestOpenEditOutOfRange() {
	g := s.newGrid(nil)
	s.True(errors.IsOutOfRange(g.OpenEdit(0)))
	s.Equal(picker.ModeIdle, g.Mode())
}

func (s *GridTestSuite) TestDelete() {
	g := s.newGrid([]gearRow{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	g.OpenAdd()
	s.False(g.Delete())
	g.Cancel()

	s.Require().NoError(g.OpenEdit(1))
	s.True(g.Delete())
	s.Equal(picker.ModeIdle, g.Mode())
	s.Equal([]gearRow{{Name: "a"}, {Name: "c"}}, g.Rows())
	s.Len(s.changes, 1)

	s.False(g.Delete())
}

func (s *GridTestSuite) TestEditCellAndMove() {
	g := s.newGrid([]gearRow{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	s.Require().NoError(g.EditCell(1, func(r gearRow) gearRow {
		r.Note = "sharp"
		return r
	}))
	s.Equal(gearRow{Name: "b", Note: "sharp"}, g.Rows()[1])

	s.Require().NoError(g.Move(0, 2))
	s.Equal([]string{"b", "c", "a"}, []string{g.Rows()[0].Name, g.Rows()[1].Name, g.Rows()[2].Name})
	s.Len(s.changes, 2)

	s.True(errors.IsOutOfRange(g.Move(3, 0)))

	g.OpenAdd()
	s.True(errors.IsFailedPrecondition(g.Move(0, 1)))
	s.True(errors.IsFailedPrecondition(g.EditCell(0, func(r gearRow) gearRow { return r })))
}

func (s *GridTestSuite) TestChildSelections() {
	g := s.newGrid([]gearRow{{Name: "first"}, {Name: "last"}})
	s.Require().NoError(g.OpenEdit(0))
	s.Require().NoError(g.Select("Kit"))

	s.Equal(2, g.ChildSlots())
	s.Equal([]string{"Lamp", "Rope"}, optionKeys(g.ChildCandidates()))

	s.True(errors.IsNotFound(g.ChooseChild(0, "Bow")))
	s.True(errors.IsOutOfRange(g.ChooseChild(2, "Rope")))

	s.Require().NoError(g.ChooseChild(0, "Rope"))
	s.Equal([]string{"Rope", ""}, g.ChildChoices())

	s.True(g.Confirm())
	s.Equal([]gearRow{
		{Name: "Kit", Type: "Tools", Children: []string{"Rope"}},
		{Name: "Rope", Type: "Tools"},
		{Name: "last"},
	}, g.Rows())
}

func (s *GridTestSuite) TestChildSlotsResetOnNewSelection() {
	g := s.newGrid(nil)
	g.OpenAdd()
	s.Require().NoError(g.Select("Kit"))
	s.Require().NoError(g.ChooseChild(1, "Lamp"))

	s.Require().NoError(g.Select("Bow"))
	s.Equal(0, g.ChildSlots())

	s.Require().NoError(g.Select("Kit"))
	s.Equal([]string{"", ""}, g.ChildChoices())

	s.True(g.Confirm())
	s.Equal([]gearRow{{Name: "Kit", Type: "Tools"}}, g.Rows())
}
