package sheet

import (
	"github.com/KirkDiggler/vop-sheet/internal/catalog"
	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/grids"
	"github.com/KirkDiggler/vop-sheet/internal/picker"
	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

// session hides a picker grid's item and row types so one code path can
// drive every catalog-backed collection
type session interface {
	openAdd()
	openEdit(index int) error
	setFilters(values map[string]string) error
	filters() []sheet.FilterState
	options() []sheet.Option
	selected() string
	choose(key string) error
	preview(key string) ([]sheet.Field, int, []sheet.Option, error)
	chooseChildren(keys []string) error
	confirm() bool
	delete() bool
	// apply returns a copy of c with the grid's rows in place
	apply(c *entities.Character) *entities.Character
}

type gridSession[I, R any] struct {
	grid *picker.Grid[I, R]
	key  func(I) string
	set  func(c *entities.Character, rows []R)
}

func newGridSession[I, R any](
	cfg picker.Config[I, R], rows []R, set func(c *entities.Character, rows []R),
) (session, error) {
	g, err := picker.New(cfg, rows)
	if err != nil {
		return nil, err
	}
	return &gridSession[I, R]{grid: g, key: cfg.Key, set: set}, nil
}

// newSession binds the picker for col to c's rows
func newSession(cat *catalog.Catalog, c *entities.Character, col entities.Collection) (session, error) {
	switch col {
	case entities.CollectionWeapons:
		return newGridSession(grids.Weapons(cat), c.Weapons,
			func(c *entities.Character, rows []entities.WeaponRow) { c.Weapons = rows })
	case entities.CollectionArmor:
		return newGridSession(grids.Armor(cat), c.Armor,
			func(c *entities.Character, rows []entities.ArmorRow) { c.Armor = rows })
	case entities.CollectionSpells:
		return newGridSession(grids.Spells(cat, c.Spellcasting.Ability.String(), c.Spellcasting.Domain), c.Spells,
			func(c *entities.Character, rows []entities.SpellRow) { c.Spells = rows })
	case entities.CollectionTalents:
		return newGridSession(grids.Talents(cat), c.Talents,
			func(c *entities.Character, rows []entities.TalentRow) { c.Talents = rows })
	default:
		return nil, errors.InvalidArgumentf("%s has no catalog picker", col).
			WithMeta("collection", col.String())
	}
}

func (s *gridSession[I, R]) openAdd() {
	s.grid.OpenAdd()
}

func (s *gridSession[I, R]) openEdit(index int) error {
	return s.grid.OpenEdit(index)
}

func (s *gridSession[I, R]) setFilters(values map[string]string) error {
	for name, value := range values {
		if err := s.grid.SetFilter(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *gridSession[I, R]) filters() []sheet.FilterState {
	values := s.grid.Values()
	out := make([]sheet.FilterState, 0, len(s.grid.Filters()))
	for _, f := range s.grid.Filters() {
		out = append(out, sheet.FilterState{
			Name:    f.Name,
			Label:   f.Label,
			Value:   values.Get(f.Name),
			Choices: f.Choices,
		})
	}
	return out
}

func (s *gridSession[I, R]) options() []sheet.Option {
	return toOptions(s.grid.Options())
}

func (s *gridSession[I, R]) selected() string {
	item, ok := s.grid.Selected()
	if !ok {
		return ""
	}
	return s.key(item)
}

func (s *gridSession[I, R]) choose(key string) error {
	return s.grid.Select(key)
}

func (s *gridSession[I, R]) preview(key string) ([]sheet.Field, int, []sheet.Option, error) {
	if err := s.grid.Select(key); err != nil {
		return nil, 0, nil, err
	}
	fields := make([]sheet.Field, 0, len(s.grid.Preview()))
	for _, f := range s.grid.Preview() {
		fields = append(fields, sheet.Field{Label: f.Label, Value: f.Value})
	}
	return fields, s.grid.ChildSlots(), toOptions(s.grid.ChildCandidates()), nil
}

func (s *gridSession[I, R]) chooseChildren(keys []string) error {
	if len(keys) > s.grid.ChildSlots() {
		return errors.InvalidArgumentf("%d children given, %d slots offered", len(keys), s.grid.ChildSlots())
	}
	for i, key := range keys {
		if err := s.grid.ChooseChild(i, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *gridSession[I, R]) confirm() bool {
	return s.grid.Confirm()
}

func (s *gridSession[I, R]) delete() bool {
	return s.grid.Delete()
}

func (s *gridSession[I, R]) apply(c *entities.Character) *entities.Character {
	out := c.Clone()
	s.set(out, s.grid.Rows())
	return out
}

func toOptions[I any](opts []picker.Option[I]) []sheet.Option {
	out := make([]sheet.Option, 0, len(opts))
	for _, o := range opts {
		out = append(out, sheet.Option{Key: o.Key, Label: o.Label})
	}
	return out
}
