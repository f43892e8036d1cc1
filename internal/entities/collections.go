package entities

import (
	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/rows"
)

// Collection names one list-valued field of the sheet
type Collection string

const (
	CollectionActions        Collection = "actions"
	CollectionSupportActions Collection = "supportActions"
	CollectionReactions      Collection = "reactions"
	CollectionSpecials       Collection = "specials"
	CollectionSpells         Collection = "spells"
	CollectionTalents        Collection = "talents"
	CollectionWeapons        Collection = "weapons"
	CollectionArmor          Collection = "armor"
	CollectionEquipment      Collection = "equipment"
)

// Collections lists every row collection in sheet order
var Collections = []Collection{
	CollectionActions,
	CollectionSupportActions,
	CollectionReactions,
	CollectionSpecials,
	CollectionSpells,
	CollectionTalents,
	CollectionWeapons,
	CollectionArmor,
	CollectionEquipment,
}

// String returns the collection name
func (c Collection) String() string {
	return string(c)
}

// IsValid reports whether c names a row collection
func (c Collection) IsValid() bool {
	_, ok := collectionOps[c]
	return ok
}

type rowOps struct {
	length  func(*Character) int
	fields  func() []string
	cell    func(c *Character, index int, field string) (string, error)
	setCell func(c *Character, index int, field, value string) error
	move    func(c *Character, from, to int) error
	remove  func(c *Character, index int) error
	insert  func(c *Character, index int) error
}

func opsFor[T any](get func(*Character) *[]T, cs cells[T]) rowOps {
	return rowOps{
		length: func(c *Character) int { return len(*get(c)) },
		fields: cs.names,
		cell: func(c *Character, index int, field string) (string, error) {
			seq := *get(c)
			if index < 0 || index >= len(seq) {
				return "", errors.IndexOutOfRange("row", index, len(seq))
			}
			return cs.get(seq[index], field)
		},
		setCell: func(c *Character, index int, field, value string) error {
			var cellErr error
			next, err := rows.SetAt(*get(c), index, func(row T) T {
				row, cellErr = cs.set(row, field, value)
				return row
			})
			if err != nil {
				return err
			}
			if cellErr != nil {
				return cellErr
			}
			*get(c) = next
			return nil
		},
		move: func(c *Character, from, to int) error {
			next, err := rows.Move(*get(c), from, to)
			if err != nil {
				return err
			}
			*get(c) = next
			return nil
		},
		remove: func(c *Character, index int) error {
			next, err := rows.RemoveAt(*get(c), index)
			if err != nil {
				return err
			}
			*get(c) = next
			return nil
		},
		insert: func(c *Character, index int) error {
			var blank T
			next, err := rows.InsertAt(*get(c), index, blank)
			if err != nil {
				return err
			}
			*get(c) = next
			return nil
		},
	}
}

var collectionOps = map[Collection]rowOps{
	CollectionActions:        opsFor(func(c *Character) *[]ActionRow { return &c.Actions }, actionCells),
	CollectionSupportActions: opsFor(func(c *Character) *[]ActionRow { return &c.SupportActions }, actionCells),
	CollectionReactions:      opsFor(func(c *Character) *[]ReactionRow { return &c.Reactions }, reactionCells),
	CollectionSpecials:       opsFor(func(c *Character) *[]SpecialRow { return &c.Specials }, specialCells),
	CollectionSpells:         opsFor(func(c *Character) *[]SpellRow { return &c.Spells }, spellCells),
	CollectionTalents:        opsFor(func(c *Character) *[]TalentRow { return &c.Talents }, talentCells),
	CollectionWeapons:        opsFor(func(c *Character) *[]WeaponRow { return &c.Weapons }, weaponCells),
	CollectionArmor:          opsFor(func(c *Character) *[]ArmorRow { return &c.Armor }, armorCells),
	CollectionEquipment:      opsFor(func(c *Character) *[]EquipRow { return &c.Equipment }, equipCells),
}

func opsOf(col Collection) (rowOps, error) {
	ops, ok := collectionOps[col]
	if !ok {
		return rowOps{}, errors.InvalidArgumentf("unknown collection %q", col)
	}
	return ops, nil
}

// RowCount returns the number of rows in col
func (c *Character) RowCount(col Collection) (int, error) {
	ops, err := opsOf(col)
	if err != nil {
		return 0, err
	}
	return ops.length(c), nil
}

// RowFields returns the editable field names of col's rows
func (c *Character) RowFields(col Collection) ([]string, error) {
	ops, err := opsOf(col)
	if err != nil {
		return nil, err
	}
	return ops.fields(), nil
}

// RowCell reads one field of one row
func (c *Character) RowCell(col Collection, index int, field string) (string, error) {
	ops, err := opsOf(col)
	if err != nil {
		return "", err
	}
	return ops.cell(c, index, field)
}

// WithRowCell sets one field of one row, leaving every other row as is
func (c *Character) WithRowCell(col Collection, index int, field, value string) (*Character, error) {
	return c.withRows(col, func(ops rowOps, out *Character) error {
		return ops.setCell(out, index, field, value)
	})
}

// WithRowMoved moves the row at from so it ends up at to
func (c *Character) WithRowMoved(col Collection, from, to int) (*Character, error) {
	return c.withRows(col, func(ops rowOps, out *Character) error {
		return ops.move(out, from, to)
	})
}

// WithRowRemoved drops the row at index
func (c *Character) WithRowRemoved(col Collection, index int) (*Character, error) {
	return c.withRows(col, func(ops rowOps, out *Character) error {
		return ops.remove(out, index)
	})
}

// WithRowInserted inserts a blank row at index
func (c *Character) WithRowInserted(col Collection, index int) (*Character, error) {
	return c.withRows(col, func(ops rowOps, out *Character) error {
		return ops.insert(out, index)
	})
}

// WithRowAppended adds a blank row at the end
func (c *Character) WithRowAppended(col Collection) (*Character, error) {
	return c.withRows(col, func(ops rowOps, out *Character) error {
		return ops.insert(out, ops.length(out))
	})
}

func (c *Character) withRows(col Collection, apply func(rowOps, *Character) error) (*Character, error) {
	ops, err := opsOf(col)
	if err != nil {
		return nil, err
	}
	out := c.Clone()
	if err := apply(ops, out); err != nil {
		return nil, err
	}
	return out, nil
}
