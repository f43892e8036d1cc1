// Package picker is the catalog-backed row editor shared by every list on the
// sheet that can be filled from a catalog.
//
// A Grid starts Idle, where rows are edited in place and reordered. OpenAdd
// and OpenEdit open the picker: filters narrow the catalog, one option is
// selected and previewed, and Confirm writes it into the rows. Cancel leaves
// the rows untouched. Each open starts from the filter defaults with nothing
// selected, except that OpenEdit preselects the row's catalog origin.
package picker

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/pkg/collation"
	"github.com/KirkDiggler/vop-sheet/internal/rows"
)

// Mode is the picker state
type Mode int

const (
	ModeIdle Mode = iota
	ModeAdd
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	default:
		return "idle"
	}
}

// Option is one selectable catalog item
type Option[I any] struct {
	Key   string
	Label string
	Item  I
}

// Field is one preview pair
type Field struct {
	Label string
	Value string
}

// Grid is one row collection bound to one catalog. Not safe for concurrent
// use; callers serialize access.
type Grid[I, R any] struct {
	cfg   Config[I, R]
	items []I
	rows  []R

	mode      Mode
	editIndex int
	values    Values
	selected  string
	hasSel    bool
	children  []string
}

// New validates cfg and returns an Idle grid over rows
func New[I, R any](cfg Config[I, R], rs []R) (*Grid[I, R], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid picker config")
	}

	items := append([]I(nil), cfg.Items...)
	less := cfg.Less
	if less == nil {
		less = func(a, b I) bool {
			return collation.Compare(cfg.Label(a), cfg.Label(b)) < 0
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })

	return &Grid[I, R]{
		cfg:       cfg,
		items:     items,
		rows:      rows.Clone(rs),
		editIndex: -1,
	}, nil
}

// Rows returns a copy of the current rows
func (g *Grid[I, R]) Rows() []R {
	return rows.Clone(g.rows)
}

// Mode returns the current state
func (g *Grid[I, R]) Mode() Mode {
	return g.mode
}

// EditIndex returns the row being edited, or -1 outside edit mode
func (g *Grid[I, R]) EditIndex() int {
	if g.mode != ModeEdit {
		return -1
	}
	return g.editIndex
}

// Filters returns the configured filters
func (g *Grid[I, R]) Filters() []Filter[I] {
	return append([]Filter[I](nil), g.cfg.Filters...)
}

// Values returns the current filter values
func (g *Grid[I, R]) Values() Values {
	return g.values.clone()
}

// OpenAdd opens the picker to append a new row
func (g *Grid[I, R]) OpenAdd() {
	g.open(ModeAdd, -1)
}

// OpenEdit opens the picker to replace the row at index. The catalog item
// whose key matches the row's key is preselected when there is one.
func (g *Grid[I, R]) OpenEdit(index int) error {
	if index < 0 || index >= len(g.rows) {
		return errors.IndexOutOfRange("row", index, len(g.rows))
	}
	g.open(ModeEdit, index)

	if g.cfg.RowKey == nil {
		return nil
	}
	key := strings.TrimSpace(g.cfg.RowKey(g.rows[index]))
	if key == "" {
		return nil
	}
	for _, item := range g.items {
		if g.cfg.Key(item) == key {
			g.selected = key
			g.hasSel = true
			g.resetChildren()
			break
		}
	}
	return nil
}

func (g *Grid[I, R]) open(mode Mode, index int) {
	g.mode = mode
	g.editIndex = index
	g.values = make(Values, len(g.cfg.Filters))
	for _, f := range g.cfg.Filters {
		g.values[f.Name] = f.Default
	}
	g.selected = ""
	g.hasSel = false
	g.children = nil
}

// Cancel closes the picker without touching the rows
func (g *Grid[I, R]) Cancel() {
	g.close()
}

func (g *Grid[I, R]) close() {
	g.mode = ModeIdle
	g.editIndex = -1
	g.values = nil
	g.selected = ""
	g.hasSel = false
	g.children = nil
}

// SetFilter changes one filter value; the options are re-evaluated on the
// next read.
func (g *Grid[I, R]) SetFilter(name, value string) error {
	if g.mode == ModeIdle {
		return errors.FailedPrecondition("picker is not open")
	}
	if _, ok := g.values[name]; !ok {
		return errors.InvalidArgumentf("unknown filter %q", name)
	}
	g.values[name] = value
	return nil
}

// Options returns the catalog items passing every filter, in display order
func (g *Grid[I, R]) Options() []Option[I] {
	var out []Option[I]
	for _, item := range g.items {
		if !g.matches(item) {
			continue
		}
		out = append(out, Option[I]{Key: g.cfg.Key(item), Label: g.cfg.Label(item), Item: item})
	}
	return out
}

func (g *Grid[I, R]) matches(item I) bool {
	for _, f := range g.cfg.Filters {
		if !f.Match(item, g.values) {
			return false
		}
	}
	return true
}

// Select picks the option with key. It must be among the current options.
func (g *Grid[I, R]) Select(key string) error {
	if g.mode == ModeIdle {
		return errors.FailedPrecondition("picker is not open")
	}
	if _, ok := g.option(key); !ok {
		return errors.NotFoundf("%q is not among the current options", key)
	}
	if g.hasSel && g.selected == key {
		return nil
	}
	g.selected = key
	g.hasSel = true
	g.resetChildren()
	return nil
}

// Selected returns the selected item while it passes the current filters
func (g *Grid[I, R]) Selected() (I, bool) {
	var zero I
	if g.mode == ModeIdle || !g.hasSel {
		return zero, false
	}
	opt, ok := g.option(g.selected)
	if !ok {
		return zero, false
	}
	return opt.Item, true
}

func (g *Grid[I, R]) option(key string) (Option[I], bool) {
	for _, item := range g.items {
		if g.cfg.Key(item) != key || !g.matches(item) {
			continue
		}
		return Option[I]{Key: key, Label: g.cfg.Label(item), Item: item}, true
	}
	return Option[I]{}, false
}

// Preview returns the selected item's preview fields. Fields that are absent
// or blank are left out; "0" is a value and is kept.
func (g *Grid[I, R]) Preview() []Field {
	item, ok := g.Selected()
	if !ok {
		return nil
	}
	return PreviewOf(g.cfg.Preview, item)
}

// PreviewOf evaluates preview fields against item
func PreviewOf[I any](fields []PreviewField[I], item I) []Field {
	var out []Field
	for _, pf := range fields {
		v, ok := pf.Value(item)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, Field{Label: pf.Label, Value: v})
	}
	return out
}

// ChildSlots returns how many child selections the selected item offers.
// Zero when it has no candidates.
func (g *Grid[I, R]) ChildSlots() int {
	return len(g.children)
}

// ChildCandidates returns the options for each child slot, in label order
func (g *Grid[I, R]) ChildCandidates() []Option[I] {
	item, ok := g.Selected()
	if !ok || g.cfg.Children == nil {
		return nil
	}
	var out []Option[I]
	for _, c := range g.cfg.Children.Candidates(item) {
		out = append(out, Option[I]{Key: g.cfg.Key(c), Label: g.cfg.Label(c), Item: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return collation.Compare(out[i].Label, out[j].Label) < 0
	})
	return out
}

// ChildChoices returns the key chosen for each slot, "" for an empty slot
func (g *Grid[I, R]) ChildChoices() []string {
	return append([]string(nil), g.children...)
}

// ChooseChild fills one child slot. An empty key clears the slot.
func (g *Grid[I, R]) ChooseChild(slot int, key string) error {
	if slot < 0 || slot >= len(g.children) {
		return errors.IndexOutOfRange("child slot", slot, len(g.children))
	}
	if key == "" {
		g.children[slot] = ""
		return nil
	}
	for _, c := range g.ChildCandidates() {
		if c.Key == key {
			g.children[slot] = key
			return nil
		}
	}
	return errors.NotFoundf("%q is not a child of the selected item", key)
}

func (g *Grid[I, R]) resetChildren() {
	g.children = nil
	if g.cfg.Children == nil || !g.hasSel {
		return
	}
	item, ok := g.findItem(g.selected)
	if !ok {
		return
	}
	n := g.cfg.Children.Slots(item)
	if n <= 0 || len(g.cfg.Children.Candidates(item)) == 0 {
		return
	}
	g.children = make([]string, n)
}

func (g *Grid[I, R]) findItem(key string) (I, bool) {
	for _, item := range g.items {
		if g.cfg.Key(item) == key {
			return item, true
		}
	}
	var zero I
	return zero, false
}

func (g *Grid[I, R]) chosenChildren() []I {
	if len(g.children) == 0 {
		return nil
	}
	candidates := g.ChildCandidates()
	var out []I
	for _, key := range g.children {
		if key == "" {
			continue
		}
		for _, c := range candidates {
			if c.Key == key {
				out = append(out, c.Item)
				break
			}
		}
	}
	return out
}

// Confirm commits the selection and closes the picker. In add mode the row
// is appended; in edit mode it overwrites the row being edited. Returns false
// and changes nothing when no option is selected.
func (g *Grid[I, R]) Confirm() bool {
	item, ok := g.Selected()
	if !ok {
		return false
	}

	row := g.cfg.ToRow(item)
	chosen := g.chosenChildren()
	if g.cfg.Children != nil && g.cfg.Children.Attach != nil && len(g.children) > 0 {
		row = g.cfg.Children.Attach(row, chosen)
	}

	block := make([]R, 0, 1+len(chosen))
	block = append(block, row)
	for _, c := range chosen {
		block = append(block, g.cfg.ToRow(c))
	}

	var next []R
	switch g.mode {
	case ModeAdd:
		next = append(rows.Clone(g.rows), block...)
	case ModeEdit:
		next = make([]R, 0, len(g.rows)+len(block)-1)
		next = append(next, g.rows[:g.editIndex]...)
		next = append(next, block...)
		next = append(next, g.rows[g.editIndex+1:]...)
	default:
		return false
	}

	g.close()
	g.commit(next)
	return true
}

// Delete removes the row being edited and closes the picker. Outside edit
// mode it does nothing and returns false.
func (g *Grid[I, R]) Delete() bool {
	if g.mode != ModeEdit {
		return false
	}
	next, err := rows.RemoveAt(g.rows, g.editIndex)
	if err != nil {
		return false
	}
	g.close()
	g.commit(next)
	return true
}

// EditCell patches one row in place. Only allowed while Idle.
func (g *Grid[I, R]) EditCell(index int, patch func(R) R) error {
	if g.mode != ModeIdle {
		return errors.FailedPrecondition("close the picker before editing rows")
	}
	next, err := rows.SetAt(g.rows, index, patch)
	if err != nil {
		return err
	}
	g.commit(next)
	return nil
}

// Move reorders rows; to indexes the rows after from is removed. Only
// allowed while Idle.
func (g *Grid[I, R]) Move(from, to int) error {
	if g.mode != ModeIdle {
		return errors.FailedPrecondition("close the picker before reordering rows")
	}
	next, err := rows.Move(g.rows, from, to)
	if err != nil {
		return err
	}
	g.commit(next)
	return nil
}

func (g *Grid[I, R]) commit(next []R) {
	g.rows = next
	if g.cfg.OnChange != nil {
		g.cfg.OnChange(rows.Clone(next))
	}
}
