package picker

import (
	"github.com/KirkDiggler/vop-sheet/internal/errors"
)

// Values holds the current value of every filter, keyed by filter name
type Values map[string]string

// Get returns the value of the named filter, "" when unset
func (v Values) Get(name string) string {
	return v[name]
}

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Filter narrows the catalog while a picker is open. Match sees every
// filter's current value so one filter may OR across several of them.
type Filter[I any] struct {
	Name    string
	Label   string
	Default string
	// Choices lists the values offered to the user. Empty means free text.
	Choices []string
	Match   func(item I, values Values) bool
}

// PreviewField reads one label/value pair for the preview pane. ok is false
// when the item has no such field.
type PreviewField[I any] struct {
	Label string
	Value func(item I) (value string, ok bool)
}

// Children lets a selected item carry a number of child selections. Chosen
// children are recorded on the parent row and added as rows of their own
// directly after it.
type Children[I, R any] struct {
	Slots      func(item I) int
	Candidates func(item I) []I
	Attach     func(row R, chosen []I) R
}

// Config binds a row collection to a catalog
type Config[I, R any] struct {
	Items  []I
	Label  func(I) string
	Key    func(I) string
	ToRow  func(I) R
	RowKey func(R) string

	Filters []Filter[I]
	// Less orders the options. Defaults to collated label order.
	Less     func(a, b I) bool
	Preview  []PreviewField[I]
	Children *Children[I, R]

	// OnChange receives the replacement rows after every mutation
	OnChange func(rows []R)
}

// Validate checks the required hooks are present
func (c Config[I, R]) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Label == nil {
		vb.RequiredField("Label")
	}
	if c.Key == nil {
		vb.RequiredField("Key")
	}
	if c.ToRow == nil {
		vb.RequiredField("ToRow")
	}

	seen := make(map[string]bool, len(c.Filters))
	for _, f := range c.Filters {
		if f.Name == "" {
			vb.Field("Filters", "filter name is required")
			continue
		}
		if seen[f.Name] {
			vb.Fieldf("Filters", "duplicate filter %q", f.Name)
		}
		seen[f.Name] = true
		if f.Match == nil {
			vb.Fieldf("Filters", "filter %q has no Match", f.Name)
		}
	}

	if c.Children != nil && (c.Children.Slots == nil || c.Children.Candidates == nil) {
		vb.Field("Children", "Slots and Candidates are required")
	}

	return vb.Build()
}
