package sheet

import (
	"context"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/numeric"
	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

func parseTyped(text string) numeric.Number {
	return numeric.ParseSigned(text)
}

// openSession starts a picker over col, in edit mode when editIndex is set,
// with filters applied over the defaults
func (o *Orchestrator) openSession(
	c *entities.Character, col entities.Collection, editIndex *int, filters map[string]string,
) (session, error) {
	if err := validateCollection(col); err != nil {
		return nil, err
	}

	s, err := newSession(o.catalog, c, col)
	if err != nil {
		return nil, err
	}

	if editIndex != nil {
		if err := s.openEdit(*editIndex); err != nil {
			return nil, err
		}
	} else {
		s.openAdd()
	}

	if err := s.setFilters(filters); err != nil {
		return nil, err
	}
	return s, nil
}

// ListOptions returns what a picker offers under the given filters
func (o *Orchestrator) ListOptions(_ context.Context, input *sheet.ListOptionsInput) (*sheet.ListOptionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	s, err := o.openSession(o.snapshot(), input.Collection, input.EditIndex, input.Filters)
	if err != nil {
		return nil, err
	}

	return &sheet.ListOptionsOutput{
		Options:  s.options(),
		Filters:  s.filters(),
		Selected: s.selected(),
	}, nil
}

// PreviewItem returns the preview of one catalog item
func (o *Orchestrator) PreviewItem(_ context.Context, input *sheet.PreviewItemInput) (*sheet.PreviewItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	s, err := o.openSession(o.snapshot(), input.Collection, nil, input.Filters)
	if err != nil {
		return nil, err
	}

	fields, slots, candidates, err := s.preview(input.Key)
	if err != nil {
		return nil, err
	}
	return &sheet.PreviewItemOutput{
		Fields:          fields,
		ChildSlots:      slots,
		ChildCandidates: candidates,
	}, nil
}

// AddFromCatalog appends the row built from a catalog item, followed by a
// row for each chosen child
func (o *Orchestrator) AddFromCatalog(ctx context.Context, input *sheet.AddFromCatalogInput) (*sheet.AddFromCatalogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		s, err := o.openSession(c, input.Collection, nil, input.Filters)
		if err != nil {
			return nil, err
		}
		return pick(c, s, input.Key, input.Children)
	})
	if err != nil {
		return nil, err
	}
	return &sheet.AddFromCatalogOutput{Character: next}, nil
}

// ReplaceFromCatalog overwrites a row with the one built from a catalog item
func (o *Orchestrator) ReplaceFromCatalog(ctx context.Context, input *sheet.ReplaceFromCatalogInput) (*sheet.ReplaceFromCatalogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		index := input.Index
		s, err := o.openSession(c, input.Collection, &index, input.Filters)
		if err != nil {
			return nil, err
		}
		return pick(c, s, input.Key, input.Children)
	})
	if err != nil {
		return nil, err
	}
	return &sheet.ReplaceFromCatalogOutput{Character: next}, nil
}

// DeleteViaPicker removes a row from the picker's edit mode
func (o *Orchestrator) DeleteViaPicker(ctx context.Context, input *sheet.DeleteViaPickerInput) (*sheet.DeleteViaPickerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	next, err := o.mutate(ctx, func(c *entities.Character) (*entities.Character, error) {
		index := input.Index
		s, err := o.openSession(c, input.Collection, &index, nil)
		if err != nil {
			return nil, err
		}
		if !s.delete() {
			return nil, errors.FailedPrecondition("picker is not editing a row")
		}
		return s.apply(c), nil
	})
	if err != nil {
		return nil, err
	}
	return &sheet.DeleteViaPickerOutput{Character: next}, nil
}

func pick(c *entities.Character, s session, key string, children []string) (*entities.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("key", key, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := s.choose(key); err != nil {
		return nil, err
	}
	if err := s.chooseChildren(children); err != nil {
		return nil, err
	}
	if !s.confirm() {
		return nil, errors.FailedPrecondition("no catalog item selected")
	}
	return s.apply(c), nil
}
