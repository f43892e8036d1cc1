package grids

import (
	"github.com/KirkDiggler/vop-sheet/internal/catalog"
	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/picker"
	"github.com/KirkDiggler/vop-sheet/internal/pkg/collation"
)

// Talents binds the talents collection to the talent catalog. Talents that
// offer child selections let the user pick children, which are added as rows
// right after the parent.
func Talents(c *catalog.Catalog) picker.Config[catalog.Talent, entities.TalentRow] {
	return picker.Config[catalog.Talent, entities.TalentRow]{
		Items:  c.Talents(),
		Label:  TalentLabel,
		Key:    func(t catalog.Talent) string { return t.Name },
		RowKey: func(r entities.TalentRow) string { return r.Name },
		ToRow: func(t catalog.Talent) entities.TalentRow {
			return entities.TalentRow{
				Name:        t.Name,
				Action:      t.Action,
				Description: t.Description,
			}
		},
		Less: func(a, b catalog.Talent) bool {
			return collation.Compare(a.Name, b.Name) < 0
		},
		Filters: []picker.Filter[catalog.Talent]{
			{
				Name:    FilterType,
				Label:   "Type",
				Default: TableMain,
				Choices: []string{TableMain, TableSecondary},
				Match: func(t catalog.Talent, v picker.Values) bool {
					return norm(t.Table) == norm(v.Get(FilterType))
				},
			},
		},
		Preview: talentPreview(),
		Children: &picker.Children[catalog.Talent, entities.TalentRow]{
			Slots:      func(t catalog.Talent) int { return t.ChildSelections },
			Candidates: func(t catalog.Talent) []catalog.Talent { return c.Children(t.Name) },
			Attach: func(r entities.TalentRow, chosen []catalog.Talent) entities.TalentRow {
				if len(chosen) == 0 {
					return r
				}
				r.ChildSelections = make([]string, 0, len(chosen))
				for _, ch := range chosen {
					r.ChildSelections = append(r.ChildSelections, ch.Name)
				}
				return r
			},
		},
	}
}

func talentPreview() []picker.PreviewField[catalog.Talent] {
	record := func(t catalog.Talent) catalog.Record { return t.Record }
	fields := recordPreview(record, "Name", "Action")
	fields = append(fields, picker.PreviewField[catalog.Talent]{
		Label: "Requirements",
		Value: func(t catalog.Talent) (string, bool) { return t.Requirements, t.Requirements != "" },
	})
	return append(fields, recordPreview(record, "Order", "Race requirements", "Description")...)
}

// TalentLabel renders "Name (Requirements)", or just the name
func TalentLabel(t catalog.Talent) string {
	req := t.Requirements
	if req == "" {
		return t.Name
	}
	return t.Name + " (" + req + ")"
}
