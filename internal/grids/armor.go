package grids

import (
	"github.com/KirkDiggler/vop-sheet/internal/catalog"
	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/picker"
)

// Armor binds the armor collection to the armor catalog
func Armor(c *catalog.Catalog) picker.Config[catalog.Armor, entities.ArmorRow] {
	items := c.Armor()
	typeOf := func(a catalog.Armor) string { return a.Type }

	return picker.Config[catalog.Armor, entities.ArmorRow]{
		Items:  items,
		Label:  func(a catalog.Armor) string { return a.Name },
		Key:    func(a catalog.Armor) string { return a.Name },
		RowKey: func(r entities.ArmorRow) string { return r.Name },
		ToRow: func(a catalog.Armor) entities.ArmorRow {
			return entities.ArmorRow{
				Name:         a.Name,
				Type:         a.Type,
				ACBonus:      a.ACBonus,
				Penalty:      a.Penalty,
				Property:     a.Property,
				Requirements: a.Requirements,
				Starting:     a.Starting,
			}
		},
		Filters: []picker.Filter[catalog.Armor]{
			availabilityFilter(func(a catalog.Armor) string { return a.Starting }),
			typeFilter(items, typeOf),
		},
		Preview: recordPreview(func(a catalog.Armor) catalog.Record { return a.Record },
			"Name", "AC bonus", "Penalty", "Property", "Requirements", "Type", "Starting?"),
	}
}
