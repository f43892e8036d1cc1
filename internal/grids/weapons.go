package grids

import (
	"github.com/KirkDiggler/vop-sheet/internal/catalog"
	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/picker"
)

// Weapons binds the weapons collection to the weapon catalog
func Weapons(c *catalog.Catalog) picker.Config[catalog.Weapon, entities.WeaponRow] {
	items := c.Weapons()
	typeOf := func(w catalog.Weapon) string { return w.Type }

	return picker.Config[catalog.Weapon, entities.WeaponRow]{
		Items:  items,
		Label:  func(w catalog.Weapon) string { return w.Name },
		Key:    func(w catalog.Weapon) string { return w.Name },
		RowKey: func(r entities.WeaponRow) string { return r.Name },
		ToRow: func(w catalog.Weapon) entities.WeaponRow {
			return entities.WeaponRow{
				Name:     w.Name,
				Type:     w.Type,
				Damage:   w.Damage,
				Bonus:    w.Bonus,
				Reach:    w.Reach,
				Ability:  w.AbilityModifier,
				Starting: w.Starting,
			}
		},
		Filters: []picker.Filter[catalog.Weapon]{
			availabilityFilter(func(w catalog.Weapon) string { return w.Starting }),
			typeFilter(items, typeOf),
		},
		Preview: recordPreview(func(w catalog.Weapon) catalog.Record { return w.Record },
			"Name", "dmg", "Reach", "Ability modifier", "Type", "1 handed req.", "Rarity", "Stock mod.", "Starting?"),
	}
}
