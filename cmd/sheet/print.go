package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/numeric"
	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

func printSheet(w io.Writer, c *entities.Character) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Name:\t%s\n", c.Name)
	fmt.Fprintf(tw, "Race | Talent:\t%s\n", c.RaceTalent)
	fmt.Fprintf(tw, "Level:\t%s\n", c.Level)
	fmt.Fprintf(tw, "HP:\t%s / %s\n", c.CurHP, c.MaxHP)
	fmt.Fprintf(tw, "Mana:\t%s / %s\n", c.CurMana, c.MaxMana)
	fmt.Fprintf(tw, "AC:\t%s\n", c.ArmorClass)
	fmt.Fprintf(tw, "Speed:\t%s\n", c.Speed)
	fmt.Fprintf(tw, "Initiative:\t%s\n", numeric.FormatSigned(c.Initiative))
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Ability\tBase\tMod\tSave")
	for _, key := range entities.AbilityKeys {
		a := c.Ability(key)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			key, a.Base, numeric.FormatSigned(a.Mod()), numeric.FormatSigned(a.EffectiveSave()))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Skill\tAbility\tBonus\tTotal")
	for _, s := range c.Skills {
		total, _ := c.SkillTotal(s.Key)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			s.Key, s.Ability, numeric.FormatSigned(s.Bonus), numeric.FormatSigned(total))
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Spellcasting:\t%s (%s)\n", c.Spellcasting.Ability, c.Spellcasting.Domain)
	fmt.Fprintf(tw, "Spell attack:\t%s\n", numeric.FormatSigned(c.Spellcasting.SpellAttack))
	fmt.Fprintf(tw, "Spell save DC:\t%s\n", c.SpellSaveDC())
	fmt.Fprintln(tw)

	for _, col := range entities.Collections {
		n, err := c.RowCount(col)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s:\t%d rows\n", col, n)
	}

	return tw.Flush()
}

func printRows(w io.Writer, c *entities.Character, col entities.Collection) error {
	names, err := c.RowFields(col)
	if err != nil {
		return err
	}
	n, err := c.RowCount(col)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\n", strings.Join(names, "\t"))
	for i := 0; i < n; i++ {
		cells := make([]string, 0, len(names))
		for _, name := range names {
			v, err := c.RowCell(col, i, name)
			if err != nil {
				return err
			}
			cells = append(cells, v)
		}
		fmt.Fprintf(tw, "%d\t%s\n", i, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func printFields(w io.Writer, fields []sheet.Field) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Label, f.Value)
	}
	return tw.Flush()
}
