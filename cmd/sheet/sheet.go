package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

// runWithApp opens the configured sheet, runs fn and waits for saves
func runWithApp(fn func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(ctx, cmd, a, args)
	}
}

var jsonOutput bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current character",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		if jsonOutput {
			out, err := a.sheet.Export(ctx, &sheet.ExportInput{Indent: true})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out.Data))
			return err
		}

		out, err := a.sheet.Get(ctx, &sheet.GetInput{})
		if err != nil {
			return err
		}
		return printSheet(cmd.OutOrStdout(), out.Character)
	}),
}

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a text or number field",
	Long: `Set a text or number field. Number fields read the value leniently: text
that is not an integer stores a blank.

Fields: ` + strings.Join(entities.ScalarFieldKeys(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		if !entities.IsScalarField(args[0]) {
			return fmt.Errorf("%q is not a text or number field", args[0])
		}
		out, err := a.sheet.UpdateField(ctx, &sheet.UpdateFieldInput{Key: args[0], Value: args[1]})
		if err != nil {
			return err
		}
		value, err := out.Character.Field(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", args[0], value)
		return err
	}),
}

var raceCmd = &cobra.Command{
	Use:   "race <race>",
	Short: "Set the race, clearing a race talent it cannot take",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		out, err := a.sheet.SetRace(ctx, &sheet.SetRaceInput{Race: args[0]})
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Race | Talent: %s\n", out.Character.RaceTalent)
		if out.TalentCleared {
			fmt.Fprintln(w, "Race talent cleared")
		}
		_, err = fmt.Fprintf(w, "Allowed talents: %s\n", strings.Join(out.AllowedTalents, ", "))
		return err
	}),
}

var talentCmd = &cobra.Command{
	Use:   "talent [talent]",
	Short: "Set the race talent, or clear it when none is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		var talent string
		if len(args) == 1 {
			talent = args[0]
		}
		out, err := a.sheet.SetRaceTalent(ctx, &sheet.SetRaceTalentInput{Talent: talent})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Race | Talent: %s\n", out.Character.RaceTalent)
		return err
	}),
}

var (
	abilityBase string
	abilitySave string
)

var abilityCmd = &cobra.Command{
	Use:   "ability <Phy|Agi|Int|Con|Cha>",
	Short: "Set an ability's base score or save",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		key := entities.AbilityKey(args[0])
		var c *entities.Character
		if cmd.Flags().Changed("base") {
			out, err := a.sheet.SetAbilityBase(ctx, &sheet.SetAbilityInput{Ability: key, Value: abilityBase})
			if err != nil {
				return err
			}
			c = out.Character
		}
		if cmd.Flags().Changed("save") {
			out, err := a.sheet.SetAbilitySave(ctx, &sheet.SetAbilityInput{Ability: key, Value: abilitySave})
			if err != nil {
				return err
			}
			c = out.Character
		}
		if c == nil {
			return fmt.Errorf("nothing to set: use --base and/or --save")
		}
		return printSheet(cmd.OutOrStdout(), c)
	}),
}

var skillCmd = &cobra.Command{
	Use:   "skill <skill> <bonus>",
	Short: "Set a skill's bonus",
	Args:  cobra.ExactArgs(2),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		out, err := a.sheet.SetSkillBonus(ctx, &sheet.SetSkillBonusInput{Skill: args[0], Value: args[1]})
		if err != nil {
			return err
		}
		total, err := out.Character.SkillTotal(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s total: %s\n", args[0], total)
		return err
	}),
}

var (
	castAbility string
	castDomain  string
	castAttack  string
)

var spellcastingCmd = &cobra.Command{
	Use:   "spellcasting",
	Short: "Set the spellcasting ability, domain or spell attack",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		input := &sheet.SetSpellcastingInput{}
		if cmd.Flags().Changed("ability") {
			key := entities.AbilityKey(castAbility)
			input.Ability = &key
		}
		if cmd.Flags().Changed("domain") {
			input.Domain = &castDomain
		}
		if cmd.Flags().Changed("attack") {
			input.SpellAttack = &castAttack
		}

		out, err := a.sheet.SetSpellcasting(ctx, input)
		if err != nil {
			return err
		}
		sc := out.Character.Spellcasting
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Ability: %s\nDomain: %s\nSpell attack: %s\nSpell save DC: %s\n",
			sc.Ability, sc.Domain, sc.SpellAttack, out.Character.SpellSaveDC())
		return err
	}),
}

var (
	exportPath    string
	exportCompact bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the character as JSON",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		out, err := a.sheet.Export(ctx, &sheet.ExportInput{Indent: !exportCompact})
		if err != nil {
			return err
		}
		if exportPath == "" || exportPath == "-" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out.Data))
			return err
		}
		if err := os.WriteFile(exportPath, out.Data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportPath, err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportPath)
		return err
	}),
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the character with one read from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		out, err := a.sheet.Import(ctx, &sheet.ImportInput{Data: data})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %q\n", out.Character.Name)
		return err
	}),
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the character with a blank sheet",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		if _, err := a.sheet.Reset(ctx, &sheet.ResetInput{}); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Character reset")
		return err
	}),
}

func init() {
	showCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	abilityCmd.Flags().StringVar(&abilityBase, "base", "", "base score; blank clears")
	abilityCmd.Flags().StringVar(&abilitySave, "save", "", "save override; blank follows the modifier")

	spellcastingCmd.Flags().StringVar(&castAbility, "ability", "", "Int, Con or Cha")
	spellcastingCmd.Flags().StringVar(&castDomain, "domain", "", strings.Join(entities.Domains, ", "))
	spellcastingCmd.Flags().StringVar(&castAttack, "attack", "", "spell attack bonus")

	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "", "file to write; stdout when empty")
	exportCmd.Flags().BoolVar(&exportCompact, "compact", false, "write without indentation")
}
