package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Look up races and race talents",
}

var catalogRacesCmd = &cobra.Command{
	Use:   "races",
	Short: "List the catalog races",
	Args:  cobra.NoArgs,
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		out, err := a.sheet.RaceInfo(ctx, &sheet.RaceInfoInput{})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out.Races, "\n"))
		return err
	}),
}

var catalogTalentsCmd = &cobra.Command{
	Use:   "talents [race]",
	Short: "List the race talents a race may take; the current race by default",
	Args:  cobra.MaximumNArgs(1),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		input := &sheet.AllowedTalentsInput{}
		if len(args) == 1 {
			input.Race = args[0]
		}
		out, err := a.sheet.AllowedTalents(ctx, input)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", out.Race, strings.Join(out.Talents, ", "))
		return err
	}),
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info [race] [talent]",
	Short: "Describe a race and race talent; the current ones by default",
	Args:  cobra.MaximumNArgs(2),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		input := &sheet.RaceInfoInput{}
		if len(args) > 0 {
			input.Race = args[0]
		}
		if len(args) > 1 {
			input.Talent = args[1]
		}
		out, err := a.sheet.RaceInfo(ctx, input)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if !out.Found {
			fmt.Fprintf(w, "No race named %q\n", out.Race)
		} else if err := printFields(w, out.RaceFields); err != nil {
			return err
		}
		if out.Talent == "" {
			return nil
		}
		fmt.Fprintln(w)
		if !out.TalentFound {
			_, err = fmt.Fprintf(w, "No race talent named %q\n", out.Talent)
			return err
		}
		return printFields(w, out.TalentFields)
	}),
}

func init() {
	catalogCmd.AddCommand(catalogRacesCmd)
	catalogCmd.AddCommand(catalogTalentsCmd)
	catalogCmd.AddCommand(catalogInfoCmd)
}
