package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Add, replace or delete rows from the catalog",
	Long:  `Catalog pickers exist for weapons, armor, spells and talents.`,
}

var (
	pickFilters  map[string]string
	pickChildren []string
	pickEdit     int
)

var pickListCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List the catalog items the picker offers",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		input := &sheet.ListOptionsInput{
			Collection: entities.Collection(args[0]),
			Filters:    pickFilters,
		}
		if cmd.Flags().Changed("edit") {
			input.EditIndex = &pickEdit
		}
		out, err := a.sheet.ListOptions(ctx, input)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, f := range out.Filters {
			fmt.Fprintf(w, "filter %s (%s) = %q\n", f.Name, f.Label, f.Value)
		}
		for _, o := range out.Options {
			marker := " "
			if o.Key == out.Selected {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %s\n", marker, o.Label)
		}
		return nil
	}),
}

var pickPreviewCmd = &cobra.Command{
	Use:   "preview <collection> <key>",
	Short: "Show a catalog item's preview",
	Args:  cobra.ExactArgs(2),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		out, err := a.sheet.PreviewItem(ctx, &sheet.PreviewItemInput{
			Collection: entities.Collection(args[0]),
			Key:        args[1],
			Filters:    pickFilters,
		})
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if err := printFields(w, out.Fields); err != nil {
			return err
		}
		if out.ChildSlots > 0 {
			fmt.Fprintf(w, "\nChoose %d of:\n", out.ChildSlots)
			for _, c := range out.ChildCandidates {
				fmt.Fprintf(w, "  %s\n", c.Label)
			}
		}
		return nil
	}),
}

var pickAddCmd = &cobra.Command{
	Use:   "add <collection> <key>",
	Short: "Append the row for a catalog item",
	Args:  cobra.ExactArgs(2),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		out, err := a.sheet.AddFromCatalog(ctx, &sheet.AddFromCatalogInput{
			Collection: entities.Collection(args[0]),
			Key:        args[1],
			Filters:    pickFilters,
			Children:   pickChildren,
		})
		if err != nil {
			return err
		}
		return printRows(cmd.OutOrStdout(), out.Character, entities.Collection(args[0]))
	}),
}

var pickReplaceCmd = &cobra.Command{
	Use:   "replace <collection> <index> <key>",
	Short: "Overwrite a row with the one for a catalog item",
	Args:  cobra.ExactArgs(3),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		indexes, err := parseIndexes(args[1:2])
		if err != nil {
			return err
		}
		out, err := a.sheet.ReplaceFromCatalog(ctx, &sheet.ReplaceFromCatalogInput{
			Collection: entities.Collection(args[0]),
			Index:      indexes[0],
			Key:        args[2],
			Filters:    pickFilters,
			Children:   pickChildren,
		})
		if err != nil {
			return err
		}
		return printRows(cmd.OutOrStdout(), out.Character, entities.Collection(args[0]))
	}),
}

var pickDeleteCmd = &cobra.Command{
	Use:   "delete <collection> <index>",
	Short: "Delete a row through its picker",
	Args:  cobra.ExactArgs(2),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		indexes, err := parseIndexes(args[1:])
		if err != nil {
			return err
		}
		out, err := a.sheet.DeleteViaPicker(ctx, &sheet.DeleteViaPickerInput{
			Collection: entities.Collection(args[0]),
			Index:      indexes[0],
		})
		if err != nil {
			return err
		}
		return printRows(cmd.OutOrStdout(), out.Character, entities.Collection(args[0]))
	}),
}

func init() {
	for _, c := range []*cobra.Command{pickListCmd, pickPreviewCmd, pickAddCmd, pickReplaceCmd} {
		c.Flags().StringToStringVar(&pickFilters, "filter", nil, "filter value by name, e.g. --filter availability=Non-starting")
	}
	for _, c := range []*cobra.Command{pickAddCmd, pickReplaceCmd} {
		c.Flags().StringSliceVar(&pickChildren, "child", nil, "child selection, in slot order")
	}
	pickListCmd.Flags().IntVar(&pickEdit, "edit", 0, "open on this row and mark its item")

	pickCmd.AddCommand(pickListCmd)
	pickCmd.AddCommand(pickPreviewCmd)
	pickCmd.AddCommand(pickAddCmd)
	pickCmd.AddCommand(pickReplaceCmd)
	pickCmd.AddCommand(pickDeleteCmd)
}
