package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "List and edit row collections",
	Long:  `Row collections: ` + collectionNames(),
}

var rowsAt int

var rowsListCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "Print a collection's rows",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		out, err := a.sheet.Get(ctx, &sheet.GetInput{})
		if err != nil {
			return err
		}
		return printRows(cmd.OutOrStdout(), out.Character, entities.Collection(args[0]))
	}),
}

var rowsAddCmd = &cobra.Command{
	Use:   "add <collection>",
	Short: "Add a blank row, at the end unless --at is given",
	Args:  cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		input := &sheet.AddRowInput{Collection: entities.Collection(args[0])}
		if cmd.Flags().Changed("at") {
			input.Index = &rowsAt
		}
		out, err := a.sheet.AddRow(ctx, input)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s row %d\n", args[0], out.Index)
		return err
	}),
}

var rowsMoveCmd = &cobra.Command{
	Use:   "move <collection> <from> <to>",
	Short: "Move a row",
	Args:  cobra.ExactArgs(3),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		indexes, err := parseIndexes(args[1:])
		if err != nil {
			return err
		}
		out, err := a.sheet.MoveRow(ctx, &sheet.MoveRowInput{
			Collection: entities.Collection(args[0]),
			From:       indexes[0],
			To:         indexes[1],
		})
		if err != nil {
			return err
		}
		return printRows(cmd.OutOrStdout(), out.Character, entities.Collection(args[0]))
	}),
}

var rowsRemoveCmd = &cobra.Command{
	Use:   "remove <collection> <index>",
	Short: "Remove a row",
	Args:  cobra.ExactArgs(2),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		indexes, err := parseIndexes(args[1:])
		if err != nil {
			return err
		}
		out, err := a.sheet.RemoveRow(ctx, &sheet.RemoveRowInput{
			Collection: entities.Collection(args[0]),
			Index:      indexes[0],
		})
		if err != nil {
			return err
		}
		return printRows(cmd.OutOrStdout(), out.Character, entities.Collection(args[0]))
	}),
}

var rowsEditCmd = &cobra.Command{
	Use:   "edit <collection> <index> <field> <value>",
	Short: "Set one cell of a row",
	Args:  cobra.ExactArgs(4),
	RunE: runWithApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		indexes, err := parseIndexes(args[1:2])
		if err != nil {
			return err
		}
		out, err := a.sheet.EditRow(ctx, &sheet.EditRowInput{
			Collection: entities.Collection(args[0]),
			Index:      indexes[0],
			Field:      args[2],
			Value:      args[3],
		})
		if err != nil {
			return err
		}
		return printRows(cmd.OutOrStdout(), out.Character, entities.Collection(args[0]))
	}),
}

func init() {
	rowsAddCmd.Flags().IntVar(&rowsAt, "at", 0, "index to insert at")

	rowsCmd.AddCommand(rowsListCmd)
	rowsCmd.AddCommand(rowsAddCmd)
	rowsCmd.AddCommand(rowsMoveCmd)
	rowsCmd.AddCommand(rowsRemoveCmd)
	rowsCmd.AddCommand(rowsEditCmd)
}

func parseIndexes(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is not a row index", arg)
		}
		out = append(out, n)
	}
	return out, nil
}

func collectionNames() string {
	names := make([]string, 0, len(entities.Collections))
	for _, col := range entities.Collections {
		names = append(names, col.String())
	}
	return strings.Join(names, ", ")
}
