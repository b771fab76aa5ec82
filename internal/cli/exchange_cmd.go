package cli

import (
	"context"
	"fmt"

	"github.com/mlindqvist/focal/internal/exchange"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export all data to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Exchange.Export(context.Background())
			if err != nil {
				return err
			}
			if err := exchange.SaveDocument(args[0], doc); err != nil {
				return err
			}
			fmt.Printf("Exported %d task(s), %d project(s), %d categories, %d journal entries to %s\n",
				len(doc.Tasks), len(doc.Projects), len(doc.Categories), len(doc.JournalEntries), args[0])
			return nil
		},
	}
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import data from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := exchange.LoadDocument(args[0])
			if err != nil {
				return err
			}
			result, err := app.Exchange.Import(context.Background(), doc)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d task(s), %d project(s), %d categories, %d journal entries, %d dependencies\n",
				result.TaskCount, result.ProjectCount, result.CategoryCount, result.JournalCount, result.DependencyCount)
			return nil
		},
	}
	return cmd
}
