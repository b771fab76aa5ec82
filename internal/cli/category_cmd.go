package cli

import (
	"context"
	"fmt"

	"github.com/mlindqvist/focal/internal/cli/formatter"
	"github.com/mlindqvist/focal/internal/domain"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	cmd.AddCommand(
		newCategoryAddCmd(app),
		newCategoryListCmd(app),
		newCategoryUpdateCmd(app),
		newCategoryRemoveCmd(app),
	)

	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Category{
				Name:  args[0],
				Color: color,
			}
			if err := app.Categories.Add(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Created category %s (%s)\n", c.Name, c.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Display color (#RRGGBB)")

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Categories.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCategoryList(categories))
			return nil
		},
	}
}

func newCategoryUpdateCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCategoryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Categories.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				c.Name = name
			}
			if flags.Changed("color") {
				c.Color = color
			}

			if err := app.Categories.Update(ctx, c); err != nil {
				return err
			}
			fmt.Printf("Updated category %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&color, "color", "", "Display color (#RRGGBB)")

	return cmd
}

func newCategoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCategoryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Categories.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted category %s\n", id[:8])
			return nil
		},
	}
}
