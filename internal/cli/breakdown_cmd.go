package cli

import (
	"context"
	"fmt"

	"github.com/mlindqvist/focal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBreakdownCmd(app *App) *cobra.Command {
	var budget int

	cmd := &cobra.Command{
		Use:   "breakdown <id>",
		Short: "Break a task into small starter steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			steps, err := app.Breakdown.Suggest(ctx, t, budget)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSteps(t, steps))
			return nil
		},
	}

	cmd.Flags().IntVar(&budget, "budget", 0, "Time budget in minutes (0 for no cap)")

	return cmd
}
