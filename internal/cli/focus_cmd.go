package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mlindqvist/focal/internal/cli/formatter"
	"github.com/mlindqvist/focal/internal/dates"
	"github.com/mlindqvist/focal/internal/domain"
	"github.com/spf13/cobra"
)

func newFocusCmd(app *App) *cobra.Command {
	var mode, energy string
	var limit int

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Show what to work on next",
		RunE: func(cmd *cobra.Command, args []string) error {
			sortMode := domain.SortMode(mode)
			if !domain.ValidSortModes[mode] {
				return fmt.Errorf("invalid mode %q (smart|energymatch|quickwins|eatthefrog|deadline|priority)", mode)
			}
			if energy != "" && !domain.ValidEnergyLevels[energy] {
				return fmt.Errorf("invalid energy %q (low|medium|high)", energy)
			}

			tasks, err := app.Focus.Focus(context.Background(), sortMode, domain.EnergyLevel(energy))
			if err != nil {
				return err
			}
			if limit > 0 && len(tasks) > limit {
				tasks = tasks[:limit]
			}

			now := time.Now()
			fmt.Println(formatter.FormatFocusList(tasks, sortMode, now))
			fmt.Println(formatter.FormatDayBudget(now, dates.DefaultDayEndHour))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(domain.SortSmart), "Sort mode (smart|energymatch|quickwins|eatthefrog|deadline|priority)")
	cmd.Flags().StringVar(&energy, "energy", "", "Current energy level for energymatch mode")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum tasks to show (0 for all)")

	cmd.AddCommand(newFocusAnalyzeCmd(app))

	return cmd
}

func newFocusAnalyzeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <id>",
		Short: "Show which planning fields a task is missing",
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
			c, err := app.Focus.Analyze(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCompleteness(t, c))
			return nil
		},
	}
}
