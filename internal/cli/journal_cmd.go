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

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Weekly review journal",
	}

	cmd.AddCommand(
		newJournalAddCmd(app),
		newJournalWeekCmd(app),
		newJournalRemoveCmd(app),
	)

	return cmd
}

func newJournalAddCmd(app *App) *cobra.Command {
	var section, date, mood string

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := &domain.JournalEntry{
				Section: domain.JournalSection(section),
				Content: args[0],
				Mood:    mood,
			}
			if date != "" {
				d, ok := dates.ParseDate(date)
				if !ok {
					return fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date)
				}
				e.Date = d
			}

			if err := app.Journal.Add(context.Background(), e); err != nil {
				return err
			}
			fmt.Printf("Logged %s entry for week %d, %d\n", e.Section, e.Week, e.Year)
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", string(domain.SectionFreeform), "Section (wins|challenges|gratitude|nextweek|freeform)")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (defaults to today)")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood label")

	return cmd
}

func newJournalWeekCmd(app *App) *cobra.Command {
	var year, week int

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show one week of journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 || week == 0 {
				week, year = domain.BucketFor(time.Now())
			}
			entries, err := app.Journal.ListWeek(context.Background(), year, week)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatJournalWeek(year, week, entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "ISO year (defaults to current)")
	cmd.Flags().IntVar(&week, "week", 0, "ISO week (defaults to current)")

	return cmd
}

func newJournalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Journal.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted journal entry")
			return nil
		},
	}
}
