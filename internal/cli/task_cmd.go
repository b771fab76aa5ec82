package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mlindqvist/focal/internal/cli/formatter"
	"github.com/mlindqvist/focal/internal/dates"
	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/service"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app),
		newTaskReopenCmd(app),
		newTaskArchiveCmd(app),
		newTaskRemoveCmd(app),
		newTaskUndoCmd(app),
		newTaskBlockCmd(app),
		newTaskUnblockCmd(app),
	)

	return cmd
}

// parseDueFlag accepts a 2006-01-02 date or a natural-language phrase like
// "tomorrow" or "next friday".
func parseDueFlag(due string, now time.Time) (*time.Time, error) {
	if due == "" {
		return nil, nil
	}
	if d, ok := dates.ParseDate(due); ok {
		return &d, nil
	}
	if _, d, ok := dates.ExtractDateFromText(due, now); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("invalid due date %q (use YYYY-MM-DD or a phrase like \"next friday\")", due)
}

func newTaskAddCmd(app *App) *cobra.Command {
	var due, priority, urgency, emotional, energy, project, parent, description string
	var categories, tags []string
	var estimate float64
	var importance int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			t := &domain.Task{
				Title:           strings.Join(args, " "),
				Description:     description,
				Tags:            tags,
				Priority:        domain.Priority(priority),
				Urgency:         domain.Urgency(urgency),
				EmotionalWeight: domain.EmotionalWeight(emotional),
				EnergyRequired:  domain.EnergyLevel(energy),
				Importance:      importance,
				EstimatedMin:    estimate,
			}

			dueDate, err := parseDueFlag(due, time.Now())
			if err != nil {
				return err
			}
			t.DueDate = dueDate

			if project != "" {
				projectID, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				t.ProjectID = &projectID
			}
			if parent != "" {
				parentID, err := resolveTaskID(ctx, app, parent)
				if err != nil {
					return err
				}
				t.ParentTaskID = &parentID
			}
			for _, c := range categories {
				categoryID, err := resolveCategoryID(ctx, app, c)
				if err != nil {
					return err
				}
				t.CategoryIDs = append(t.CategoryIDs, categoryID)
			}

			if err := app.Tasks.Add(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Added task %s (%s)\n", t.Title, t.ID[:8])
			if t.DueDate != nil && due == "" {
				fmt.Printf("Due date picked up from the title: %s\n", dates.FormatDate(*t.DueDate))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD or natural language)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&urgency, "urgency", "", "Urgency (today|tomorrow|week|month|someday)")
	cmd.Flags().StringVar(&emotional, "emotional", "", "Emotional weight (easy|neutral|stressful|dreading)")
	cmd.Flags().StringVar(&energy, "energy", "", "Energy required (low|medium|high)")
	cmd.Flags().Float64Var(&estimate, "estimate", 0, "Estimated minutes")
	cmd.Flags().IntVar(&importance, "importance", 0, "Importance (1-10)")
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent task ID")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Category name or ID (repeatable)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&description, "desc", "", "Description")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all, completed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}

			if !all {
				filtered := tasks[:0]
				for _, t := range tasks {
					if t.Archived {
						continue
					}
					if t.Completed != completed {
						continue
					}
					filtered = append(filtered, t)
				}
				tasks = filtered
			}

			fmt.Println(formatter.FormatTaskList(tasks, time.Now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed and archived tasks")
	cmd.Flags().BoolVar(&completed, "completed", false, "Show completed tasks instead of open ones")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
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
			fmt.Println(formatter.FormatTaskDetail(t, time.Now()))

			if len(t.DependsOn) > 0 && !t.Completed {
				ok, err := app.Deps.CanComplete(ctx, id)
				if err == nil && !ok {
					fmt.Println(formatter.Dim("Blocked: open dependencies remain. Completing anyway is allowed."))
				}
			}
			return nil
		},
	}
	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, due, priority, urgency, emotional, energy, project, description string
	var estimate float64
	var importance int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update task fields",
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

			flags := cmd.Flags()
			if flags.Changed("title") {
				t.Title = title
			}
			if flags.Changed("due") {
				if due == "" {
					t.DueDate = nil
				} else {
					dueDate, err := parseDueFlag(due, time.Now())
					if err != nil {
						return err
					}
					t.DueDate = dueDate
				}
			}
			if flags.Changed("priority") {
				t.Priority = domain.Priority(priority)
			}
			if flags.Changed("urgency") {
				t.Urgency = domain.Urgency(urgency)
			}
			if flags.Changed("emotional") {
				t.EmotionalWeight = domain.EmotionalWeight(emotional)
			}
			if flags.Changed("energy") {
				t.EnergyRequired = domain.EnergyLevel(energy)
			}
			if flags.Changed("estimate") {
				t.EstimatedMin = estimate
			}
			if flags.Changed("importance") {
				t.Importance = importance
			}
			if flags.Changed("desc") {
				t.Description = description
			}
			if flags.Changed("project") {
				if project == "" {
					t.ProjectID = nil
				} else {
					projectID, err := resolveProjectID(ctx, app, project)
					if err != nil {
						return err
					}
					t.ProjectID = &projectID
				}
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (empty to clear)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&urgency, "urgency", "", "Urgency (today|tomorrow|week|month|someday)")
	cmd.Flags().StringVar(&emotional, "emotional", "", "Emotional weight (easy|neutral|stressful|dreading)")
	cmd.Flags().StringVar(&energy, "energy", "", "Energy required (low|medium|high)")
	cmd.Flags().Float64Var(&estimate, "estimate", 0, "Estimated minutes")
	cmd.Flags().IntVar(&importance, "importance", 0, "Importance (1-10)")
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID (empty to clear)")
	cmd.Flags().StringVar(&description, "desc", "", "Description")

	return cmd
}

// runBulk resolves each argument and applies a single-id or many-id service
// call, printing per-item failures without aborting the batch.
func runBulk(
	ctx context.Context,
	app *App,
	args []string,
	verb string,
	single func(ctx context.Context, id string) error,
	many func(ctx context.Context, ids []string) (service.BulkReport, error),
) error {
	ids := make([]string, 0, len(args))
	for _, a := range args {
		id, err := resolveTaskID(ctx, app, a)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	if len(ids) == 1 {
		if err := single(ctx, ids[0]); err != nil {
			return err
		}
		fmt.Printf("%s task %s\n", verb, ids[0][:8])
		return nil
	}

	report, err := many(ctx, ids)
	if err != nil {
		return err
	}
	fmt.Printf("%s %d task(s)\n", verb, len(report.Succeeded))
	for _, f := range report.Failures {
		fmt.Printf("  failed %s: %v\n", f.ID, f.Err)
	}
	if !report.AllSucceeded() {
		return fmt.Errorf("%d of %d failed", len(report.Failures), len(ids))
	}
	return nil
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>...",
		Short: "Mark tasks as completed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulk(context.Background(), app, args, "Completed",
				app.Tasks.Complete, app.Tasks.CompleteMany)
		},
	}
}

func newTaskReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <id>",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Reopen(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Reopened task %s\n", id[:8])
			return nil
		},
	}
}

func newTaskArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Archived task %s\n", id[:8])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>...",
		Short: "Delete tasks (and their subtasks)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBulk(context.Background(), app, args, "Deleted",
				app.Tasks.Delete, app.Tasks.DeleteMany)
			if err == nil {
				fmt.Println("Use `focal task undo <id>` within 5 minutes to restore.")
			}
			return err
		},
	}
}

func newTaskUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <id>",
		Short: "Restore a recently deleted task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Undo(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Restored task %s\n", args[0][:min(8, len(args[0]))])
			return nil
		},
	}
}

func newTaskBlockCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "block <id> <blocker-id>",
		Short: "Mark a task as blocked by another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			blockerID, err := resolveTaskID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Deps.AddDependency(ctx, taskID, blockerID); err != nil {
				return err
			}
			fmt.Printf("Task %s now depends on %s\n", taskID[:8], blockerID[:8])
			return nil
		},
	}
}

func newTaskUnblockCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unblock <id> <blocker-id>",
		Short: "Remove a dependency between two tasks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			blockerID, err := resolveTaskID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Deps.RemoveDependency(ctx, taskID, blockerID); err != nil {
				return err
			}
			fmt.Printf("Task %s no longer depends on %s\n", taskID[:8], blockerID[:8])
			return nil
		},
	}
}
