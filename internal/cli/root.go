package cli

import (
	"github.com/mlindqvist/focal/internal/breakdown"
	"github.com/mlindqvist/focal/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks      service.TaskService
	Deps       service.DependencyService
	Focus      service.FocusService
	Projects   service.ProjectService
	Categories service.CategoryService
	Journal    service.JournalService
	Exchange   service.ExchangeService
	Breakdown  *breakdown.Service
}

// NewRootCmd creates the top-level "focal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "focal",
		Short: "ADHD-friendly task planner",
	}

	root.AddCommand(
		newTaskCmd(app),
		newFocusCmd(app),
		newProjectCmd(app),
		newCategoryCmd(app),
		newJournalCmd(app),
		newBreakdownCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
