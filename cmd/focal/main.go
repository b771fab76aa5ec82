package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mlindqvist/focal/internal/breakdown"
	"github.com/mlindqvist/focal/internal/cli"
	"github.com/mlindqvist/focal/internal/cli/formatter"
	"github.com/mlindqvist/focal/internal/db"
	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/llm"
	"github.com/mlindqvist/focal/internal/repository"
	"github.com/mlindqvist/focal/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.focal/focal.db
	dbPath := os.Getenv("FOCAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".focal", "focal.db")
	}

	// Single-user install by default; FOCAL_USER switches profiles.
	session := service.Session{UserID: domain.CoalesceStr(os.Getenv("FOCAL_USER"), "local")}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	journalRepo := repository.NewSQLiteJournalRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Deleted-task retention for undo
	undo := service.NewUndoBuffer()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	undo.StartSweeper(ctx)

	taskSvc := service.NewTaskService(taskRepo, depRepo, session, undo)

	app := &cli.App{
		Tasks:      taskSvc,
		Deps:       service.NewDependencyService(taskRepo, depRepo, session),
		Focus:      service.NewFocusService(taskSvc),
		Projects:   service.NewProjectService(projectRepo, session),
		Categories: service.NewCategoryService(categoryRepo, session),
		Journal:    service.NewJournalService(journalRepo, session),
		Exchange:   service.NewExchangeService(taskRepo, projectRepo, categoryRepo, journalRepo, depRepo, uow, session),
	}

	// Plain output when not writing to a terminal.
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	formatter.SetColorEnabled(interactive)

	// Wire LLM-backed breakdown (keyword fallback covers the disabled case)
	llmCfg := llm.LoadConfig()
	var llmClient llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewChatClient(llmCfg, observer)
	}
	app.Breakdown = breakdown.NewService(llmClient)

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
