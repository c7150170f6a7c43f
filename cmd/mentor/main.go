package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/resonanceresearch/mentor/internal/catalog"
	"github.com/resonanceresearch/mentor/internal/cli"
	"github.com/resonanceresearch/mentor/internal/db"
	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/followup"
	"github.com/resonanceresearch/mentor/internal/interview"
	"github.com/resonanceresearch/mentor/internal/llm"
	"github.com/resonanceresearch/mentor/internal/openalex"
	"github.com/resonanceresearch/mentor/internal/plan"
	"github.com/resonanceresearch/mentor/internal/repository"
	"github.com/resonanceresearch/mentor/internal/suggest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; real env wins.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.mentor/mentor.db
	dbPath := os.Getenv("MENTOR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".mentor", "mentor.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Question and resource catalogs: ./questions.yaml in the working
	// directory first (development), then ~/.mentor/.
	questions, err := catalog.LoadQuestions(catalogPath("MENTOR_QUESTIONS", "questions.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using the built-in fallback question\n", err)
	}
	resources, err := catalog.LoadResources(catalogPath("MENTOR_RESOURCES", "resources.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; resource catalog disabled\n", err)
	}

	// Wire repositories and the unit of work.
	stateRepo := repository.NewSQLiteStateRepo(database)
	subRepo := repository.NewSQLiteSubmissionRepo(database)
	keywordRepo := repository.NewSQLiteKeywordCacheRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Model client. Without an API key every model-backed feature degrades
	// to its deterministic fallback.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewChatClient(llmCfg, observer)

	// Suggestion pipeline: model chips with bibliographic keyword fallback.
	keywordSource := openalex.NewClient(keywordRepo)
	suggestSvc := suggest.NewService(llmClient, keywordSource)
	pipeline := suggest.NewPipeline(suggest.NewCache(), suggestSvc)

	ctrl := interview.NewController(
		interview.Config{
			SessionID:    envOr("MENTOR_SESSION", "default"),
			UserID:       os.Getenv("MENTOR_USER"),
			ProgressBase: progressBase(),
			LogW:         os.Stderr,
		},
		questions,
		stateRepo,
		subRepo,
		uow,
		followup.NewService(llmClient),
	)
	ctrl.Load(context.Background())

	// Warm the suggestion cache for the first questions before the UI asks.
	pipeline.PrefetchAhead(context.Background(), ctrl.Questions(), ctrl.ContextAnswers(), -1, 3)

	app := &cli.App{
		Interview:   ctrl,
		Chips:       pipeline,
		Planner:     plan.NewExporter(llmClient),
		Submissions: subRepo,
		Resources:   resources,
		LLM:         llmClient,
		LLMConfig:   llmCfg,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// catalogPath resolves a catalog file: explicit env var, ./name in the
// working directory, then ~/.mentor/name.
func catalogPath(envVar, name string) string {
	if p := os.Getenv(envVar); p != "" {
		return p
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".mentor", name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func progressBase() domain.ProgressBase {
	if os.Getenv("MENTOR_PROGRESS_BASE") == string(domain.ProgressAllQuestions) {
		return domain.ProgressAllQuestions
	}
	return domain.ProgressCatalogOnly
}
