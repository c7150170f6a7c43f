package cli

import (
	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/interview"
	"github.com/resonanceresearch/mentor/internal/llm"
	"github.com/resonanceresearch/mentor/internal/plan"
	"github.com/resonanceresearch/mentor/internal/repository"
	"github.com/resonanceresearch/mentor/internal/suggest"
	"github.com/spf13/cobra"
)

// App holds the wired services used by CLI commands and the TUI.
type App struct {
	Interview   *interview.Controller
	Chips       *suggest.Pipeline
	Planner     *plan.Exporter
	Submissions repository.SubmissionRepo
	Resources   []domain.Resource
	LLM         llm.Client
	LLMConfig   llm.Config

	// IsInteractive reports whether stdin is a terminal. The root command
	// only starts the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "mentor" command and registers all
// subcommands against the provided App. Running it without a subcommand
// starts the interactive interview.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "mentor",
		Short: "Guided research-planning interview",
		Long: `Mentor walks you through a short interview about your research
program and synthesizes a 12-month action plan from your answers.
Run without arguments to start or resume the interactive interview.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return cmd.Help()
			}
			return runInterview(app)
		},
	}

	root.AddCommand(
		newStatusCmd(app),
		newPlanCmd(app),
		newResourcesCmd(app),
		newSubmitCmd(app),
		newSubmissionsCmd(app),
		newResetCmd(app),
	)

	return root
}
