package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resonanceresearch/mentor/internal/cli/formatter"
	"github.com/resonanceresearch/mentor/internal/plan"
)

func newPlanCmd(app *App) *cobra.Command {
	var preview bool
	var raw bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Synthesize an action plan from the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			answers := app.Interview.ContextAnswers()

			if preview || !app.LLMConfig.Enabled() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(plan.Preview(answers)))
				if !preview {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No model configured; this is the draft preview. Set OPENAI_API_KEY for a full plan."))
				}
				return nil
			}

			exporter := app.Planner
			if raw {
				exporter = exporter.WithRawOutput()
			}

			var stop func()
			if app.IsInteractive == nil || app.IsInteractive() {
				stop = formatter.StartSpinner("Synthesizing plan…")
			}
			text, err := exporter.Export(ctx, answers, app.Resources)
			if stop != nil {
				stop()
			}
			if err != nil {
				return fmt.Errorf("generating plan: %w", err)
			}

			app.Interview.SetPlanText(ctx, text)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(text))
			return nil
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "Show the deterministic draft preview without calling the model")
	cmd.Flags().BoolVar(&raw, "raw", false, "Skip condensing and print the model output as is")

	return cmd
}
