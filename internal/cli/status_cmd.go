package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/resonanceresearch/mentor/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	var checklist bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show session progress and model availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.Interview.Checklist()
			answered := 0
			for _, item := range items {
				if item.Done {
					answered++
				}
			}

			online := false
			if app.LLMConfig.Enabled() {
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				online = app.LLM.Available(ctx)
				cancel()
			}

			status := formatter.SessionStatus{
				SessionID:  app.Interview.SessionID(),
				Progress:   app.Interview.Progress(),
				Questions:  len(app.Interview.Questions()),
				Answered:   answered,
				Finished:   app.Interview.Finished(),
				HasPlan:    app.Interview.PlanText() != "",
				LLMEnabled: app.LLMConfig.Enabled(),
				LLMOnline:  online,
				Model:      app.LLMConfig.Model,
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessionStatus(status))
			if checklist {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChecklist(items))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checklist, "checklist", false, "Also print the per-question checklist")

	return cmd
}
