package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resonanceresearch/mentor/internal/cli/formatter"
)

func newSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Archive the current session as a submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := app.Interview.SubmitSession(context.Background())
			if err != nil {
				return fmt.Errorf("archiving session: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived as %s\n", formatter.Bold(sub.Key))
			return nil
		},
	}
}

func newSubmissionsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "submissions [key]",
		Short: "List archived submissions, or show one by key",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) > 0 {
				sub, err := app.Submissions.GetByKey(ctx, args[0])
				if err != nil {
					return fmt.Errorf("looking up submission %q: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n%s\n",
					formatter.Bold(sub.Key),
					sub.UserID,
					formatter.Dim(formatter.HumanTimestamp(sub.CreatedAt)),
					sub.Payload)
				return nil
			}

			subs, err := app.Submissions.List(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing submissions: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubmissions(subs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of submissions to list")

	return cmd
}
