package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/resonanceresearch/mentor/internal/cli/formatter"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the current session and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("refusing to reset without --force in a non-interactive shell")
				}
				confirmed := false
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title("Delete the current session?").
							Description("All answers will be lost. Archived submissions are kept.").
							Affirmative("Delete").
							Negative("Cancel").
							Value(&confirmed),
					),
				).WithTheme(mentorHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			app.Interview.Reset(context.Background())
			fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
