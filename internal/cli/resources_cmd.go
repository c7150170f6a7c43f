package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resonanceresearch/mentor/internal/cli/formatter"
	"github.com/resonanceresearch/mentor/internal/domain"
)

func newResourcesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resources [query]",
		Short: "Browse the resource catalog",
		Long: `List the static resource catalog (funding programs, core facilities,
reading lists). An optional query filters by case-insensitive substring
match on title, URL, tags and notes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			matched := make([]domain.Resource, 0, len(app.Resources))
			for _, r := range app.Resources {
				if r.Matches(query) {
					matched = append(matched, r)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResources(matched))
			return nil
		},
	}
}
