package cli

import (
	"fmt"

	"github.com/TheIllusionist93/DOCTOR/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show schedule progress and milestones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := opts.loadProject(app.log())
			if err != nil {
				return err
			}

			snap, err := app.snapshotUseCase().Build(cmd.Context(), project.Request)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(snap))
			return nil
		},
	}
}
