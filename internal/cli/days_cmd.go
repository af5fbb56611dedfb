package cli

import (
	"fmt"

	"github.com/TheIllusionist93/DOCTOR/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDaysCmd(app *App, opts *rootOptions) *cobra.Command {
	var remaining bool

	cmd := &cobra.Command{
		Use:   "days",
		Short: "List every scheduled shooting day",
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

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDays(snap, project.Request.Schedule, remaining))
			return nil
		},
	}

	cmd.Flags().BoolVar(&remaining, "remaining", false, "Only list days not yet shot")

	return cmd
}
