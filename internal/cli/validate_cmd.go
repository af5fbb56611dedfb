package cli

import (
	"fmt"

	"github.com/TheIllusionist93/DOCTOR/internal/cli/formatter"
	"github.com/TheIllusionist93/DOCTOR/internal/importer"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a project file for errors and suspicious entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			check := *opts
			if len(args) == 1 {
				check.projectFile = args[0]
			}

			pf, err := check.loadFile()
			if err != nil {
				return err
			}

			errs := importer.ValidateProjectFile(pf)
			warnings := importer.LintProjectFile(pf)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(check.source(), errs, warnings))

			if len(errs) > 0 {
				return fmt.Errorf("%s has %d validation error(s)", check.source(), len(errs))
			}
			return nil
		},
	}
}
