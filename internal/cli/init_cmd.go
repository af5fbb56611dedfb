package cli

import (
	"fmt"
	"os"

	"github.com/TheIllusionist93/DOCTOR/internal/cli/formatter"
	"github.com/TheIllusionist93/DOCTOR/internal/importer"
	"github.com/spf13/cobra"
)

const defaultProjectPath = "shootwall.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter project file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultProjectPath
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			data, err := importer.DefaultProjectFile().Marshal()
			if err != nil {
				return fmt.Errorf("encoding project file: %w", err)
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("✔ Created"), formatter.Bold(path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
