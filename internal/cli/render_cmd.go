package cli

import (
	"fmt"

	"github.com/TheIllusionist93/DOCTOR/internal/cli/formatter"
	"github.com/TheIllusionist93/DOCTOR/internal/contract"
	"github.com/TheIllusionist93/DOCTOR/internal/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	output string
	font   string
}

func newRenderCmd(app *App, opts *rootOptions) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the progress wallpaper (PNG or SVG)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file; .svg writes vector output (default "+render.DefaultOutput+")")
	cmd.Flags().StringVar(&flags.font, "font", "", "TTF/OTF font file for labels")

	return cmd
}

func runRender(cmd *cobra.Command, app *App, opts *rootOptions, flags renderFlags) error {
	log := app.log()

	project, err := opts.loadProject(log)
	if err != nil {
		return err
	}

	snap, err := app.snapshotUseCase().Build(cmd.Context(), project.Request)
	if err != nil {
		return err
	}
	logMilestoneWarnings(log, snap)

	output := firstNonEmpty(flags.output, app.Config.Output, project.Output, render.DefaultOutput)
	font := firstNonEmpty(flags.font, app.Config.FontPath, project.Style.FontPath)

	canvas, err := render.NewCanvas(output, snap.Canvas.Width, snap.Canvas.Height, font)
	if err != nil {
		return err
	}
	render.Paint(canvas, snap, project.Style, render.Caption(snap))
	if err := render.WriteFile(output, canvas); err != nil {
		return fmt.Errorf("writing wallpaper: %w", err)
	}

	log.WithFields(logrus.Fields{
		"run_id":    snap.RunID,
		"output":    output,
		"completed": snap.Progress.CompletedCount,
		"total":     snap.Total(),
	}).Info("wallpaper rendered")

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRendered(output, snap))
	return nil
}

func logMilestoneWarnings(log logrus.FieldLogger, snap *contract.Snapshot) {
	for _, w := range snap.Warnings {
		log.WithFields(logrus.Fields{
			"run_id":    snap.RunID,
			"milestone": w.Milestone.Label,
			"date":      w.Milestone.Date.String(),
		}).Warn("milestone skipped: " + w.Reason)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
