package cli

import (
	"io"

	"github.com/TheIllusionist93/DOCTOR/internal/app"
	"github.com/TheIllusionist93/DOCTOR/internal/config"
	"github.com/TheIllusionist93/DOCTOR/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need: the snapshot use case, runtime config
// and the process logger.
type App struct {
	Snapshots service.SnapshotService
	Config    config.Config
	Logger    *logrus.Logger

	// BuildSnapshot overrides Snapshots when set.
	BuildSnapshot app.SnapshotUseCase
}

// NewRootCmd creates the top-level "shootwall" command and registers all
// subcommands against the provided App. Without a subcommand it renders.
func NewRootCmd(app *App) *cobra.Command {
	opts := newRootOptions(app.Config)

	root := &cobra.Command{
		Use:           "shootwall",
		Short:         "Shooting-day progress wallpaper generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.applyLogLevel(cmd, app.Logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, opts, renderFlags{})
		},
	}
	opts.register(root)

	root.AddCommand(
		newRenderCmd(app, opts),
		newStatusCmd(app, opts),
		newDaysCmd(app, opts),
		newValidateCmd(app, opts),
		newInitCmd(),
	)

	return root
}

func (a *App) log() *logrus.Logger {
	if a.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return a.Logger
}
