package cli

import (
	"errors"
	"fmt"

	"github.com/TheIllusionist93/DOCTOR/internal/config"
	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/TheIllusionist93/DOCTOR/internal/importer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const builtinProject = "built-in DOCTOR project"

// dateValue is a pflag.Value holding a YYYY-MM-DD date.
type dateValue struct {
	date *domain.Date
}

var _ pflag.Value = (*dateValue)(nil)

func (v *dateValue) String() string {
	if v.date == nil {
		return ""
	}
	return v.date.String()
}

func (v *dateValue) Set(s string) error {
	d, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	v.date = &d
	return nil
}

func (v *dateValue) Type() string { return "date" }

// rootOptions are the persistent flags shared by every command. Flag
// defaults come from the environment config.
type rootOptions struct {
	projectFile string
	today       dateValue
	logLevel    string
}

func newRootOptions(cfg config.Config) *rootOptions {
	return &rootOptions{
		projectFile: cfg.ProjectFile,
		today:       dateValue{date: cfg.Today},
		logLevel:    cfg.LogLevel,
	}
}

func (o *rootOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.projectFile, "config", "c", o.projectFile, "Project file (YAML or JSON); empty uses the built-in project")
	flags.Var(&o.today, "today", "Compute progress as of this date (YYYY-MM-DD)")
	flags.StringVar(&o.logLevel, "log-level", o.logLevel, "Log level (debug, info, warn, error)")
}

func (o *rootOptions) applyLogLevel(cmd *cobra.Command, log *logrus.Logger) error {
	if log == nil || !cmd.Flags().Changed("log-level") {
		return nil
	}
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)
	return nil
}

func (o *rootOptions) source() string {
	if o.projectFile == "" {
		return builtinProject
	}
	return o.projectFile
}

func (o *rootOptions) loadFile() (*importer.ProjectFile, error) {
	if o.projectFile == "" {
		return importer.DefaultProjectFile(), nil
	}
	pf, err := importer.LoadProjectFile(o.projectFile)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", o.projectFile, err)
	}
	return pf, nil
}

// loadProject reads, validates and converts the project file, logging lint
// warnings, and pins "today" when --today or SHOOTWALL_TODAY is set.
func (o *rootOptions) loadProject(log logrus.FieldLogger) (*importer.Project, error) {
	pf, err := o.loadFile()
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateProjectFile(pf); len(errs) > 0 {
		return nil, fmt.Errorf("invalid project file %s:\n%w", o.source(), errors.Join(errs...))
	}
	for _, w := range importer.LintProjectFile(pf) {
		log.WithField("project", o.source()).Warn(w)
	}

	project, err := importer.Convert(pf)
	if err != nil {
		return nil, err
	}
	if o.today.date != nil {
		now := o.today.date.Time()
		project.Request.Now = &now
	}
	return project, nil
}
