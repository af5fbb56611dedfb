package logger

import (
	"io"
	"strings"

	"github.com/TheIllusionist93/DOCTOR/internal/config"
	"github.com/sirupsen/logrus"
)

// New builds the process logger. Production environments get JSON lines;
// everything else gets text, colored only when colors is set (callers pass
// whether out is a terminal).
func New(cfg config.Config, out io.Writer, colors bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.Warnf("Invalid log level '%s', defaulting to 'info'", cfg.LogLevel)
	} else {
		log.SetLevel(level)
	}

	if cfg.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     colors,
			DisableColors:   !colors,
		})
	}

	return log
}
