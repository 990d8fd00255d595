package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New erstellt einen logrus-Logger für Diagnosen. Verbose erzwingt Debug-Level,
// ein ungültiges Level fällt auf Warn zurück.
func New(out io.Writer, level string, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "msg",
		},
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.WarnLevel
	}
	if verbose {
		parsed = logrus.DebugLevel
	}
	log.SetLevel(parsed)

	return log
}

// Discard liefert einen Logger, der nichts ausgibt.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
