package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates the command logger. Debug output is enabled when verbose is set.
func New(verbose bool, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}
