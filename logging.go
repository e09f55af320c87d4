package dashboard

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the process logger: timestamped JSON lines on stdout.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log
}
