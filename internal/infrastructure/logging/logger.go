package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Configure sets the process-wide level and JSON output. Call once at startup.
func Configure(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	return nil
}

// NewModuleLogger returns a logger tagged with the component name.
func NewModuleLogger(module string) logrus.FieldLogger {
	return logrus.WithField("module", module)
}
