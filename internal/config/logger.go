package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// GetLogger returns the shared process logger.
func GetLogger() *logrus.Logger {
	return logg
}

// ConfigureLogger applies env settings to the shared logger.
func ConfigureLogger(env Env) *logrus.Logger {
	if lvl, err := logrus.ParseLevel(strings.ToLower(env.LogLevel)); err == nil {
		logg.SetLevel(lvl)
	}
	if env.GinMode == "release" {
		logg.SetFormatter(&logrus.JSONFormatter{})
	}
	return logg
}
