package main

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"propbind/internal/logger"
)

var envKeyReplacer = strings.NewReplacer("-", "_", ".", "_")

func newLogger(settings *viper.Viper) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:    settings.GetString("log-level"),
		Encoding: settings.GetString("log-encoding"),
	})
}
