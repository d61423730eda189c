package logger

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func init() {
	envDebug := os.Getenv("FACTORYGEN_DEBUG")
	debug := len(envDebug) > 0 && !(strings.ToLower(envDebug) == "disable" || strings.ToLower(envDebug) == "false")
	Init(debug)
}

// Init rebuilds the global logger; called again from main once the -debug
// flag is parsed.
func Init(debug bool) {
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	l, err := config.Build()
	if err != nil {
		log.Fatal(err)
	}

	zap.ReplaceGlobals(l)
	logger = zap.S()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

func Debugf(template string, args ...interface{}) {
	logger.Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	logger.Infof(template, args...)
}

func Errorf(template string, args ...interface{}) {
	logger.Errorf(template, args...)
}
