package main

import (
	"flag"
	"io"
	"os"

	"github.com/iamNilotpal/checksum/config"
	"github.com/iamNilotpal/checksum/internal/core/services/engine"
	"github.com/iamNilotpal/checksum/internal/core/services/workflow"
	"github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/iamNilotpal/checksum/pkg/fs"
	"github.com/iamNilotpal/checksum/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	debug := flag.Bool("debug", false, "enable development logging")
	flag.Parse()

	log := logger.New("checksum-verifier", *debug)
	code := run(log, *configPath, *debug, os.Stdin, os.Stdout)
	log.Sync()
	os.Exit(code)
}

// run wires the engine and workflow and returns the process exit code.
func run(log *zap.SugaredLogger, configPath string, debug bool, in io.Reader, out io.Writer) int {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			if ve := errors.AsValidationError(err); ve != nil {
				log.Errorw("invalid configuration", "field", ve.Field, "value", ve.Value, "error", ve.Err)
			} else {
				log.Errorw("load configuration error", "path", configPath, "error", err)
			}
			return exitCode(err)
		}
		cfg = loaded
	}
	if !debug {
		log = logger.WithLevel(log, cfg.LogLevel)
	}

	eng, err := engine.New(cfg.EngineOptions(), fs.NewOsFs(), log)
	if err != nil {
		log.Errorw("create engine error", "error", err)
		return exitCode(err)
	}

	if _, err := workflow.New(eng, in, out, log).Run(); err != nil {
		if ce := errors.AsChecksumError(err); ce != nil {
			log.Errorw(
				"checksum verification failed",
				"category", ce.Category, "operation", ce.Operation, "path", ce.Path, "error", ce.Err,
			)
		} else {
			log.Errorw("checksum verification failed", "error", err)
		}
		return exitCode(err)
	}

	return 0
}

// exitCode maps an error to a process exit code. Recoverable errors exit 0.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if ce := errors.AsChecksumError(err); ce != nil && ce.IsRecoverable() {
		return 0
	}
	return 1
}
