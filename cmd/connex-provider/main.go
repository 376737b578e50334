package main

import (
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var levels = map[string]slog.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
	"crit":  log.LevelCrit,
}

var (
	LogLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log verbosity: trace, debug, info, warn, error or crit",
		Value:   "info",
		EnvVars: []string{"CONNEX_PROVIDER_LOG_LEVEL"},
	}
	ConfigFlag = &cli.PathFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Usage:    "path to the provider config file",
		Required: true,
		EnvVars:  []string{"CONNEX_PROVIDER_CONFIG"},
	}
	VerboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "dump full definitions",
	}
)

func setupLog(ctx *cli.Context) error {
	lvl, ok := levels[ctx.String(LogLevelFlag.Name)]
	if !ok {
		return errors.Errorf("unknown log level %q", ctx.String(LogLevelFlag.Name))
	}
	useColor := isatty.IsTerminal(os.Stderr.Fd())
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, useColor)))
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "connex-provider",
		Usage:                "inspect contract imports and build Connex event criteria",
		Flags:                []cli.Flag{LogLevelFlag},
		Before:               setupLog,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "abi",
				Usage:     "list the methods and events of a contract import",
				ArgsUsage: "<import.json>",
				Flags:     []cli.Flag{VerboseFlag},
				Action:    runABI,
			},
			{
				Name:   "describe",
				Usage:  "describe every configured contract on the configured chain",
				Flags:  []cli.Flag{ConfigFlag},
				Action: runDescribe,
			},
			{
				Name:      "criteria",
				Usage:     "build an event criteria set as JSON",
				ArgsUsage: "topic <slot> <value> [and|or <slot> <value>]...",
				Action:    runCriteria,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Crit("application failed", "err", err)
	}
}
