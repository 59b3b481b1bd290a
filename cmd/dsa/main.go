package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "dsa",
		Usage:   "self-adjusting search tree playground",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"DSA_LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			logLvl := new(slog.LevelVar)
			if err := logLvl.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLvl,
			})))
			return nil
		},
		Commands: []*cli.Command{
			cmdSplay,
			cmdBST,
		},
	}
	return app.Run(args)
}
