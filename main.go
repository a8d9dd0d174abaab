package main

import (
	"context"
	"fmt"
	"os"

	"tapchess/src/engine"
	"tapchess/src/engine/notnil"
	"tapchess/src/logx"
	"tapchess/ui/gui"
	"tapchess/ui/gui/gbase/gconf"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := (&cli.Command{
		Name:  "tapchess",
		Usage: "click-to-move chess board",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "fen",
				Usage: "start from a FEN position instead of the standard start",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config file",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "log level: debug/info/warn/error",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "show TPS and FEN overlay",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := gconf.NewGUIConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("error read config: %w", err)
			}
			if lvl := c.String("log"); lvl != "" {
				cfg.LogLevel = lvl
			}
			if c.Bool("debug") {
				cfg.Debug = true
			}
			logger := logx.NewLogx(logx.GetLoggerLevelByString(cfg.LogLevel))

			var rules engine.Rules
			if fen := c.String("fen"); fen != "" {
				e, err := notnil.NewFromFEN(fen)
				if err != nil {
					return err
				}
				rules = e
			} else {
				rules = notnil.New()
			}

			g, err := gui.NewGUI(rules, cfg, logger)
			if err != nil {
				// missing sprite or font: nothing to play without them
				logger.Fatalf("error load assets: %v", err)
			}
			return g.Run()
		},
	}).Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
