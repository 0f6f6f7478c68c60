// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pxlab runs psychophysics experiment designs and inspects
// the registered stimulus types.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/pxlab/base/logx"
	"cogentcore.org/pxlab/config"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by the commands.
type app struct {
	configFile  string
	verbose     bool
	veryVerbose bool
	quiet       bool

	config *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "pxlab",
		Short:        "pxlab presents psychophysics experiment designs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "the config file to use (default "+config.DefaultFile+")")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "show info log messages")
	pf.BoolVar(&a.veryVerbose, "vv", false, "show all log messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only show errors")
	root.AddCommand(newRunCmd(a), newTypesCmd(), newParamsCmd())
	return root
}

// setup sets the log level from the flags and the config file, and
// reads the config file.
func (a *app) setup() error {
	cfg, err := config.Open(a.configFile)
	if err != nil {
		return err
	}
	a.config = cfg
	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		slog.Warn("invalid log level in config", "level", cfg.Log.Level)
	}
	logx.UserLevel = level
	if a.verbose || a.veryVerbose || a.quiet {
		logx.UserLevel = logx.LevelFromFlags(a.veryVerbose, a.verbose, a.quiet)
	}
	logx.SetDefaultLogger()
	return nil
}
