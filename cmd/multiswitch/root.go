package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/multiswitch/internal/config"
	"github.com/hy4ri/multiswitch/internal/i18n"
	"github.com/hy4ri/multiswitch/internal/logging"
	"github.com/hy4ri/multiswitch/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type rootOptions struct {
	configPath string
	variant    string
	align      string
	gap        int
	padding    int
	language   string
	logFile    string
	logLevel   string
	noMouse    bool
	notify     bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{})
}

func newRootCmdWith(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiswitch",
		Short: "Animated switch lists in the terminal",
		Long: `multiswitch - A gallery of segmented controls and tab bars whose indicator
slides between options as they are measured, pressed or forced from outside.

Configuration lives in ~/.config/multiswitch/config.yaml; flags override it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd.Flags(), opts, cfg); err != nil {
				return err
			}
			return runApp(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/multiswitch/config.yaml)")
	f.StringVar(&opts.variant, "variant", "", "segmented or tabs")
	f.StringVar(&opts.align, "align", "", "left, center or right")
	f.IntVar(&opts.gap, "gap", 0, "cells between tabs")
	f.IntVar(&opts.padding, "padding", 0, "cells on each side of a tab label")
	f.StringVarP(&opts.language, "language", "l", "", "label language (en, de)")
	f.StringVar(&opts.logFile, "log-file", "", "write a JSON debug log to this file")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	f.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")
	f.BoolVar(&opts.notify, "notify", false, "send a desktop notification on every change")

	cmd.AddCommand(newInitCmd(), newVersionCmd())
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(fs *pflag.FlagSet, opts *rootOptions, cfg *config.Config) error {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "variant":
			cfg.UI.Variant = opts.variant
		case "align":
			cfg.UI.Align = opts.align
		case "gap":
			cfg.UI.Gap = opts.gap
		case "padding":
			cfg.UI.Padding = opts.padding
		case "language":
			cfg.UI.Language = opts.language
		case "log-file":
			cfg.Log.Path = opts.logFile
		case "log-level":
			cfg.Log.Level = opts.logLevel
		case "no-mouse":
			cfg.UI.Mouse = !opts.noMouse
		case "notify":
			cfg.UI.Notify = opts.notify
		}
	})
	return cfg.Validate()
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config) error {
	log, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logging.Close()

	tr, err := i18n.New(cfg.UI.Language)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(cfg, tr, log)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	log.Info("starting", "version", version, "variant", cfg.UI.Variant, "language", tr.Language().String())

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		log.Error("program failed", slog.Any("error", err))
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "multiswitch version %s\n", version)
		},
	}
}
