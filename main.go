package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mpdwaves/internal/app"
	"github.com/llehouerou/mpdwaves/internal/config"
	"github.com/llehouerou/mpdwaves/internal/errmsg"
	"github.com/llehouerou/mpdwaves/internal/mpd"
	"github.com/llehouerou/mpdwaves/internal/session"
)

var version = "dev"

const dialTimeout = 5 * time.Second

// options holds the flags that are not config keys.
type options struct {
	ConfigFile string
	Commands   []string
	LogFile    string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "mpdwaves [flags]",
		Short: "Terminal client for the Music Player Daemon",
		Long: `mpdwaves mirrors an MPD server's queue and player state in a
terminal layout described by the config file.`,
		Example: `  # Connect to the default server
  mpdwaves

  # Connect to a unix socket
  mpdwaves --address /run/mpd/socket

  # Run raw protocol commands and print the responses
  mpdwaves -C status -C "playlistinfo 0"`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigFile, cmd.Flags())
			if err != nil {
				return errmsg.Wrap(errmsg.OpLoadConfig, err)
			}

			logger, closeLog, err := newLogger(opts.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			if len(opts.Commands) > 0 {
				return runCommands(cmd.Context(), cfg, opts.Commands, logger)
			}
			return runUI(cmd.Context(), cfg, logger)
		},
	}

	config.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/mpdwaves/config.toml)")
	rootCmd.Flags().StringArrayVarP(&opts.Commands, "cmd", "C", nil, "run an mpd command, print the response and quit (repeatable)")
	rootCmd.Flags().StringVar(&opts.LogFile, "log", "", "write debug logs to this file")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger logs to path at debug level, or nowhere when path is empty.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func dial(ctx context.Context, addr string, logger *slog.Logger) (*mpd.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	c, err := mpd.Dial(ctx, addr)
	if err != nil {
		return nil, errmsg.WrapWith(errmsg.OpConnect, addr, err)
	}
	c.OnAck = func(ack *mpd.AckError) {
		logger.Warn(errmsg.Format(errmsg.OpRunCommand, ack), "code", ack.Code, "index", ack.Index)
	}
	logger.Debug("connected", "address", addr, "version", c.Version())
	return c, nil
}

func runCommands(ctx context.Context, cfg *config.Config, cmds []string, logger *slog.Logger) error {
	c, err := dial(ctx, cfg.Address, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	for _, line := range cmds {
		if err := c.CommandTo(os.Stdout, line); err != nil {
			return errmsg.WrapWith(errmsg.OpRunCommand, line, err)
		}
	}
	return nil
}

func runUI(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	daemon, err := dial(ctx, cfg.Address, logger)
	if err != nil {
		return err
	}
	defer daemon.Close()

	// Idle blocks its connection, so it gets one of its own.
	watcher, err := dial(ctx, cfg.Address, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	m, err := app.New(daemon, watcher, app.Options{
		Layout:           cfg.Layout,
		Session:          session.Options{Cycle: cfg.Cycle, JumpLines: cfg.JumpLines},
		SearchFields:     cfg.SearchFields,
		SeekSecs:         cfg.SeekSecs,
		ClearQueryOnPlay: cfg.ClearQueryOnPlay,
		UPS:              cfg.UPS,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errmsg.Wrap(errmsg.OpRunUI, err)
	}
	if fm, ok := final.(app.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
