package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhamidi/barrage/config"
	"github.com/dhamidi/barrage/duration"
	"github.com/dhamidi/barrage/payload"
	"github.com/dhamidi/barrage/runner"
	"github.com/dhamidi/barrage/ticker"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"
)

type runSettings struct {
	every  time.Duration
	jitter float64
	count  int
	data   jsontext.Value
}

func newRunCmd() *cobra.Command {
	every := duration.NewFlag(0)
	var dataText string
	var jitter float64
	var count int
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Print the payload every time the jittered interval elapses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := runSettings{
				every:  every.Duration(),
				jitter: jitter,
				count:  count,
			}

			flags := cmd.Flags()
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				if err := settings.merge(cfg, flags.Changed); err != nil {
					return err
				}
				if !flags.Changed("verbose") && !flags.Changed("log-file") && (cfg.Log.Verbosity != 0 || cfg.Log.File != "") {
					configureLogging(cfg.Log.Verbosity, cfg.Log.File)
				}
			}

			if flags.Changed("data") || settings.data == nil {
				if dataText == "" {
					return errors.New("no payload: set --data or data in the config file")
				}
				data, err := payload.Parse(dataText)
				if err != nil {
					return fmt.Errorf("--data: %w", err)
				}
				settings.data = data
			}
			if settings.every <= 0 {
				return errors.New("no interval: set --every or every in the config file")
			}
			if err := config.ValidateJitter(settings.jitter); err != nil {
				return fmt.Errorf("--jitter: %w", err)
			}
			if settings.count < 0 {
				return fmt.Errorf("--count: must not be negative, got %d", settings.count)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			tk := ticker.New(settings.every, settings.jitter)
			defer tk.Stop()

			out := cmd.OutOrStdout()
			if _, err := runner.Run(ctx, tk, settings.data, out, runner.Options{Count: settings.count}); err != nil {
				return err
			}
			if errors.Is(ctx.Err(), context.Canceled) {
				fmt.Fprintln(out, "cancelled")
			}
			return nil
		},
	}

	cmd.Flags().Var(every, "every", `how often to print the payload (e.g. "500ms"; units: s, ms, us, ns)`)
	cmd.Flags().StringVarP(&dataText, "data", "d", "", "JSON payload to print on every tick")
	cmd.Flags().Float64Var(&jitter, "jitter", 0.5, "each interval is every*(U+jitter) with U uniform in [0, 1)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many ticks (0 means run until interrupted)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML or JSON file with every, jitter, count and data")

	return cmd
}

// merge copies values from cfg that were not set explicitly on the command
// line.
func (s *runSettings) merge(cfg *config.Config, changed func(name string) bool) error {
	if !changed("every") && cfg.Every != "" {
		d, err := cfg.Interval()
		if err != nil {
			return fmt.Errorf("every: %w", err)
		}
		s.every = d
	}
	if !changed("jitter") && cfg.Jitter != nil {
		s.jitter = *cfg.Jitter
	}
	if !changed("count") && cfg.Count != 0 {
		s.count = cfg.Count
	}
	if !changed("data") && cfg.Data != nil {
		data, err := payload.FromValue(cfg.Data)
		if err != nil {
			return fmt.Errorf("data: %w", err)
		}
		s.data = data
	}
	return nil
}
