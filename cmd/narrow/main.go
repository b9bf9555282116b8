package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/vito/narrow/pkg/config"
	"github.com/vito/narrow/pkg/ioctx"
)

// Flags holds the global flags.
type Flags struct {
	Debug      bool
	ConfigPath string
	Workers    int
	MaxNodes   int
	Strict     bool
	NoColor    bool
}

func main() {
	var flags Flags

	rootCmd := &cobra.Command{
		Use:   "narrow",
		Short: "Flow-sensitive type narrowing and overload resolution",
		Long: `narrow analyzes the function bodies of a program file. It tracks the
narrowed type of every variable at every point of control flow, checks
switches for exhaustiveness, and resolves overloaded and generic calls.`,
		Example: `  # Check a program
  narrow check shapes.yaml

  # Machine-readable output, warnings fail
  narrow check --json --strict shapes.yaml

  # Show the environment at every node of one function
  narrow dump shapes.yaml getArea

  # Serve JSON-RPC on stdio
  narrow serve`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if flags.Debug {
				level = slog.LevelDebug
			}
			setupLogging(os.Stderr, level)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to narrow.toml (searched upward from the working directory if not specified)")
	rootCmd.PersistentFlags().IntVar(&flags.Workers, "workers", 0, "Number of functions analyzed in parallel")
	rootCmd.PersistentFlags().IntVar(&flags.MaxNodes, "max-nodes", 0, "Skip functions with more control-flow nodes than this")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(checkCmd(&flags))
	rootCmd.AddCommand(dumpCmd(&flags))
	rootCmd.AddCommand(serveCmd(&flags))

	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, level slog.Level) {
	var handler slog.Handler
	if ioctx.IsTerminal(w) {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}
	slog.SetDefault(slog.New(handler))
}

// loadConfig resolves the configuration: narrow.toml, then the
// environment, then flags that were set explicitly.
func loadConfig(cmd *cobra.Command, flags *Flags) (*config.Config, error) {
	var cfg *config.Config
	if flags.ConfigPath != "" {
		loaded, err := config.Load(flags.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path, found, err := config.Find(cwd)
		if err != nil {
			return nil, err
		}
		if path != "" {
			slog.Debug("loaded config", "path", path)
		}
		cfg = found
	}

	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}

	pflags := cmd.Flags()
	if pflags.Changed("workers") {
		cfg.Workers = flags.Workers
	}
	if pflags.Changed("max-nodes") {
		cfg.MaxNodes = flags.MaxNodes
	}
	if pflags.Changed("strict") {
		cfg.Strict = flags.Strict
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// only an explicit --debug overrides [log] level
	if !flags.Debug {
		if level, err := cfg.LogLevel(); err == nil && level != slog.LevelInfo {
			setupLogging(os.Stderr, level)
		}
	}
	return cfg, nil
}
