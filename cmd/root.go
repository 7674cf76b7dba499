// Package cmd holds the commands of the motif binary.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vsariola/motif"
	"github.com/vsariola/motif/perf"
	"github.com/vsariola/motif/score"
	"github.com/vsariola/motif/version"
)

// RootOptions holds the flags shared by every command.
type RootOptions struct {
	LogLevel    string
	Take        string
	Preferences Preferences
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Preferences: MakePreferences()}
	cmd := &cobra.Command{
		Use:           "motif",
		Short:         "Perform music written as YAML scores",
		Long:          "motif performs YAML scores and writes them as MIDI files or plays them on a MIDI output.",
		Version:       version.VersionOrHash,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			if err := opts.Preferences.YmlError; err != nil {
				slog.Warn("ignoring invalid preferences", "error", err)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Take, "take", "", "perform only the given number of whole notes, e.g. 8 or 3/2")
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewEventsCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewInstrumentsCommand())
	cmd.AddCommand(NewPortsCommand())
	cmd.AddCommand(NewVersionCommand())
	return cmd
}

// perform loads the score and performs it, cut to --take if given.
func (o *RootOptions) perform(path string) (*score.Score, perf.Performance, error) {
	s, err := score.Load(path)
	if err != nil {
		return nil, perf.Performance{}, err
	}
	m, ctx, err := s.Build()
	if err != nil {
		return nil, perf.Performance{}, fmt.Errorf("%v: %w", path, err)
	}
	if s.Player == "" && o.Preferences.Player != "" {
		ctx = ctx.WithPlayer(o.Preferences.Player)
	}
	if o.Take != "" {
		d, err := motif.ParseDur(o.Take)
		if err != nil {
			return nil, perf.Performance{}, fmt.Errorf("invalid --take: %w", err)
		}
		m = motif.Take(m, d)
	}
	slog.Debug("performing score", "path", path, "name", s.Name)
	return s, perf.PerformWithContext(m, ctx), nil
}

func withExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Describe())
		},
	}
}

// Execute runs the command line and returns the exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "motif: %v\n", err)
		return 1
	}
	return 0
}
