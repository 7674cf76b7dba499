package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/vsariola/motif/midi"
	"github.com/vsariola/motif/midi/rtmidi"
)

func NewPlayCommand(opts *RootOptions) *cobra.Command {
	var port string
	var minLatency, maxLatency time.Duration
	cmd := &cobra.Command{
		Use:   "play <score.yml>",
		Short: "Play a score on a MIDI output",
		Long: `Play a score in real time on a MIDI output. Infinite scores play until
interrupted with Ctrl-C; every sounding note is stopped before exiting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := opts.Preferences
			if !cmd.Flags().Changed("port") {
				port = prefs.Port
			}
			if !cmd.Flags().Changed("min-latency") {
				minLatency = prefs.MinLatency
			}
			if !cmd.Flags().Changed("max-latency") {
				maxLatency = prefs.MaxLatency
			}
			if err := checkLatencies(minLatency, maxLatency); err != nil {
				return err
			}
			_, p, err := opts.perform(args[0])
			if err != nil {
				return err
			}
			mc := rtmidi.NewContext()
			defer mc.Close()
			out, err := mc.Open(port)
			if err != nil {
				return err
			}
			player := midi.NewPlayer(out)
			player.MinLatency, player.MaxLatency = minLatency, maxLatency
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			done := make(chan error, 1)
			go func() {
				done <- player.Play(ctx, midi.LiveStream(p, nil))
			}()
			if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "prefix of the MIDI output name")
	cmd.Flags().DurationVar(&minLatency, "min-latency", midi.DefaultMinLatency, "shortest sleep between messages")
	cmd.Flags().DurationVar(&maxLatency, "max-latency", midi.DefaultMaxLatency, "longest sleep between messages")
	return cmd
}

func NewPortsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List the MIDI outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mc := rtmidi.NewContext()
			defer mc.Close()
			names, err := mc.Outputs()
			if err != nil {
				return err
			}
			def, _ := rtmidi.SelectPort(names, "")
			for i, n := range names {
				mark := " "
				if i == def {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, n)
			}
			return nil
		},
	}
}
