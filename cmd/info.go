package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/spf13/cobra"
	"github.com/vsariola/motif"
	"github.com/vsariola/motif/perf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")).Width(14)
)

func NewInfoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <score.yml>",
		Short: "Summarize the performance of a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, p, err := opts.perform(args[0])
			if err != nil {
				return err
			}
			sum, err := perf.Summarize(p)
			if err != nil {
				return fmt.Errorf("%v: %w, limit it with --take", args[0], err)
			}
			name := s.Name
			if name == "" {
				name = args[0]
			}
			writeSummary(cmd.OutOrStdout(), name, sum)
			return nil
		},
	}
}

func writeSummary(w io.Writer, name string, s perf.Summary) {
	row := func(label string, value any) {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), fmt.Sprint(value)))
	}
	fmt.Fprintln(w, titleStyle.Render(name))
	row("notes", humanize.Comma(int64(s.Events)))
	if s.Events == 0 {
		return
	}
	length := time.Duration(s.End.Float64() * float64(time.Second))
	row("length", fmt.Sprintf("%.3f s (%v)", s.End.Float64(), durafmt.Parse(length).LimitFirstN(2)))
	row("pitch range", fmt.Sprintf("%v to %v", s.MinPitch.Pitch(), s.MaxPitch.Pitch()))
	row("mean pitch", fmt.Sprintf("%.1f", s.MeanPitch))
	row("mean volume", fmt.Sprintf("%.1f", s.MeanVolume))
	row("mean note", fmt.Sprintf("%.3f s", s.MeanDur))
	names := make([]string, len(s.Instruments))
	for i, in := range s.Instruments {
		names[i] = in.String()
	}
	row("instruments", strings.Join(names, ", "))
}

func NewInstrumentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "instruments",
		Short: "List the General MIDI instruments",
		Long:  "List the General MIDI instruments with the names scores can refer to them by.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			lower := cases.Lower(language.English)
			for _, in := range motif.GMInstruments() {
				alias := strings.ReplaceAll(lower.String(in.String()), " ", "-")
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-26s %s\n", in.Program, in, alias)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "     %-26s %s\n", motif.Percussion, "percussion")
		},
	}
}
