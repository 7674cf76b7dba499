package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vsariola/motif/perf"
	"gopkg.in/yaml.v3"
)

var eventFormats = []string{"text", "yaml", "json", "msgpack"}

func NewEventsCommand(opts *RootOptions) *cobra.Command {
	var count int
	var format, tmpl string
	cmd := &cobra.Command{
		Use:   "events <score.yml>",
		Short: "Print the performed events of a score",
		Long: `Print the events of a performed score. --template formats each event
with a text/template, with the sprig functions available, e.g.
'{{.Start}} {{.Pitch | printf "%3d"}}'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := opts.perform(args[0])
			if err != nil {
				return err
			}
			if count > 0 {
				p = p.Take(count)
			}
			events, err := p.Collect()
			if err != nil {
				return fmt.Errorf("%v: %w, limit it with -n or --take", args[0], err)
			}
			if tmpl != "" {
				return writeTemplate(cmd.OutOrStdout(), tmpl, events)
			}
			return writeEvents(cmd.OutOrStdout(), format, events)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "print at most n events")
	cmd.Flags().StringVar(&format, "format", "text", fmt.Sprintf("output format %v", eventFormats))
	cmd.Flags().StringVar(&tmpl, "template", "", "text/template applied to every event")
	return cmd
}

func writeEvents(w io.Writer, format string, events []perf.Event) error {
	switch format {
	case "text":
		for _, e := range events {
			if _, err := fmt.Fprintln(w, e); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(events); err != nil {
			return fmt.Errorf("encoding yaml failed: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(events)
	}
	return fmt.Errorf("invalid format %q: must be one of %v", format, eventFormats)
}

func writeTemplate(w io.Writer, text string, events []perf.Event) error {
	t, err := template.New("event").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return fmt.Errorf("parsing template failed: %w", err)
	}
	for _, e := range events {
		if err := t.Execute(w, e); err != nil {
			return fmt.Errorf("executing template failed: %w", err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
