package cmd

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/remeh/sizedwaitgroup"
	"github.com/spf13/cobra"
	"github.com/vsariola/motif/midi"
)

func NewRenderCommand(opts *RootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render <score.yml>...",
		Short: "Write scores as Standard MIDI Files",
		Long: `Perform each score and write it as a Standard MIDI File next to the
score, with the extension changed to .mid. Infinite scores need --take.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) > 1 {
				return errors.New("-o can only be used with a single score")
			}
			outs := make([]string, len(args))
			errs := make([]error, len(args))
			wg := sizedwaitgroup.New(runtime.NumCPU())
			for i, path := range args {
				wg.Add()
				go func() {
					defer wg.Done()
					outs[i], errs[i] = opts.render(path, output)
				}()
			}
			wg.Wait()
			for i, path := range args {
				if errs[i] == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%v -> %v\n", path, outs[i])
				}
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}

// render writes the score at path as a MIDI file and returns the file name.
func (o *RootOptions) render(path, output string) (string, error) {
	_, p, err := o.perform(path)
	if err != nil {
		return "", err
	}
	if p.IsInfinite() {
		return "", fmt.Errorf("%v: the score never ends, cut it with --take", path)
	}
	if output == "" {
		output = withExtension(path, ".mid")
	}
	if err := midi.WriteFile(output, p, nil); err != nil {
		return "", fmt.Errorf("%v: %w", path, err)
	}
	return output, nil
}
