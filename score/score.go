// Package score reads music written as YAML files.
//
// A score sets up the initial performance context and holds one music node.
// Every node has exactly one content (note, rest, line, chord, forever or
// repeat with times) and optional transforms:
//
//	name: Frère Jacques
//	bpm: 120
//	player: fancy
//	key: G major
//	music:
//	  line:
//	    - note: C4 1/4
//	    - rest: 1/8
//	    - chord: [{note: E4 half}, {note: G4 half}]
//	    - forever: {note: C2 1/4}
//	      take: 2
package score

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/vsariola/motif"
	"github.com/vsariola/motif/perf"
	"gopkg.in/yaml.v3"
)

const DefaultBPM = 120

var ErrInvalidScore = errors.New("invalid score")

type (
	Score struct {
		Name       string `yaml:"name"`
		BPM        int64  `yaml:"bpm,omitempty"`
		Player     string `yaml:"player,omitempty"`
		Instrument string `yaml:"instrument,omitempty"`
		Key        string `yaml:"key,omitempty"`
		Volume     *int   `yaml:"volume,omitempty"`
		Music      Node   `yaml:"music"`
	}

	// Node is one music expression. The transforms are applied in the
	// order of the fields, the controls last.
	Node struct {
		Note    string `yaml:"note,omitempty"` // pitch and duration, "C4 1/4"
		Rest    string `yaml:"rest,omitempty"` // duration
		Line    []Node `yaml:"line,omitempty"`
		Chord   []Node `yaml:"chord,omitempty"`
		Forever *Node  `yaml:"forever,omitempty"`
		Repeat  *Node  `yaml:"repeat,omitempty"`
		Times   int    `yaml:"times,omitempty"`

		Grace      string `yaml:"grace,omitempty"` // interval and fraction, "-1 1/8"
		Trill      string `yaml:"trill,omitempty"` // interval and duration or count, "1 1/32", "1 8x"
		Roll       string `yaml:"roll,omitempty"`  // duration or count
		Invert     bool   `yaml:"invert,omitempty"`
		Retrograde bool   `yaml:"retrograde,omitempty"`
		Reverse    bool   `yaml:"reverse,omitempty"`
		Take       string `yaml:"take,omitempty"`
		Drop       string `yaml:"drop,omitempty"`

		Key        string   `yaml:"key,omitempty"`
		Player     string   `yaml:"player,omitempty"`
		Phrase     []string `yaml:"phrase,omitempty"`
		Instrument string   `yaml:"instrument,omitempty"`
		Transpose  int      `yaml:"transpose,omitempty"`
		Tempo      string   `yaml:"tempo,omitempty"`

		line int
	}
)

var nodeFields = map[string]bool{
	"note": true, "rest": true, "line": true, "chord": true, "forever": true,
	"repeat": true, "times": true, "grace": true, "trill": true, "roll": true,
	"invert": true, "retrograde": true, "reverse": true, "take": true,
	"drop": true, "key": true, "player": true, "phrase": true,
	"instrument": true, "transpose": true, "tempo": true,
}

// UnmarshalYAML decodes the node and remembers its line. Unknown keys are
// rejected here since a decoder's KnownFields does not reach custom
// unmarshalers.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: music node must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if k := value.Content[i].Value; !nodeFields[k] {
			return fmt.Errorf("line %d: unknown field %q in music node", value.Content[i].Line, k)
		}
	}
	type plain Node
	if err := value.Decode((*plain)(n)); err != nil {
		return err
	}
	n.line = value.Line
	return nil
}

// Load reads the score file at path.
func Load(path string) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading score failed: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return s, nil
}

// Parse decodes a score, rejecting unknown fields.
func Parse(data []byte) (*Score, error) {
	var s Score
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing score failed: %w", err)
	}
	return &s, nil
}

// Context returns the performance context the score starts from.
func (s *Score) Context() (perf.Context[motif.Pitch], error) {
	ctx := perf.DefaultContext[motif.Pitch]()
	bpm := s.BPM
	if bpm == 0 {
		bpm = DefaultBPM
	}
	if bpm < 0 {
		return ctx, fmt.Errorf("bpm %d: %w", bpm, ErrInvalidScore)
	}
	ctx = ctx.WithTempo(perf.Metro(bpm, motif.Quarter))
	if s.Player != "" {
		ctx = ctx.WithPlayer(s.Player)
	}
	if s.Instrument != "" {
		in, err := motif.ParseInstrument(s.Instrument)
		if err != nil {
			return ctx, fmt.Errorf("instrument: %w", err)
		}
		ctx = ctx.WithInstrument(in)
	}
	if s.Key != "" {
		k, err := motif.ParseKeySig(s.Key)
		if err != nil {
			return ctx, fmt.Errorf("key: %w", err)
		}
		ctx = ctx.WithKey(k)
	}
	if s.Volume != nil {
		if *s.Volume < 0 || *s.Volume > 127 {
			return ctx, fmt.Errorf("volume %d out of range 0 to 127: %w", *s.Volume, ErrInvalidScore)
		}
		ctx = ctx.WithVolume(motif.Volume(*s.Volume))
	}
	return ctx, nil
}

// Build returns the music of the score with its starting context.
func (s *Score) Build() (motif.Music[motif.Pitch], perf.Context[motif.Pitch], error) {
	ctx, err := s.Context()
	if err != nil {
		return nil, ctx, err
	}
	m, err := s.Music.Build("music")
	if err != nil {
		return nil, ctx, err
	}
	return m, ctx, nil
}

// Perform builds and performs the score.
func (s *Score) Perform() (perf.Performance, error) {
	m, ctx, err := s.Build()
	if err != nil {
		return perf.Performance{}, err
	}
	return perf.PerformWithContext(m, ctx), nil
}
