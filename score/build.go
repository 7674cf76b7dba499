package score

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vsariola/motif"
)

// nodeError tags an error with the path and line of the node causing it.
type nodeError struct {
	path string
	line int
	err  error
}

func (e *nodeError) Error() string {
	return fmt.Sprintf("%s (line %d): %v", e.path, e.line, e.err)
}

func (e *nodeError) Unwrap() error { return e.err }

// Build converts the node into music. path names the node in errors, e.g.
// "music.line[2]".
func (n *Node) Build(path string) (motif.Music[motif.Pitch], error) {
	m, err := n.content(path)
	if err != nil {
		return nil, err
	}
	if m, err = n.transform(m); err != nil {
		return nil, &nodeError{path, n.line, err}
	}
	if m, err = n.controls(m); err != nil {
		return nil, &nodeError{path, n.line, err}
	}
	return m, nil
}

func (n *Node) content(path string) (motif.Music[motif.Pitch], error) {
	count := 0
	for _, set := range []bool{n.Note != "", n.Rest != "", n.Line != nil, n.Chord != nil, n.Forever != nil, n.Repeat != nil} {
		if set {
			count++
		}
	}
	if count != 1 {
		return nil, &nodeError{path, n.line, fmt.Errorf("node needs exactly one of note, rest, line, chord, forever or repeat: %w", ErrInvalidScore)}
	}
	if n.Times != 0 && n.Repeat == nil {
		return nil, &nodeError{path, n.line, fmt.Errorf("times without repeat: %w", ErrInvalidScore)}
	}
	switch {
	case n.Note != "":
		m, err := parseNote(n.Note)
		if err != nil {
			return nil, &nodeError{path, n.line, err}
		}
		return m, nil
	case n.Rest != "":
		d, err := motif.ParseDur(n.Rest)
		if err != nil {
			return nil, &nodeError{path, n.line, err}
		}
		return motif.Rest[motif.Pitch](d), nil
	case n.Line != nil:
		ms, err := buildAll(n.Line, path+".line")
		if err != nil {
			return nil, err
		}
		return motif.Line(ms...), nil
	case n.Chord != nil:
		ms, err := buildAll(n.Chord, path+".chord")
		if err != nil {
			return nil, err
		}
		return motif.Chord(ms...), nil
	case n.Forever != nil:
		m, err := n.Forever.Build(path + ".forever")
		if err != nil {
			return nil, err
		}
		return motif.Forever(m), nil
	}
	m, err := n.Repeat.Build(path + ".repeat")
	if err != nil {
		return nil, err
	}
	if n.Times < 0 {
		return nil, &nodeError{path, n.line, fmt.Errorf("negative times %d: %w", n.Times, ErrInvalidScore)}
	}
	return motif.Times(m, n.Times), nil
}

func buildAll(nodes []Node, path string) ([]motif.Music[motif.Pitch], error) {
	ret := make([]motif.Music[motif.Pitch], len(nodes))
	for i := range nodes {
		m, err := nodes[i].Build(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		ret[i] = m
	}
	return ret, nil
}

func (n *Node) transform(m motif.Music[motif.Pitch]) (motif.Music[motif.Pitch], error) {
	if n.Grace != "" {
		f := strings.Fields(n.Grace)
		if len(f) != 2 {
			return nil, fmt.Errorf("grace %q: want interval and fraction: %w", n.Grace, ErrInvalidScore)
		}
		i, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, fmt.Errorf("grace %q: %w", n.Grace, err)
		}
		r, err := motif.ParseRatio(f[1])
		if err != nil {
			return nil, fmt.Errorf("grace %q: %w", n.Grace, err)
		}
		if m, err = motif.GraceNote(m, motif.Interval(i), r); err != nil {
			return nil, err
		}
	}
	if n.Trill != "" {
		interval, opts, ok := strings.Cut(strings.TrimSpace(n.Trill), " ")
		if !ok {
			return nil, fmt.Errorf("trill %q: want interval and duration or count: %w", n.Trill, ErrInvalidScore)
		}
		i, err := strconv.Atoi(interval)
		if err != nil {
			return nil, fmt.Errorf("trill %q: %w", n.Trill, err)
		}
		o, err := parseTrillOptions(opts)
		if err != nil {
			return nil, err
		}
		if m, err = motif.Trill(m, motif.Interval(i), o); err != nil {
			return nil, err
		}
	}
	if n.Roll != "" {
		o, err := parseTrillOptions(n.Roll)
		if err != nil {
			return nil, err
		}
		if m, err = motif.Roll(m, o); err != nil {
			return nil, err
		}
	}
	if n.Invert {
		m = motif.Invert(m)
	}
	if n.Retrograde {
		m = motif.Retrograde(m)
	}
	if n.Reverse {
		if motif.Duration(m).IsInfinite() {
			return nil, fmt.Errorf("cannot reverse infinite music: %w", ErrInvalidScore)
		}
		m = motif.Reverse(m)
	}
	if n.Take != "" {
		d, err := motif.ParseDur(n.Take)
		if err != nil {
			return nil, fmt.Errorf("take: %w", err)
		}
		m = motif.Take(m, d)
	}
	if n.Drop != "" {
		d, err := motif.ParseDur(n.Drop)
		if err != nil {
			return nil, fmt.Errorf("drop: %w", err)
		}
		m = motif.Drop(m, d)
	}
	return m, nil
}

func (n *Node) controls(m motif.Music[motif.Pitch]) (motif.Music[motif.Pitch], error) {
	if n.Key != "" {
		k, err := motif.ParseKeySig(n.Key)
		if err != nil {
			return nil, err
		}
		m = motif.WithKey(k, m)
	}
	if n.Player != "" {
		m = motif.WithPlayer(n.Player, m)
	}
	if n.Phrase != nil {
		attrs := make([]motif.PhraseAttribute, len(n.Phrase))
		for i, s := range n.Phrase {
			a, err := ParsePhraseAttribute(s)
			if err != nil {
				return nil, err
			}
			attrs[i] = a
		}
		m = motif.WithPhrase(attrs, m)
	}
	if n.Instrument != "" {
		in, err := motif.ParseInstrument(n.Instrument)
		if err != nil {
			return nil, err
		}
		m = motif.WithInstrument(in, m)
	}
	if n.Transpose != 0 {
		m = motif.Trans(motif.Interval(n.Transpose), m)
	}
	if n.Tempo != "" {
		r, err := motif.ParseRatio(n.Tempo)
		if err != nil {
			return nil, fmt.Errorf("tempo: %w", err)
		}
		if r.Sign() <= 0 {
			return nil, fmt.Errorf("tempo %v must be positive: %w", r, ErrInvalidScore)
		}
		m = motif.WithTempo(r, m)
	}
	return m, nil
}

// parseNote reads a pitch and an optional duration, a quarter note by
// default.
func parseNote(s string) (motif.Music[motif.Pitch], error) {
	f := strings.Fields(s)
	if len(f) == 0 || len(f) > 2 {
		return nil, fmt.Errorf("note %q: want pitch and duration: %w", s, ErrInvalidScore)
	}
	p, err := motif.ParsePitch(f[0])
	if err != nil {
		return nil, err
	}
	d := motif.Quarter
	if len(f) == 2 {
		if d, err = motif.ParseDur(f[1]); err != nil {
			return nil, err
		}
	}
	return motif.Note(d, p), nil
}

// parseTrillOptions reads a sub-note duration or a count written as "8x".
func parseTrillOptions(s string) (motif.TrillOptions, error) {
	s = strings.TrimSpace(s)
	if c, ok := strings.CutSuffix(s, "x"); ok {
		n, err := strconv.Atoi(c)
		if err != nil || n <= 0 {
			return motif.TrillOptions{}, fmt.Errorf("trill count %q: %w", s, ErrInvalidScore)
		}
		return motif.TrillCount(n), nil
	}
	d, err := motif.ParseDur(s)
	if err != nil {
		return motif.TrillOptions{}, fmt.Errorf("trill duration %q: %w", s, err)
	}
	return motif.TrillDur(d), nil
}
