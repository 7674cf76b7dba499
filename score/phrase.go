package score

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vsariola/motif"
)

var ratioAttributes = map[string]func(motif.Ratio) motif.PhraseAttribute{
	"accent":      func(r motif.Ratio) motif.PhraseAttribute { return motif.Accent{Ratio: r} },
	"crescendo":   func(r motif.Ratio) motif.PhraseAttribute { return motif.Crescendo{Ratio: r} },
	"diminuendo":  func(r motif.Ratio) motif.PhraseAttribute { return motif.Diminuendo{Ratio: r} },
	"ritardando":  func(r motif.Ratio) motif.PhraseAttribute { return motif.Ritardando{Ratio: r} },
	"accelerando": func(r motif.Ratio) motif.PhraseAttribute { return motif.Accelerando{Ratio: r} },
	"staccato":    func(r motif.Ratio) motif.PhraseAttribute { return motif.Staccato{Ratio: r} },
	"legato":      func(r motif.Ratio) motif.PhraseAttribute { return motif.Legato{Ratio: r} },
	"slurred":     func(r motif.Ratio) motif.PhraseAttribute { return motif.Slurred{Ratio: r} },
}

// ParsePhraseAttribute reads a phrase attribute written as its name and an
// optional argument: "crescendo 1/2", "loud ff", "loudness 90",
// "trill 1/16", "trill 4x", "diatonic 2", "pedal", "arpeggio-up".
func ParsePhraseAttribute(s string) (motif.PhraseAttribute, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(s), " ")
	name, arg = strings.ToLower(name), strings.TrimSpace(arg)
	if f, ok := ratioAttributes[name]; ok {
		r, err := motif.ParseRatio(arg)
		if err != nil {
			return nil, fmt.Errorf("phrase %q: %w", s, err)
		}
		return f(r), nil
	}
	switch name {
	case "loud":
		l, err := motif.ParseStdLoudness(arg)
		if err != nil {
			return nil, fmt.Errorf("phrase %q: %w", s, err)
		}
		return motif.Loud{Loudness: l}, nil
	case "loudness":
		v, err := strconv.Atoi(arg)
		if err != nil || v < 0 || v > 127 {
			return nil, fmt.Errorf("phrase %q: volume must be 0 to 127: %w", s, ErrInvalidScore)
		}
		return motif.Loudness{Volume: motif.Volume(v)}, nil
	case "trill":
		o, err := parseTrillOptions(arg)
		if err != nil {
			return nil, fmt.Errorf("phrase %q: %w", s, err)
		}
		return motif.TrillOrnament{Options: o}, nil
	case "diatonic":
		d, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("phrase %q: %w", s, err)
		}
		return motif.DiatonicTrans{Degrees: d}, nil
	}
	if arg != "" {
		return nil, fmt.Errorf("phrase %q: %v takes no argument: %w", s, name, ErrInvalidScore)
	}
	for a := motif.Tenuto; a <= motif.Stopped; a++ {
		if a.String() == name {
			return a, nil
		}
	}
	for o := motif.Mordent; o <= motif.ArpeggioDown; o++ {
		if o.String() == name {
			return o, nil
		}
	}
	return nil, fmt.Errorf("unknown phrase attribute %q: %w", s, ErrInvalidScore)
}
