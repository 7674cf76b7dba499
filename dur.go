package motif

import (
	"fmt"
	"strings"
)

// Dur is a duration measured in whole notes.
type Dur = Ratio

var (
	Longa        = Int(4)
	Brevis       = Int(2)
	Whole        = Int(1)
	Half         = NewRatio(1, 2)
	Quarter      = NewRatio(1, 4)
	Eighth       = NewRatio(1, 8)
	Sixteenth    = NewRatio(1, 16)
	ThirtySecond = NewRatio(1, 32)
	SixtyFourth  = NewRatio(1, 64)

	DottedWhole        = NewRatio(3, 2)
	DottedHalf         = NewRatio(3, 4)
	DottedQuarter      = NewRatio(3, 8)
	DottedEighth       = NewRatio(3, 16)
	DottedSixteenth    = NewRatio(3, 32)
	DottedThirtySecond = NewRatio(3, 64)

	DoubleDottedHalf    = NewRatio(7, 8)
	DoubleDottedQuarter = NewRatio(7, 16)
	DoubleDottedEighth  = NewRatio(7, 32)
)

var durNames = map[string]Dur{
	"longa":                 Longa,
	"brevis":                Brevis,
	"whole":                 Whole,
	"half":                  Half,
	"quarter":               Quarter,
	"eighth":                Eighth,
	"sixteenth":             Sixteenth,
	"thirty-second":         ThirtySecond,
	"sixty-fourth":          SixtyFourth,
	"dotted-whole":          DottedWhole,
	"dotted-half":           DottedHalf,
	"dotted-quarter":        DottedQuarter,
	"dotted-eighth":         DottedEighth,
	"dotted-sixteenth":      DottedSixteenth,
	"dotted-thirty-second":  DottedThirtySecond,
	"double-dotted-half":    DoubleDottedHalf,
	"double-dotted-quarter": DoubleDottedQuarter,
	"double-dotted-eighth":  DoubleDottedEighth,
}

// ParseDur accepts a named duration ("quarter", "dotted-eighth") or a
// fraction of a whole note ("3/8").
func ParseDur(s string) (Dur, error) {
	if d, ok := durNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	d, err := ParseRatio(s)
	if err != nil {
		return Dur{}, err
	}
	if d.Sign() < 0 {
		return Dur{}, fmt.Errorf("negative duration %v", d)
	}
	return d, nil
}

// Double returns twice the duration, e.g. a half note for a quarter note.
func Double(d Dur) Dur { return d.MulInt(2) }

// Halve returns half the duration.
func Halve(d Dur) Dur { return d.DivInt(2) }

// Dotted returns the duration extended by half of itself.
func Dotted(d Dur) Dur { return d.Mul(NewRatio(3, 2)) }
