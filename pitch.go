package motif

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PitchClass is a note name with up to two sharps or flats. Enharmonic
// classes (e.g. Cs and Df) are distinct values with the same distance from
// C.
type PitchClass int

const (
	Cff PitchClass = iota
	Cf
	C
	Cs
	Css
	Dff
	Df
	D
	Ds
	Dss
	Eff
	Ef
	E
	Es
	Ess
	Fff
	Ff
	F
	Fs
	Fss
	Gff
	Gf
	G
	Gs
	Gss
	Aff
	Af
	A
	As
	Ass
	Bff
	Bf
	B
	Bs
	Bss
	numPitchClasses
)

var pitchClassNames = [numPitchClasses]string{
	"Cff", "Cf", "C", "Cs", "Css",
	"Dff", "Df", "D", "Ds", "Dss",
	"Eff", "Ef", "E", "Es", "Ess",
	"Fff", "Ff", "F", "Fs", "Fss",
	"Gff", "Gf", "G", "Gs", "Gss",
	"Aff", "Af", "A", "As", "Ass",
	"Bff", "Bf", "B", "Bs", "Bss",
}

// naturals holds the semitone distance of each natural note from C, in the
// order the pitch classes are declared.
var naturals = [7]int{0, 2, 4, 5, 7, 9, 11}

// sharps spells every semitone of an octave, used when converting an
// absolute pitch back into a Pitch.
var sharps = [12]PitchClass{C, Cs, D, Ds, E, F, Fs, G, Gs, A, As, B}

// DistanceFromC returns the number of semitones from C to the class, which
// can be negative (Cf, Cff) or beyond the octave (Bs, Bss).
func (pc PitchClass) DistanceFromC() Interval {
	letter, accidental := int(pc)/5, int(pc)%5-2
	return Interval(naturals[letter] + accidental)
}

func (pc PitchClass) IsEnharmonic(o PitchClass) bool {
	return pc.DistanceFromC() == o.DistanceFromC()
}

func (pc PitchClass) String() string {
	if pc < 0 || pc >= numPitchClasses {
		return "PitchClass(" + strconv.Itoa(int(pc)) + ")"
	}
	return pitchClassNames[pc]
}

// ParsePitchClass accepts "Cs", "Df", "Bff" as well as "C#" and "Db".
func ParsePitchClass(s string) (PitchClass, error) {
	if s == "" {
		return 0, errors.New("empty pitch class")
	}
	name := strings.ToUpper(s[:1])
	for _, r := range s[1:] {
		switch r {
		case 's', '#':
			name += "s"
		case 'f', 'b':
			name += "f"
		default:
			return 0, fmt.Errorf("invalid pitch class %q", s)
		}
	}
	for i, n := range pitchClassNames {
		if n == name {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("invalid pitch class %q", s)
}

// Octave numbers follow scientific pitch notation: middle C is in octave 4.
// The representable range is -1 to 9.
type Octave int

const (
	MinOctave Octave = -1
	MaxOctave Octave = 9
)

// Pitch is a pitch class in a given octave.
type Pitch struct {
	Class  PitchClass
	Octave Octave
}

func NewPitch(class PitchClass, octave Octave) Pitch {
	return Pitch{Class: class, Octave: octave}
}

// Abs returns the absolute pitch, clipping it into the MIDI range.
func (p Pitch) Abs() AbsPitch {
	a, _ := p.AbsChecked()
	return a
}

// AbsChecked returns the absolute pitch or a *ClipError if it does not fit
// into the MIDI range. The returned pitch is clipped in the latter case.
func (p Pitch) AbsChecked() (AbsPitch, error) {
	v := (int(p.Octave)+1)*12 + int(p.Class.DistanceFromC())
	return checkAbs(v)
}

func (p Pitch) Trans(i Interval) Pitch {
	return p.Abs().Add(i).Pitch()
}

// ConcertA is the frequency of A4 in Hz.
const ConcertA = 440.0

// Frequency returns the equal-tempered frequency of the pitch in Hz.
func (p Pitch) Frequency() float64 {
	a4 := NewPitch(A, 4).Abs()
	return ConcertA * math.Exp2(float64(p.Abs().Diff(a4))/12)
}

func (p Pitch) String() string {
	return p.Class.String() + strconv.Itoa(int(p.Octave))
}

// NotePitch and NoteAttrs make Pitch a Playable payload without attributes.
func (p Pitch) NotePitch() Pitch           { return p }
func (p Pitch) NoteAttrs() []NoteAttribute { return nil }

// ParsePitch parses a pitch class followed by an octave, e.g. "C4", "Fs3",
// "Bb-1".
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, "-0123456789")
	if i <= 0 {
		return Pitch{}, fmt.Errorf("invalid pitch %q", s)
	}
	pc, err := ParsePitchClass(s[:i])
	if err != nil {
		return Pitch{}, err
	}
	oct, err := strconv.Atoi(s[i:])
	if err != nil {
		return Pitch{}, fmt.Errorf("invalid octave in pitch %q: %v", s, err)
	}
	if Octave(oct) < MinOctave || Octave(oct) > MaxOctave {
		return Pitch{}, fmt.Errorf("octave of pitch %q out of range", s)
	}
	return NewPitch(pc, Octave(oct)), nil
}

// AbsPitch is a MIDI key number, 0 to 127.
type AbsPitch uint8

const MaxAbsPitch AbsPitch = 127

var (
	ErrPitchTooLow  = errors.New("pitch below the representable range")
	ErrPitchTooHigh = errors.New("pitch above the representable range")
)

// ClipError reports an absolute pitch outside of 0 to 127.
type ClipError struct {
	Value int // the unclipped semitone index
	Err   error
}

func (e *ClipError) Error() string {
	return fmt.Sprintf("absolute pitch %d: %v", e.Value, e.Err)
}

func (e *ClipError) Unwrap() error { return e.Err }

// ClipTo returns the boundary that was exceeded.
func (e *ClipError) ClipTo() AbsPitch {
	if e.Err == ErrPitchTooLow {
		return 0
	}
	return MaxAbsPitch
}

func checkAbs(v int) (AbsPitch, error) {
	switch {
	case v < 0:
		return 0, &ClipError{Value: v, Err: ErrPitchTooLow}
	case v > int(MaxAbsPitch):
		return MaxAbsPitch, &ClipError{Value: v, Err: ErrPitchTooHigh}
	}
	return AbsPitch(v), nil
}

// Add transposes the pitch, saturating at the ends of the MIDI range.
func (a AbsPitch) Add(i Interval) AbsPitch {
	v, _ := checkAbs(int(a) + int(i))
	return v
}

// Sub transposes the pitch down, saturating at the ends of the MIDI range.
func (a AbsPitch) Sub(i Interval) AbsPitch {
	return a.Add(-i)
}

// CheckedAdd transposes the pitch or reports which bound was exceeded.
func (a AbsPitch) CheckedAdd(i Interval) (AbsPitch, error) {
	return checkAbs(int(a) + int(i))
}

func (a AbsPitch) CheckedSub(i Interval) (AbsPitch, error) {
	return checkAbs(int(a) - int(i))
}

// Diff returns the interval from o to a.
func (a AbsPitch) Diff(o AbsPitch) Interval {
	return Interval(int(a) - int(o))
}

// Pitch spells the absolute pitch using sharps.
func (a AbsPitch) Pitch() Pitch {
	return NewPitch(sharps[a%12], Octave(a/12)-1)
}

func (a AbsPitch) String() string {
	return strconv.Itoa(int(a))
}
