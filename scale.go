package motif

import (
	"fmt"
	"strings"
)

type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

// KeySig is a key signature. The zero value is C major, i.e. the white keys
// of the piano.
type KeySig struct {
	Tonic PitchClass
	Mode  Mode
}

func MajorKey(tonic PitchClass) KeySig { return KeySig{Tonic: tonic, Mode: Major} }
func MinorKey(tonic PitchClass) KeySig { return KeySig{Tonic: tonic, Mode: Minor} }

// DefaultKey is C major.
var DefaultKey = MajorKey(C)

func (k KeySig) steps() [8]Interval {
	if k.Mode == Minor {
		return NaturalMinorSteps
	}
	return MajorSteps
}

// Intervals returns the distance of every degree of the scale from C,
// starting with the tonic and ending with the tonic an octave higher.
func (k KeySig) Intervals() []Interval {
	ret := make([]Interval, 0, 8)
	acc := k.Tonic.DistanceFromC()
	for _, s := range k.steps() {
		acc += s
		ret = append(ret, acc)
	}
	return ret
}

// Scale returns the pitch classes of the scale, spelled with sharps.
func (k KeySig) Scale() []PitchClass {
	tonic := NewPitch(k.Tonic, 4).Abs()
	ret := make([]PitchClass, 0, 8)
	var acc Interval
	for _, s := range k.steps() {
		acc += s
		ret = append(ret, tonic.Add(acc).Pitch().Class)
	}
	return ret
}

func (k KeySig) String() string {
	return k.Tonic.String() + " " + k.Mode.String()
}

// ParseKeySig parses "G major", "A minor" or a bare tonic meaning major.
func ParseKeySig(s string) (KeySig, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return KeySig{}, fmt.Errorf("invalid key signature %q", s)
	}
	pc, err := ParsePitchClass(fields[0])
	if err != nil {
		return KeySig{}, fmt.Errorf("invalid key signature %q: %v", s, err)
	}
	if len(fields) == 1 {
		return MajorKey(pc), nil
	}
	switch strings.ToLower(fields[1]) {
	case "major", "maj":
		return MajorKey(pc), nil
	case "minor", "min":
		return MinorKey(pc), nil
	}
	return KeySig{}, fmt.Errorf("invalid mode in key signature %q", s)
}

const diatonicSize = 7

func mod(a, n int) int {
	return ((a % n) + n) % n
}

// DiatonicTrans moves the pitch by the given number of degrees of the key's
// scale. The pitch is first snapped to the closest degree at or below it
// (modulo an octave); whole octaves are carried for |degrees| >= 7.
func (a AbsPitch) DiatonicTrans(key KeySig, degrees int) AbsPitch {
	if degrees == 0 {
		return a
	}
	scale := key.Intervals()[:diatonicSize]
	closest, best := 0, 12
	for i, x := range scale {
		if d := mod(int(a)-int(x), 12); d < best {
			closest, best = i, d
		}
	}
	shift := mod(degrees, diatonicSize)
	octaves := (degrees - shift) / diatonicSize
	target := int(scale[(closest+shift)%diatonicSize])
	delta := mod(target-int(a)%12, 12)
	return a.Add(Interval(delta + octaves*12))
}
