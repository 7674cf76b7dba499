package motif

// Interval is a signed distance between two absolute pitches in semitones.
type Interval int

const (
	Unison         Interval = 0
	SemiTone       Interval = 1
	Tone           Interval = 2
	OctaveInterval Interval = 12
)

// Scale step tables, starting with the tonic itself. The last step reaches
// the tonic of the next octave.
var (
	MajorSteps        = [8]Interval{0, Tone, Tone, SemiTone, Tone, Tone, Tone, SemiTone}
	NaturalMinorSteps = [8]Interval{0, Tone, SemiTone, Tone, Tone, SemiTone, Tone, Tone}
)
