package motif

import "fmt"

type (
	// Control is an annotation that overrides one aspect of the performance
	// context for the music it wraps in a Modify node.
	Control interface {
		control()
	}

	// Tempo scales the speed of the wrapped music: Tempo{2} plays twice as
	// fast.
	Tempo struct{ Ratio Ratio }

	// Transpose shifts every pitch by the interval.
	Transpose struct{ Interval Interval }

	// UseInstrument plays the wrapped music on the instrument.
	UseInstrument struct{ Name InstrumentName }

	// Phrase hands the wrapped music to the current player's phrase
	// interpretation.
	Phrase struct{ Attrs []PhraseAttribute }

	// UsePlayer selects a player by its registered name.
	UsePlayer struct{ Name string }

	// KeyChange sets the key signature used by diatonic ornaments.
	KeyChange struct{ Key KeySig }
)

func (Tempo) control()         {}
func (Transpose) control()     {}
func (UseInstrument) control() {}
func (Phrase) control()        {}
func (UsePlayer) control()     {}
func (KeyChange) control()     {}

func (c Tempo) String() string         { return "tempo " + c.Ratio.String() }
func (c Transpose) String() string     { return fmt.Sprintf("transpose %d", c.Interval) }
func (c UseInstrument) String() string { return "instrument " + c.Name.String() }
func (c Phrase) String() string        { return fmt.Sprintf("phrase %v", c.Attrs) }
func (c UsePlayer) String() string     { return "player " + c.Name }
func (c KeyChange) String() string     { return "key " + c.Key.String() }

type (
	// PhraseAttribute is an annotation describing how a phrase is shaped:
	// dynamics, tempo changes, articulation and ornaments.
	PhraseAttribute interface {
		phraseAttribute()
	}

	// Accent scales the volume of every note by the ratio.
	Accent struct{ Ratio Ratio }

	// Crescendo raises the volume linearly across the phrase; at its end
	// the volume is (1+Ratio) times the original.
	Crescendo struct{ Ratio Ratio }

	// Diminuendo lowers the volume linearly across the phrase.
	Diminuendo struct{ Ratio Ratio }

	// Loud sets the volume of the phrase to a standard dynamic marking.
	Loud struct{ Loudness StdLoudness }

	// Loudness sets the volume of the phrase.
	Loudness struct{ Volume Volume }

	// Ritardando slows the phrase down linearly.
	Ritardando struct{ Ratio Ratio }

	// Accelerando speeds the phrase up linearly.
	Accelerando struct{ Ratio Ratio }

	// Staccato scales the duration of every note by the ratio.
	Staccato struct{ Ratio Ratio }

	// Legato scales the duration of every note by the ratio.
	Legato struct{ Ratio Ratio }

	// Slurred is Legato that leaves the last note of the phrase alone.
	Slurred struct{ Ratio Ratio }

	// TrillOrnament trills every note of the phrase to the next degree of
	// the key.
	TrillOrnament struct{ Options TrillOptions }

	// DiatonicTrans moves every note of the phrase by degrees of the key.
	DiatonicTrans struct{ Degrees int }

	// Articulation lists the articulations that carry no parameter.
	Articulation int

	// Ornament lists the ornaments that carry no parameter.
	Ornament int
)

const (
	Tenuto Articulation = iota
	Marcato
	Pedal
	Fermata
	FermataDown
	Breath
	DownBow
	UpBow
	Harmonic
	Pizzicato
	LeftPizz
	BartokPizz
	Swell
	Wedge
	Thumb
	Stopped
)

const (
	Mordent Ornament = iota
	InvMordent
	DoubleMordent
	Turn
	TrilledTurn
	ShortTrill
	Arpeggio
	ArpeggioUp
	ArpeggioDown
)

var articulationNames = [...]string{
	"tenuto", "marcato", "pedal", "fermata", "fermata-down", "breath",
	"down-bow", "up-bow", "harmonic", "pizzicato", "left-pizz", "bartok-pizz",
	"swell", "wedge", "thumb", "stopped",
}

var ornamentNames = [...]string{
	"mordent", "inv-mordent", "double-mordent", "turn", "trilled-turn",
	"short-trill", "arpeggio", "arpeggio-up", "arpeggio-down",
}

func (a Articulation) String() string { return articulationNames[a] }
func (o Ornament) String() string     { return ornamentNames[o] }

func (Accent) phraseAttribute()        {}
func (Crescendo) phraseAttribute()     {}
func (Diminuendo) phraseAttribute()    {}
func (Loud) phraseAttribute()          {}
func (Loudness) phraseAttribute()      {}
func (Ritardando) phraseAttribute()    {}
func (Accelerando) phraseAttribute()   {}
func (Staccato) phraseAttribute()      {}
func (Legato) phraseAttribute()        {}
func (Slurred) phraseAttribute()       {}
func (TrillOrnament) phraseAttribute() {}
func (DiatonicTrans) phraseAttribute() {}
func (Articulation) phraseAttribute()  {}
func (Ornament) phraseAttribute()      {}

// TrillOptions choose how a trill subdivides a note: either into sub-notes
// of a fixed duration, the last one absorbing any remainder, or into a fixed
// count of equal sub-notes.
type TrillOptions struct {
	dur   Dur
	count int
}

func TrillDur(d Dur) TrillOptions         { return TrillOptions{dur: d} }
func TrillCount(n int) TrillOptions       { return TrillOptions{count: n} }
func (o TrillOptions) Dur() (Dur, bool)   { return o.dur, o.count == 0 }
func (o TrillOptions) Count() (int, bool) { return o.count, o.count != 0 }

func (o TrillOptions) String() string {
	if o.count != 0 {
		return fmt.Sprintf("%d notes", o.count)
	}
	return o.dur.String()
}

type (
	// NoteAttribute is extra information attached to a single note.
	NoteAttribute interface {
		noteAttribute()
	}

	// NoteVolume overrides the volume of the context for the note.
	NoteVolume Volume

	Fingering uint32

	Dynamics string

	// Params are auxiliary numbers for instruments that need them.
	Params []float64
)

func (NoteVolume) noteAttribute() {}
func (Fingering) noteAttribute()  {}
func (Dynamics) noteAttribute()   {}
func (Params) noteAttribute()     {}

// AttrNote is a note payload carrying attributes along with its pitch.
type AttrNote struct {
	Pitch Pitch
	Attrs []NoteAttribute
}

func (n AttrNote) NotePitch() Pitch           { return n.Pitch }
func (n AttrNote) NoteAttrs() []NoteAttribute { return n.Attrs }

// Playable is implemented by note payloads that a player can perform.
type Playable interface {
	NotePitch() Pitch
	NoteAttrs() []NoteAttribute
}
