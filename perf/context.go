package perf

import (
	"github.com/vsariola/motif"
)

// Context is the interpretation state threaded through the music tree. It is
// a value: every Modify node works on its own copy.
type Context[P motif.Playable] struct {
	Start      motif.Ratio // seconds since the start of the performance
	Player     Player[P]
	Players    *Players[P]
	Instrument motif.InstrumentName
	WholeNote  motif.Ratio // seconds per whole note
	Transpose  motif.Interval
	Volume     motif.Volume
	Key        motif.KeySig
	Depth      int // nesting depth of the node being performed, for diagnostics
}

// Metro returns the length of a whole note in seconds for a metronome
// setting of bpm beats per minute, each beat lasting beat.
func Metro(bpm int64, beat motif.Dur) motif.Ratio {
	return motif.Int(60).Div(motif.Int(bpm).Mul(beat))
}

// DefaultContext starts at zero on the acoustic grand piano, at 120 quarter
// notes per minute, loudest, in C major, with the default player.
func DefaultContext[P motif.Playable]() Context[P] {
	players := DefaultPlayers[P]()
	return Context[P]{
		Player:     players.Default(),
		Players:    players,
		Instrument: motif.Program(motif.AcousticGrandPiano),
		WholeNote:  Metro(120, motif.Quarter),
		Volume:     motif.Loudest,
		Key:        motif.DefaultKey,
	}
}

func (c Context[P]) WithTempo(wholeNote motif.Ratio) Context[P] {
	c.WholeNote = wholeNote
	return c
}

func (c Context[P]) WithVolume(v motif.Volume) Context[P] {
	c.Volume = v
	return c
}

func (c Context[P]) WithInstrument(name motif.InstrumentName) Context[P] {
	c.Instrument = name
	return c
}

func (c Context[P]) WithTranspose(i motif.Interval) Context[P] {
	c.Transpose = i
	return c
}

func (c Context[P]) WithKey(key motif.KeySig) Context[P] {
	c.Key = key
	return c
}

// WithPlayer selects a registered player by name.
func (c Context[P]) WithPlayer(name string) Context[P] {
	c = c.withDefaults()
	c.Player = c.Players.Lookup(name)
	return c
}

func (c Context[P]) withDefaults() Context[P] {
	if c.Players == nil {
		c.Players = DefaultPlayers[P]()
	}
	if c.Player == nil {
		c.Player = c.Players.Default()
	}
	if c.WholeNote.IsZero() {
		c.WholeNote = Metro(120, motif.Quarter)
	}
	return c
}
