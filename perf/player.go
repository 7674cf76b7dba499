package perf

import (
	"log/slog"
	"sort"

	"github.com/vsariola/motif"
)

// Player turns notes and phrases into events. Implementations must be
// stateless: the same inputs give the same performance.
type Player[P motif.Playable] interface {
	Name() string
	// PlayNote returns the events of one note of duration d (in whole notes)
	// played in the context.
	PlayNote(ctx Context[P], d motif.Dur, note P) Performance
	// InterpretPhrase performs m shaped by the phrase attributes and returns
	// the performance together with the duration it occupies, in seconds.
	InterpretPhrase(m motif.Music[P], attrs []motif.PhraseAttribute, ctx Context[P]) (Performance, motif.Measure[motif.Ratio])
}

const (
	DefaultPlayerName = "default"
	FancyPlayerName   = "fancy"
)

// Players maps player names to players. The zero value is not usable; use
// NewPlayers or DefaultPlayers.
type Players[P motif.Playable] struct {
	byName map[string]Player[P]
	def    Player[P]
}

// NewPlayers registers def and others; def is also the fallback for unknown
// names.
func NewPlayers[P motif.Playable](def Player[P], others ...Player[P]) *Players[P] {
	ps := &Players[P]{byName: map[string]Player[P]{}, def: def}
	ps.Register(def)
	for _, p := range others {
		ps.Register(p)
	}
	return ps
}

// DefaultPlayers holds the default and the fancy player, with the default
// one as the fallback.
func DefaultPlayers[P motif.Playable]() *Players[P] {
	return NewPlayers[P](DefaultPlayer[P]{}, FancyPlayer[P]{})
}

// Register adds p, replacing any player of the same name.
func (ps *Players[P]) Register(p Player[P]) {
	ps.byName[p.Name()] = p
}

func (ps *Players[P]) Default() Player[P] {
	return ps.def
}

// Lookup returns the player registered under name, or the default player if
// there is none.
func (ps *Players[P]) Lookup(name string) Player[P] {
	if p, ok := ps.byName[name]; ok {
		return p
	}
	slog.Warn("unknown player, using the default one", "player", name, "default", ps.def.Name())
	return ps.def
}

// Names returns the registered names in sorted order.
func (ps *Players[P]) Names() []string {
	ret := make([]string, 0, len(ps.byName))
	for n := range ps.byName {
		ret = append(ret, n)
	}
	sort.Strings(ret)
	return ret
}

// DefaultPlayer plays every note as a single event and understands only the
// Accent, Staccato and Legato phrase attributes.
type DefaultPlayer[P motif.Playable] struct{}

func (DefaultPlayer[P]) Name() string { return DefaultPlayerName }

func (DefaultPlayer[P]) PlayNote(ctx Context[P], d motif.Dur, note P) Performance {
	return NewPerformance(noteEvent(ctx, d, note))
}

func (pl DefaultPlayer[P]) InterpretPhrase(m motif.Music[P], attrs []motif.PhraseAttribute, ctx Context[P]) (Performance, motif.Measure[motif.Ratio]) {
	p, dur := Perf(m, ctx)
	for _, attr := range attrs {
		p = defaultPhrase(p, attr)
	}
	return p, dur
}

// noteEvent builds the event of a note and applies its note attributes.
func noteEvent[P motif.Playable](ctx Context[P], d motif.Dur, note P) Event {
	e := Event{
		Start:      ctx.Start,
		Instrument: ctx.Instrument,
		Pitch:      note.NotePitch().Abs().Add(ctx.Transpose),
		Dur:        d.Mul(ctx.WholeNote),
		Volume:     ctx.Volume,
	}
	for _, attr := range note.NoteAttrs() {
		switch a := attr.(type) {
		case motif.NoteVolume:
			e.Volume = motif.Volume(a)
		case motif.Params:
			e.Params = append([]float64(nil), a...)
		}
	}
	return e
}

func scaleVolume(v motif.Volume, r motif.Ratio) motif.Volume {
	return motif.ClampVolume(r.MulInt(int64(v)).Floor())
}

func defaultPhrase(p Performance, attr motif.PhraseAttribute) Performance {
	switch a := attr.(type) {
	case motif.Accent:
		return p.Map(func(e Event) Event {
			e.Volume = scaleVolume(e.Volume, a.Ratio)
			return e
		})
	case motif.Staccato:
		return scaleDurs(p, a.Ratio)
	case motif.Legato:
		return scaleDurs(p, a.Ratio)
	}
	return p
}

func scaleDurs(p Performance, r motif.Ratio) Performance {
	return p.Map(func(e Event) Event {
		e.Dur = e.Dur.Mul(r)
		return e
	})
}
