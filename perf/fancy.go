package perf

import (
	"github.com/vsariola/motif"
)

// FancyPlayer extends DefaultPlayer with dynamics, tempo changes, slurs,
// pedal and ornaments. Attributes that shape the phrase as a whole
// (crescendo, diminuendo, ritardando, accelerando, pedal) need a finite
// phrase and leave an infinite one untouched; Slurred then acts as Legato.
type FancyPlayer[P motif.Playable] struct{}

func (FancyPlayer[P]) Name() string { return FancyPlayerName }

func (FancyPlayer[P]) PlayNote(ctx Context[P], d motif.Dur, note P) Performance {
	return NewPerformance(noteEvent(ctx, d, note))
}

func (pl FancyPlayer[P]) InterpretPhrase(m motif.Music[P], attrs []motif.PhraseAttribute, ctx Context[P]) (Performance, motif.Measure[motif.Ratio]) {
	for _, attr := range attrs {
		switch a := attr.(type) {
		case motif.Loud:
			ctx.Volume = a.Loudness.Volume()
		case motif.Loudness:
			ctx.Volume = a.Volume
		}
	}
	key := ctx.Key
	p, dur := Perf(m, ctx)
	for _, attr := range attrs {
		p = fancyPhrase(p, attr)
	}
	phraseDur, finite := dur.Value()
	finite = finite && !p.Unbounded
	for _, attr := range attrs {
		switch a := attr.(type) {
		case motif.Crescendo:
			if finite {
				p = inflate(p, a.Ratio, phraseDur, true)
			}
		case motif.Diminuendo:
			if finite {
				p = inflate(p, a.Ratio, phraseDur, false)
			}
		case motif.Ritardando:
			if finite {
				p = stretch(p, a.Ratio, phraseDur, true)
				phraseDur = motif.Int(1).Add(a.Ratio).Mul(phraseDur)
			}
		case motif.Accelerando:
			if finite {
				p = stretch(p, a.Ratio, phraseDur, false)
				phraseDur = motif.Int(1).SatSub(a.Ratio).Mul(phraseDur)
			}
		case motif.TrillOrnament:
			opts := a.Options
			if d, ok := opts.Dur(); ok {
				opts = motif.TrillDur(d.Mul(ctx.WholeNote))
			}
			p = p.FlatMap(func(e Event) []Event { return TrillEvent(e, opts, key) })
		case motif.Ornament:
			switch a {
			case motif.Mordent:
				p = p.FlatMap(func(e Event) []Event { return MordentEvent(e, true, false, key) })
			case motif.InvMordent:
				p = p.FlatMap(func(e Event) []Event { return MordentEvent(e, false, false, key) })
			case motif.DoubleMordent:
				p = p.FlatMap(func(e Event) []Event { return MordentEvent(e, true, true, key) })
			}
		case motif.DiatonicTrans:
			p = p.Map(func(e Event) Event {
				e.Pitch = e.Pitch.DiatonicTrans(key, a.Degrees)
				return e
			})
		}
	}
	if finite {
		return p, motif.Finite(phraseDur)
	}
	return p, dur
}

// fancyPhrase applies the attributes that work event by event, or on the
// events of a finite phrase taken together.
func fancyPhrase(p Performance, attr motif.PhraseAttribute) Performance {
	switch a := attr.(type) {
	case motif.Slurred:
		if p.Unbounded {
			return scaleDurs(p, a.Ratio)
		}
		return slur(p, a.Ratio)
	case motif.Articulation:
		if a == motif.Pedal && !p.Unbounded {
			return pedal(p)
		}
	case motif.Ornament:
		switch a {
		case motif.ArpeggioUp:
			return arpeggio(p, true)
		case motif.ArpeggioDown:
			return arpeggio(p, false)
		}
	}
	return defaultPhrase(p, attr)
}

// slur scales every event except the ones starting last.
func slur(p Performance, r motif.Ratio) Performance {
	return fromSeq(func(yield func(Event) bool) {
		var last motif.Ratio
		first := true
		for e := range p.All() {
			if first || last.Less(e.Start) {
				last, first = e.Start, false
			}
		}
		for e := range p.All() {
			if e.Start.Less(last) {
				e.Dur = e.Dur.Mul(r)
			}
			if !yield(e) {
				return
			}
		}
	}, false)
}

// pedal sustains every event until the end of the last one.
func pedal(p Performance) Performance {
	return fromSeq(func(yield func(Event) bool) {
		var end motif.Ratio
		for e := range p.All() {
			end = end.Max(e.End())
		}
		for e := range p.All() {
			if d := end.Sub(e.Start); e.Dur.Less(d) {
				e.Dur = d
			}
			if !yield(e) {
				return
			}
		}
	}, false)
}

// arpeggio splits every run of events with the same start and duration.
func arpeggio(p Performance, up bool) Performance {
	return fromSeq(func(yield func(Event) bool) {
		var group []Event
		flush := func() bool {
			for _, e := range Arpeggiate(group, up) {
				if !yield(e) {
					return false
				}
			}
			group = group[:0]
			return true
		}
		for e := range p.All() {
			if len(group) > 0 && (group[0].Start != e.Start || group[0].Dur != e.Dur) {
				if !flush() {
					return
				}
			}
			group = append(group, e)
		}
		flush()
	}, p.Unbounded)
}

// inflate ramps the volume linearly from the first event of the phrase:
// at elapsed time dt the volume is multiplied by 1 ± dt/dur·coef.
func inflate(p Performance, coef, dur motif.Ratio, up bool) Performance {
	if dur.IsZero() {
		return p
	}
	r := coef.Div(dur)
	return mapFromFirst(p, func(t0 motif.Ratio, e Event) Event {
		c := e.Start.Sub(t0).Mul(r)
		shift := motif.Int(1).Add(c)
		if !up {
			shift = motif.Int(1).SatSub(c)
		}
		e.Volume = scaleVolume(e.Volume, shift)
		return e
	})
}

// stretch slows the phrase down (or speeds it up) linearly from its first
// event, rescaling both start times and durations.
func stretch(p Performance, coef, dur motif.Ratio, slower bool) Performance {
	if dur.IsZero() {
		return p
	}
	r := coef.Div(dur)
	return mapFromFirst(p, func(t0 motif.Ratio, e Event) Event {
		dt := e.Start.Sub(t0)
		tc := dt.Mul(r)
		dc := dt.MulInt(2).Add(e.Dur).Mul(r)
		one := motif.Int(1)
		ts, ds := one.Add(tc), one.Add(dc)
		if !slower {
			ts, ds = one.SatSub(tc), one.SatSub(dc)
		}
		e.Start = ts.Mul(dt).Add(t0)
		e.Dur = ds.Mul(e.Dur)
		return e
	})
}

// mapFromFirst maps the events with the start time of the first event.
func mapFromFirst(p Performance, f func(t0 motif.Ratio, e Event) Event) Performance {
	return fromSeq(func(yield func(Event) bool) {
		var t0 motif.Ratio
		first := true
		for e := range p.All() {
			if first {
				t0, first = e.Start, false
			}
			if !yield(f(t0, e)) {
				return
			}
		}
	}, p.Unbounded)
}
