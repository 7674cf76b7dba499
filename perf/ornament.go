package perf

import (
	"log/slog"
	"slices"

	"github.com/vsariola/motif"
)

// auxiliary returns the next pitch of the key above (or below) the event's
// pitch, skipping a degree when the pitch is not in the key. ok is false if
// no distinct pitch exists, at the ends of the MIDI range.
func auxiliary(p motif.AbsPitch, key motif.KeySig, up bool) (aux motif.AbsPitch, ok bool) {
	step := 1
	if !up {
		step = -1
	}
	aux = p.DiatonicTrans(key, step)
	if aux == p {
		aux = p.DiatonicTrans(key, 2*step)
	}
	return aux, aux != p
}

// alternate splits the event into consecutive events of the given
// durations, starting on the event's pitch and alternating with aux.
func alternate(e Event, aux motif.AbsPitch, durs []motif.Ratio) []Event {
	ret := make([]Event, len(durs))
	start := e.Start
	for i, d := range durs {
		x := e
		x.Start, x.Dur = start, d
		if i%2 == 1 {
			x.Pitch = aux
		}
		ret[i] = x
		start = start.Add(d)
	}
	return ret
}

// TrillEvent trills the event with the next degree of the key above it. A
// duration option is in seconds. Events that cannot be trilled are returned
// unchanged.
func TrillEvent(e Event, opts motif.TrillOptions, key motif.KeySig) []Event {
	aux, ok := auxiliary(e.Pitch, key, true)
	if !ok {
		return []Event{e}
	}
	var durs []motif.Ratio
	if n, ok := opts.Count(); ok {
		if n < 0 {
			slog.Warn("ignoring trill with a negative note count", "count", n)
			return []Event{e}
		}
		for range n {
			durs = append(durs, e.Dur.DivInt(int64(n)))
		}
	} else {
		single, _ := opts.Dur()
		if single.Sign() <= 0 {
			slog.Warn("ignoring trill with a non-positive note length", "dur", single)
			return []Event{e}
		}
		n := e.Dur.Div(single).Floor()
		for range n {
			durs = append(durs, single)
		}
		if rem := e.Dur.Sub(single.MulInt(n)); !rem.IsZero() {
			durs = append(durs, rem)
		}
	}
	return alternate(e, aux, durs)
}

// MordentEvent plays a mordent on the event: two notes of an eighth of its
// duration alternating with the neighbouring degree and a tail of three
// quarters, or for a double mordent four short notes and a tail of half the
// duration. The neighbour is above for an upper mordent, below otherwise.
func MordentEvent(e Event, upper, double bool, key motif.KeySig) []Event {
	aux, ok := auxiliary(e.Pitch, key, upper)
	if !ok {
		return []Event{e}
	}
	short := e.Dur.DivInt(8)
	durs := []motif.Ratio{short, short, e.Dur.Mul(motif.NewRatio(3, 4))}
	if double {
		durs = []motif.Ratio{short, short, short, short, e.Dur.Mul(motif.Half)}
	}
	return alternate(e, aux, durs)
}

// Arpeggiate spreads a chord, i.e. events with equal start and duration, in
// pitch order. Chords of 3 to 8 notes are split into equal slices when the
// note count divides the numerator of the duration; otherwise every note but
// the last gets a quarter (up to 4 notes) or an eighth of the duration and
// the last one the rest. Other chords are returned as they are.
func Arpeggiate(chord []Event, up bool) []Event {
	n := len(chord)
	if n < 3 || n > 8 {
		return chord
	}
	ret := slices.Clone(chord)
	slices.SortStableFunc(ret, func(a, b Event) int {
		if up {
			return int(a.Pitch) - int(b.Pitch)
		}
		return int(b.Pitch) - int(a.Pitch)
	})
	s, d := ret[0].Start, ret[0].Dur
	short := d.DivInt(int64(n))
	if d.Num()%int64(n) != 0 {
		short = d.DivInt(8)
		if n <= 4 {
			short = d.DivInt(4)
		}
	}
	for i := range ret {
		ret[i].Start = s.Add(short.MulInt(int64(i)))
		ret[i].Dur = short
	}
	if last := n - 1; d.Num()%int64(n) != 0 {
		ret[last].Dur = d.Sub(short.MulInt(int64(last)))
	}
	return ret
}
