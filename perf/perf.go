// Package perf interprets music trees into performances: lazy, time ordered
// sequences of note events with absolute timing in seconds.
package perf

import (
	"fmt"
	"log/slog"

	"github.com/vsariola/motif"
)

// Perform performs the music with DefaultContext.
func Perform[P motif.Playable](m motif.Music[P]) Performance {
	p, _ := Perf(m, DefaultContext[P]())
	return p
}

// PerformWithContext performs the music starting from ctx. A context without
// players gets the default ones.
func PerformWithContext[P motif.Playable](m motif.Music[P], ctx Context[P]) Performance {
	p, _ := Perf(m, ctx.withDefaults())
	return p
}

// Perf performs the music in the context and returns the performance along
// with the time the music occupies in seconds. Events of sequential music
// are produced in order; parallel voices are merged by start time. Music
// after an infinite voice is never reached.
func Perf[P motif.Playable](m motif.Music[P], ctx Context[P]) (Performance, motif.Measure[motif.Ratio]) {
	ctx.Depth++
	switch m := m.(type) {
	case motif.Primitive[P]:
		d := motif.Finite(m.Dur.Mul(ctx.WholeNote))
		if m.IsRest {
			return Empty(), d
		}
		return ctx.Player.PlayNote(ctx, m.Dur, m.Payload), d
	case motif.Sequential[P]:
		p1, d1 := Perf(m.Left, ctx)
		v, ok := d1.Value()
		if !ok {
			slog.Debug("skipping music after an infinite voice", "depth", ctx.Depth)
			return p1, d1
		}
		ctx.Start = ctx.Start.Add(v)
		p2, d2 := Perf(m.Right, ctx)
		return Concat(p1, p2), d1.Add(d2)
	case motif.Parallel[P]:
		p1, d1 := Perf(m.Left, ctx)
		p2, d2 := Perf(m.Right, ctx)
		return Merge(p1, p2), d1.Max(d2)
	case motif.Modify[P]:
		return perfModify(m.Control, m.Music, ctx)
	case motif.Lazy[P]:
		if m.Items.Unbounded {
			return perfUnbounded(m.Items, ctx), motif.Infinite[motif.Ratio]()
		}
		return perfBounded(m.Items, ctx)
	}
	panic(fmt.Sprintf("perf: unknown music node %T", m))
}

func perfModify[P motif.Playable](c motif.Control, m motif.Music[P], ctx Context[P]) (Performance, motif.Measure[motif.Ratio]) {
	switch c := c.(type) {
	case motif.Tempo:
		ctx.WholeNote = ctx.WholeNote.Div(c.Ratio)
	case motif.Transpose:
		ctx.Transpose += c.Interval
	case motif.UseInstrument:
		ctx.Instrument = c.Name
	case motif.UsePlayer:
		ctx.Player = ctx.Players.Lookup(c.Name)
		slog.Debug("switching player", "player", ctx.Player.Name(), "depth", ctx.Depth)
	case motif.KeyChange:
		ctx.Key = c.Key
	case motif.Phrase:
		return ctx.Player.InterpretPhrase(m, c.Attrs, ctx)
	}
	return Perf(m, ctx)
}

// perfUnbounded performs the items one by one as the performance is
// consumed, advancing the start time by each item's duration.
func perfUnbounded[P motif.Playable](items motif.Stream[motif.Music[P]], ctx Context[P]) Performance {
	return fromSeq(func(yield func(Event) bool) {
		c := ctx
		for item := range items.All() {
			p, d := Perf(item, c)
			for e := range p.All() {
				if !yield(e) {
					return
				}
			}
			v, ok := d.Value()
			if !ok {
				return
			}
			c.Start = c.Start.Add(v)
		}
	}, true)
}

func perfBounded[P motif.Playable](items motif.Stream[motif.Music[P]], ctx Context[P]) (Performance, motif.Measure[motif.Ratio]) {
	var parts []Performance
	total := motif.Finite(motif.Ratio{})
	for item := range items.All() {
		p, d := Perf(item, ctx)
		parts = append(parts, p)
		total = total.Add(d)
		v, ok := d.Value()
		if !ok {
			break
		}
		ctx.Start = ctx.Start.Add(v)
	}
	return Concat(parts...), total
}
