package perf_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vsariola/motif"
	"github.com/vsariola/motif/perf"
)

var (
	c4    = motif.NewPitch(motif.C, 4)
	d4    = motif.NewPitch(motif.D, 4)
	e4    = motif.NewPitch(motif.E, 4)
	f4    = motif.NewPitch(motif.F, 4)
	g4    = motif.NewPitch(motif.G, 4)
	piano = motif.Program(motif.AcousticGrandPiano)
)

func q(p motif.Pitch) motif.Music[motif.Pitch] { return motif.Note(motif.Quarter, p) }

func r(num, den int64) motif.Ratio { return motif.NewRatio(num, den) }

func ev(start, dur motif.Ratio, pitch motif.AbsPitch, vol motif.Volume) perf.Event {
	return perf.Event{Start: start, Instrument: piano, Pitch: pitch, Dur: dur, Volume: vol}
}

func collect(t *testing.T, p perf.Performance) []perf.Event {
	t.Helper()
	events, err := p.Collect()
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	return events
}

func expect(t *testing.T, got, want []perf.Event) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got events\n%v\nwant\n%v", got, want)
	}
}

func TestPerformLine(t *testing.T) {
	got := collect(t, perf.Perform(motif.Line(q(c4), q(d4))))
	expect(t, got, []perf.Event{
		ev(motif.Int(0), r(1, 2), 60, 127),
		ev(r(1, 2), r(1, 2), 62, 127),
	})
}

func TestPerformChord(t *testing.T) {
	m := motif.Chord(motif.Note(motif.Half, c4), q(e4))
	got := collect(t, perf.Perform(m))
	expect(t, got, []perf.Event{
		ev(motif.Int(0), motif.Int(1), 60, 127),
		ev(motif.Int(0), r(1, 2), 64, 127),
	})
	_, d := perf.Perf(m, perf.DefaultContext[motif.Pitch]())
	if v, ok := d.Value(); !ok || v != motif.Int(1) {
		t.Fatalf("chord lasts %v, want 1 second", d)
	}
}

func TestMergeOrder(t *testing.T) {
	a := motif.Line(q(c4), q(d4))
	b := motif.Note(motif.Half, e4)
	expect(t, collect(t, perf.Perform(motif.Par(a, b))), []perf.Event{
		ev(motif.Int(0), r(1, 2), 60, 127),
		ev(motif.Int(0), motif.Int(1), 64, 127),
		ev(r(1, 2), r(1, 2), 62, 127),
	})
	expect(t, collect(t, perf.Perform(motif.Par(b, a))), []perf.Event{
		ev(motif.Int(0), motif.Int(1), 64, 127),
		ev(motif.Int(0), r(1, 2), 60, 127),
		ev(r(1, 2), r(1, 2), 62, 127),
	})
}

func TestControls(t *testing.T) {
	flute := motif.Program(motif.Flute)
	m := motif.Line(
		motif.WithTempo(motif.Int(2), q(c4)),
		motif.Trans(motif.OctaveInterval, q(c4)),
		motif.WithInstrument(flute, q(c4)),
	)
	want := []perf.Event{
		ev(motif.Int(0), r(1, 4), 60, 127),
		ev(r(1, 4), r(1, 2), 72, 127),
		{Start: r(3, 4), Instrument: flute, Pitch: 60, Dur: r(1, 2), Volume: 127},
	}
	expect(t, collect(t, perf.Perform(m)), want)
}

func TestContextOptions(t *testing.T) {
	ctx := perf.DefaultContext[motif.Pitch]().
		WithTempo(perf.Metro(60, motif.Quarter)).
		WithVolume(90).
		WithTranspose(motif.Tone)
	got := collect(t, perf.PerformWithContext(q(c4), ctx))
	expect(t, got, []perf.Event{ev(motif.Int(0), motif.Int(1), 62, 90)})
	if w := perf.Metro(120, motif.Quarter); w != motif.Int(2) {
		t.Fatalf("whole note at 120 bpm lasts %v seconds", w)
	}
	got = collect(t, perf.PerformWithContext(q(c4), perf.Context[motif.Pitch]{Volume: 1}))
	expect(t, got, []perf.Event{ev(motif.Int(0), r(1, 2), 60, 1)})
}

func TestRestsOnly(t *testing.T) {
	m := motif.Line(motif.Rest[motif.Pitch](motif.Int(136)), motif.Rest[motif.Pitch](motif.Half))
	p, d := perf.Perf(m, perf.DefaultContext[motif.Pitch]())
	if got := collect(t, p); len(got) != 0 {
		t.Fatalf("rests produced %v", got)
	}
	if v, _ := d.Value(); v != motif.Int(273) {
		t.Fatalf("got %v seconds, want 273", v)
	}
}

func TestInfinitePerformance(t *testing.T) {
	m := motif.Forever(q(c4))
	p := perf.Perform(m)
	if !p.IsInfinite() {
		t.Fatal("performance of forever should be infinite")
	}
	if _, err := p.Collect(); !errors.Is(err, perf.ErrInfinitePerformance) {
		t.Fatalf("collecting an infinite performance: got %v", err)
	}
	want := []perf.Event{
		ev(motif.Int(0), r(1, 2), 60, 127),
		ev(r(1, 2), r(1, 2), 60, 127),
		ev(motif.Int(1), r(1, 2), 60, 127),
	}
	expect(t, collect(t, p.Take(3)), want)
	expect(t, collect(t, p.Take(3)), want)
	expect(t, collect(t, p.Until(r(3, 2))), want)
}

func TestInfiniteVoices(t *testing.T) {
	m := motif.Par(motif.Forever(q(c4)), motif.Seq(motif.Forever(q(e4)), q(g4)))
	got := collect(t, perf.Perform(m).Take(4))
	expect(t, got, []perf.Event{
		ev(motif.Int(0), r(1, 2), 60, 127),
		ev(motif.Int(0), r(1, 2), 64, 127),
		ev(r(1, 2), r(1, 2), 60, 127),
		ev(r(1, 2), r(1, 2), 64, 127),
	})
}

func TestLazyLineOfScale(t *testing.T) {
	scale := motif.LazyLine(motif.MapStream(
		motif.Iterate(c4.Abs(), func(a motif.AbsPitch) motif.AbsPitch { return a.DiatonicTrans(motif.DefaultKey, 1) }),
		func(a motif.AbsPitch) motif.Music[motif.Pitch] { return q(a.Pitch()) }))
	got := collect(t, perf.Perform(motif.Take(scale, motif.Whole)))
	var pitches []motif.AbsPitch
	for _, e := range got {
		pitches = append(pitches, e.Pitch)
	}
	if want := []motif.AbsPitch{60, 62, 64, 65}; !reflect.DeepEqual(pitches, want) {
		t.Fatalf("got %v, want %v", pitches, want)
	}
}

func TestTakeDropReconstructs(t *testing.T) {
	m := motif.Line(q(c4), motif.Note(motif.Half, d4), q(e4))
	for _, n := range []motif.Dur{motif.Quarter, motif.DottedHalf, motif.Whole} {
		joined := motif.Seq(motif.Take(m, n), motif.Drop(m, n))
		var got []perf.Event
		for _, e := range collect(t, perf.Perform(joined)) {
			if !e.Dur.IsZero() {
				got = append(got, e)
			}
		}
		expect(t, got, collect(t, perf.Perform(m)))
	}
}

func TestReverseTwicePerformsTheSame(t *testing.T) {
	m := motif.Line(q(c4), motif.Par(motif.Note(motif.Half, e4), q(g4)))
	expect(t, collect(t, perf.Perform(motif.Reverse(motif.Reverse(m)))), collect(t, perf.Perform(m)))
}

func TestAttrNote(t *testing.T) {
	n := motif.AttrNote{Pitch: c4, Attrs: []motif.NoteAttribute{motif.NoteVolume(10), motif.Params{1.5}, motif.Fingering(2)}}
	got := collect(t, perf.Perform(motif.Note(motif.Quarter, n)))
	want := ev(motif.Int(0), r(1, 2), 60, 10)
	want.Params = []float64{1.5}
	expect(t, got, []perf.Event{want})
}

func TestUnknownPlayerFallsBack(t *testing.T) {
	m := motif.WithPlayer("nobody", q(c4))
	expect(t, collect(t, perf.Perform(m)), []perf.Event{ev(motif.Int(0), r(1, 2), 60, 127)})
	names := perf.DefaultPlayers[motif.Pitch]().Names()
	if !reflect.DeepEqual(names, []string{"default", "fancy"}) {
		t.Fatalf("got players %v", names)
	}
}

func TestSummarize(t *testing.T) {
	s, err := perf.Summarize(perf.Perform(motif.Line(q(c4), motif.Note(motif.Half, e4))))
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if s.Events != 2 || s.End != r(3, 2) || s.MinPitch != 60 || s.MaxPitch != 64 || s.MeanPitch != 62 || s.TotalDur != 1.5 {
		t.Fatalf("got %+v", s)
	}
	if !reflect.DeepEqual(s.Instruments, []motif.InstrumentName{piano}) {
		t.Fatalf("got instruments %v", s.Instruments)
	}
	if _, err := perf.Summarize(perf.Perform(motif.Forever(q(c4)))); !errors.Is(err, perf.ErrInfinitePerformance) {
		t.Fatalf("summarizing an infinite performance: got %v", err)
	}
}
