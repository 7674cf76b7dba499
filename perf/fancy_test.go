package perf_test

import (
	"testing"

	"github.com/vsariola/motif"
	"github.com/vsariola/motif/perf"
)

func fancy(vol motif.Volume) perf.Context[motif.Pitch] {
	return perf.DefaultContext[motif.Pitch]().WithPlayer(perf.FancyPlayerName).WithVolume(vol)
}

func phrase(m motif.Music[motif.Pitch], attrs ...motif.PhraseAttribute) motif.Music[motif.Pitch] {
	return motif.WithPhrase(attrs, m)
}

func TestDefaultPhrase(t *testing.T) {
	m := phrase(q(c4), motif.Accent{Ratio: r(1, 2)}, motif.Staccato{Ratio: r(1, 2)}, motif.Crescendo{Ratio: motif.Int(1)})
	expect(t, collect(t, perf.Perform(m)), []perf.Event{ev(motif.Int(0), r(1, 4), 60, 63)})
}

func TestCrescendo(t *testing.T) {
	line := motif.Line(q(c4), q(d4), q(e4), q(f4))
	got := collect(t, perf.PerformWithContext(phrase(line, motif.Crescendo{Ratio: r(1, 2)}), fancy(80)))
	want := []perf.Event{
		ev(motif.Int(0), r(1, 2), 60, 80),
		ev(r(1, 2), r(1, 2), 62, 90),
		ev(motif.Int(1), r(1, 2), 64, 100),
		ev(r(3, 2), r(1, 2), 65, 110),
	}
	expect(t, got, want)
	got = collect(t, perf.PerformWithContext(phrase(line, motif.Diminuendo{Ratio: r(1, 2)}), fancy(80)))
	want[1].Volume, want[2].Volume, want[3].Volume = 70, 60, 50
	expect(t, got, want)
}

func TestLoudness(t *testing.T) {
	m := phrase(motif.Line(q(c4), q(d4)), motif.Loud{Loudness: motif.DynP})
	expect(t, collect(t, perf.PerformWithContext(m, fancy(127))), []perf.Event{
		ev(motif.Int(0), r(1, 2), 60, 60),
		ev(r(1, 2), r(1, 2), 62, 60),
	})
}

func TestRitardando(t *testing.T) {
	m := motif.Seq(phrase(motif.Line(q(c4), q(d4)), motif.Ritardando{Ratio: r(1, 2)}), q(e4))
	expect(t, collect(t, perf.PerformWithContext(m, fancy(127))), []perf.Event{
		ev(motif.Int(0), r(5, 8), 60, 127),
		ev(r(5, 8), r(7, 8), 62, 127),
		ev(r(3, 2), r(1, 2), 64, 127),
	})
}

func TestAccelerando(t *testing.T) {
	m := motif.Seq(phrase(motif.Line(q(c4), q(d4)), motif.Accelerando{Ratio: r(1, 2)}), q(e4))
	expect(t, collect(t, perf.PerformWithContext(m, fancy(127))), []perf.Event{
		ev(motif.Int(0), r(3, 8), 60, 127),
		ev(r(3, 8), r(1, 8), 62, 127),
		ev(r(1, 2), r(1, 2), 64, 127),
	})
}

func TestSlurredAndPedal(t *testing.T) {
	m := phrase(motif.Line(q(c4), q(d4)), motif.Slurred{Ratio: motif.Int(2)})
	expect(t, collect(t, perf.PerformWithContext(m, fancy(127))), []perf.Event{
		ev(motif.Int(0), motif.Int(1), 60, 127),
		ev(r(1, 2), r(1, 2), 62, 127),
	})
	m = phrase(motif.Line(q(c4), q(d4), motif.Note(motif.Half, e4)), motif.Pedal)
	expect(t, collect(t, perf.PerformWithContext(m, fancy(127))), []perf.Event{
		ev(motif.Int(0), motif.Int(2), 60, 127),
		ev(r(1, 2), r(3, 2), 62, 127),
		ev(motif.Int(1), motif.Int(1), 64, 127),
	})
}

func TestArpeggio(t *testing.T) {
	chord := motif.Chord(q(g4), q(c4), q(e4))
	expect(t, collect(t, perf.PerformWithContext(phrase(chord, motif.ArpeggioUp), fancy(127))), []perf.Event{
		ev(motif.Int(0), r(1, 8), 60, 127),
		ev(r(1, 8), r(1, 8), 64, 127),
		ev(r(1, 4), r(1, 4), 67, 127),
	})
	expect(t, collect(t, perf.PerformWithContext(phrase(chord, motif.ArpeggioDown), fancy(127))), []perf.Event{
		ev(motif.Int(0), r(1, 8), 67, 127),
		ev(r(1, 8), r(1, 8), 64, 127),
		ev(r(1, 4), r(1, 4), 60, 127),
	})
	pair := motif.Chord(q(g4), q(c4))
	expect(t, collect(t, perf.PerformWithContext(phrase(pair, motif.ArpeggioUp), fancy(127))), []perf.Event{
		ev(motif.Int(0), r(1, 2), 67, 127),
		ev(motif.Int(0), r(1, 2), 60, 127),
	})
}

func TestArpeggiateEqualSlices(t *testing.T) {
	chord := []perf.Event{
		ev(motif.Int(0), motif.Int(3), 67, 127),
		ev(motif.Int(0), motif.Int(3), 60, 127),
		ev(motif.Int(0), motif.Int(3), 64, 127),
	}
	expect(t, perf.Arpeggiate(chord, true), []perf.Event{
		ev(motif.Int(0), motif.Int(1), 60, 127),
		ev(motif.Int(1), motif.Int(1), 64, 127),
		ev(motif.Int(2), motif.Int(1), 67, 127),
	})
}

func TestTrillOrnament(t *testing.T) {
	m := phrase(q(c4), motif.TrillOrnament{Options: motif.TrillDur(motif.Sixteenth)})
	expect(t, collect(t, perf.PerformWithContext(m, fancy(127))), []perf.Event{
		ev(motif.Int(0), r(1, 8), 60, 127),
		ev(r(1, 8), r(1, 8), 62, 127),
		ev(r(1, 4), r(1, 8), 60, 127),
		ev(r(3, 8), r(1, 8), 62, 127),
	})
}

func TestTrillEventOutOfKey(t *testing.T) {
	e := ev(motif.Int(1), motif.Int(1), 61, 127)
	got := perf.TrillEvent(e, motif.TrillCount(2), motif.DefaultKey)
	expect(t, got, []perf.Event{
		ev(motif.Int(1), r(1, 2), 61, 127),
		ev(r(3, 2), r(1, 2), 62, 127),
	})
	top := ev(motif.Int(0), motif.Int(1), 127, 127)
	expect(t, perf.TrillEvent(top, motif.TrillCount(2), motif.DefaultKey), []perf.Event{top})
}

func TestMordents(t *testing.T) {
	e := ev(motif.Int(2), motif.Int(1), 60, 127)
	expect(t, perf.MordentEvent(e, true, false, motif.DefaultKey), []perf.Event{
		ev(motif.Int(2), r(1, 8), 60, 127),
		ev(r(17, 8), r(1, 8), 62, 127),
		ev(r(9, 4), r(3, 4), 60, 127),
	})
	expect(t, perf.MordentEvent(e, false, false, motif.DefaultKey), []perf.Event{
		ev(motif.Int(2), r(1, 8), 60, 127),
		ev(r(17, 8), r(1, 8), 59, 127),
		ev(r(9, 4), r(3, 4), 60, 127),
	})
	expect(t, perf.MordentEvent(e, true, true, motif.DefaultKey), []perf.Event{
		ev(motif.Int(2), r(1, 8), 60, 127),
		ev(r(17, 8), r(1, 8), 62, 127),
		ev(r(9, 4), r(1, 8), 60, 127),
		ev(r(19, 8), r(1, 8), 62, 127),
		ev(r(5, 2), r(1, 2), 60, 127),
	})
}

func TestDiatonicPhrase(t *testing.T) {
	m := motif.WithKey(motif.MajorKey(motif.G), phrase(motif.Line(q(c4), q(d4)), motif.DiatonicTrans{Degrees: 2}))
	expect(t, collect(t, perf.PerformWithContext(m, fancy(127))), []perf.Event{
		ev(motif.Int(0), r(1, 2), 64, 127),
		ev(r(1, 2), r(1, 2), 66, 127),
	})
}

func TestInfinitePhrase(t *testing.T) {
	m := phrase(motif.Forever(q(c4)), motif.Crescendo{Ratio: motif.Int(1)}, motif.Slurred{Ratio: motif.Int(2)}, motif.Pedal)
	p := perf.PerformWithContext(m, fancy(100))
	if !p.IsInfinite() {
		t.Fatal("phrase of forever should be infinite")
	}
	expect(t, collect(t, p.Take(2)), []perf.Event{
		ev(motif.Int(0), motif.Int(1), 60, 100),
		ev(r(1, 2), motif.Int(1), 60, 100),
	})
}
