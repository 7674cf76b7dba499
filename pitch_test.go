package motif_test

import (
	"errors"
	"testing"

	"github.com/vsariola/motif"
)

func TestAbsPitch(t *testing.T) {
	tests := []struct {
		pitch motif.Pitch
		want  motif.AbsPitch
	}{
		{motif.NewPitch(motif.C, 4), 60},
		{motif.NewPitch(motif.A, 4), 69},
		{motif.NewPitch(motif.Cf, 4), 59},
		{motif.NewPitch(motif.Bs, 3), 60},
		{motif.NewPitch(motif.C, -1), 0},
		{motif.NewPitch(motif.G, 9), 127},
	}
	for _, tt := range tests {
		if got := tt.pitch.Abs(); got != tt.want {
			t.Errorf("%v.Abs() = %v, want %v", tt.pitch, got, tt.want)
		}
	}
}

func TestPitchClipping(t *testing.T) {
	a, err := motif.NewPitch(motif.Cff, -1).AbsChecked()
	if !errors.Is(err, motif.ErrPitchTooLow) || a != 0 {
		t.Errorf("got %v, %v; want 0 and ErrPitchTooLow", a, err)
	}
	a, err = motif.NewPitch(motif.Gs, 9).AbsChecked()
	if !errors.Is(err, motif.ErrPitchTooHigh) || a != motif.MaxAbsPitch {
		t.Errorf("got %v, %v; want 127 and ErrPitchTooHigh", a, err)
	}
	if got := motif.AbsPitch(120).Add(10); got != 127 {
		t.Errorf("saturating add gave %v", got)
	}
	if got := motif.AbsPitch(3).Sub(5); got != 0 {
		t.Errorf("saturating sub gave %v", got)
	}
	_, err = motif.AbsPitch(120).CheckedAdd(10)
	var clip *motif.ClipError
	if !errors.As(err, &clip) || clip.ClipTo() != 127 || clip.Value != 130 {
		t.Errorf("checked add should report the upper bound, got %v", err)
	}
	if _, err := motif.AbsPitch(3).CheckedSub(3); err != nil {
		t.Errorf("checked sub to 0 failed: %v", err)
	}
}

func TestFrequency(t *testing.T) {
	if f := motif.NewPitch(motif.A, 4).Frequency(); f != 440 {
		t.Errorf("A4 = %v Hz", f)
	}
	if f := motif.NewPitch(motif.A, 5).Frequency(); f != 880 {
		t.Errorf("A5 = %v Hz", f)
	}
}

func TestParsePitch(t *testing.T) {
	tests := map[string]motif.Pitch{
		"C4":   motif.NewPitch(motif.C, 4),
		"Cs4":  motif.NewPitch(motif.Cs, 4),
		"C#4":  motif.NewPitch(motif.Cs, 4),
		"Bb-1": motif.NewPitch(motif.Bf, -1),
		"eff2": motif.NewPitch(motif.Eff, 2),
	}
	for s, want := range tests {
		got, err := motif.ParsePitch(s)
		if err != nil {
			t.Errorf("ParsePitch(%q) failed: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePitch(%q) = %v, want %v", s, got, want)
		}
	}
	for _, s := range []string{"", "4", "H4", "C10", "Cx4"} {
		if _, err := motif.ParsePitch(s); err == nil {
			t.Errorf("ParsePitch(%q) should have failed", s)
		}
	}
}

func TestAbsPitchSpelling(t *testing.T) {
	if p := motif.AbsPitch(61).Pitch(); p != motif.NewPitch(motif.Cs, 4) {
		t.Errorf("61 spelled as %v", p)
	}
	if p := motif.NewPitch(motif.Df, 4).Trans(motif.Unison); p != motif.NewPitch(motif.Cs, 4) {
		t.Errorf("Df4 transposed by unison gave %v", p)
	}
}

func TestPercussionKey(t *testing.T) {
	if k := motif.AcousticBassDrum.Key(); k != 35 {
		t.Errorf("acoustic bass drum on key %v", k)
	}
}

func TestParseInstrument(t *testing.T) {
	tests := map[string]motif.InstrumentName{
		"Acoustic Grand Piano": motif.Program(motif.AcousticGrandPiano),
		"acoustic-grand-piano": motif.Program(motif.AcousticGrandPiano),
		"drums":                motif.Percussion,
		"custom:theremin":      motif.Custom("theremin"),
	}
	for s, want := range tests {
		got, err := motif.ParseInstrument(s)
		if err != nil || got != want {
			t.Errorf("ParseInstrument(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := motif.ParseInstrument("kazoo of doom"); err == nil {
		t.Error("unknown instrument should be rejected")
	}
	if !motif.Program(1).Less(motif.Percussion) || !motif.Percussion.Less(motif.Custom("a")) {
		t.Error("instruments should order programs, percussion, custom")
	}
}
