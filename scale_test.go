package motif_test

import (
	"reflect"
	"testing"

	"github.com/vsariola/motif"
)

func diatonic(key motif.KeySig, degrees int, ps ...motif.Pitch) []motif.Pitch {
	ret := make([]motif.Pitch, len(ps))
	for i, p := range ps {
		ret[i] = p.Abs().DiatonicTrans(key, degrees).Pitch()
	}
	return ret
}

func TestDiatonicTrans(t *testing.T) {
	c4 := motif.NewPitch(motif.C, 4)
	d4 := motif.NewPitch(motif.D, 4)
	e4 := motif.NewPitch(motif.E, 4)
	a4 := motif.NewPitch(motif.A, 4)
	tests := []struct {
		name    string
		key     motif.KeySig
		degrees int
		in      []motif.Pitch
		want    []motif.Pitch
	}{
		{"CMajor", motif.MajorKey(motif.C), 2, []motif.Pitch{c4, d4, e4},
			[]motif.Pitch{e4, motif.NewPitch(motif.F, 4), motif.NewPitch(motif.G, 4)}},
		{"GMajor", motif.MajorKey(motif.G), 2, []motif.Pitch{c4, d4, e4},
			[]motif.Pitch{e4, motif.NewPitch(motif.Fs, 4), motif.NewPitch(motif.G, 4)}},
		{"NotInScale", motif.MajorKey(motif.C), 2, []motif.Pitch{c4, motif.NewPitch(motif.Ds, 4), e4},
			[]motif.Pitch{e4, motif.NewPitch(motif.F, 4), motif.NewPitch(motif.G, 4)}},
		{"WrapAroundOctave", motif.MajorKey(motif.C), 3, []motif.Pitch{c4, d4, a4},
			[]motif.Pitch{motif.NewPitch(motif.F, 4), motif.NewPitch(motif.G, 4), motif.NewPitch(motif.D, 5)}},
		{"MoreThanOctave", motif.MajorKey(motif.C), 10, []motif.Pitch{c4, d4, a4},
			[]motif.Pitch{motif.NewPitch(motif.F, 5), motif.NewPitch(motif.G, 5), motif.NewPitch(motif.D, 6)}},
		{"Down", motif.MajorKey(motif.C), -2, []motif.Pitch{e4, a4},
			[]motif.Pitch{c4, motif.NewPitch(motif.F, 4)}},
		{"Zero", motif.MinorKey(motif.A), 0, []motif.Pitch{motif.NewPitch(motif.Cs, 4)},
			[]motif.Pitch{motif.NewPitch(motif.Cs, 4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diatonic(tt.key, tt.degrees, tt.in...); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScale(t *testing.T) {
	got := motif.MajorKey(motif.G).Scale()
	want := []motif.PitchClass{motif.G, motif.A, motif.B, motif.C, motif.D, motif.E, motif.Fs, motif.G}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("G major scale was %v, want %v", got, want)
	}
}

func TestParseKeySig(t *testing.T) {
	tests := map[string]motif.KeySig{
		"G":       motif.MajorKey(motif.G),
		"A minor": motif.MinorKey(motif.A),
		"Bb maj":  motif.MajorKey(motif.Bf),
	}
	for s, want := range tests {
		got, err := motif.ParseKeySig(s)
		if err != nil || got != want {
			t.Errorf("ParseKeySig(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := motif.ParseKeySig("G dorian"); err == nil {
		t.Error("unknown mode should be rejected")
	}
}
