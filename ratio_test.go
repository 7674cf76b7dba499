package motif_test

import (
	"math"
	"testing"

	"github.com/vsariola/motif"
)

func TestRatioNormalization(t *testing.T) {
	tests := []struct {
		got, want motif.Ratio
	}{
		{motif.NewRatio(2, 4), motif.NewRatio(1, 2)},
		{motif.NewRatio(1, -2), motif.NewRatio(-1, 2)},
		{motif.NewRatio(0, 5), motif.Ratio{}},
		{motif.Int(0), motif.Ratio{}},
		{motif.Quarter.Add(motif.Quarter), motif.Half},
		{motif.Quarter.SatSub(motif.Half), motif.Ratio{}},
		{motif.Half.Sub(motif.Quarter), motif.Quarter},
		{motif.Half.Mul(motif.Half), motif.Quarter},
		{motif.Quarter.Div(motif.Half), motif.Half},
		{motif.Dotted(motif.Quarter), motif.DottedQuarter},
		{motif.Double(motif.Quarter), motif.Half},
		{motif.Halve(motif.Quarter), motif.Eighth},
	}
	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("case %d: got %v, want %v", i, tt.got, tt.want)
		}
	}
}

func TestRatioFloor(t *testing.T) {
	if f := motif.NewRatio(7, 2).Floor(); f != 3 {
		t.Errorf("floor of 7/2 was %d, want 3", f)
	}
	if f := motif.NewRatio(-3, 2).Floor(); f != -2 {
		t.Errorf("floor of -3/2 was %d, want -2", f)
	}
	if f := motif.Int(4).Floor(); f != 4 {
		t.Errorf("floor of 4 was %d, want 4", f)
	}
}

func TestParseRatio(t *testing.T) {
	tests := map[string]motif.Ratio{
		"3/8":   motif.NewRatio(3, 8),
		" 2/4 ": motif.Half,
		"0.25":  motif.Quarter,
		"2":     motif.Int(2),
		"-1/3":  motif.NewRatio(-1, 3),
	}
	for s, want := range tests {
		got, err := motif.ParseRatio(s)
		if err != nil {
			t.Errorf("ParseRatio(%q) failed: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseRatio(%q) = %v, want %v", s, got, want)
		}
	}
	for _, s := range []string{"", "x", "1/0", "1/x"} {
		if _, err := motif.ParseRatio(s); err == nil {
			t.Errorf("ParseRatio(%q) should have failed", s)
		}
	}
}

func TestRatioString(t *testing.T) {
	if s := motif.DottedQuarter.String(); s != "3/8" {
		t.Errorf("got %q, want 3/8", s)
	}
	if s := motif.Int(2).String(); s != "2" {
		t.Errorf("got %q, want 2", s)
	}
}

func TestParseDur(t *testing.T) {
	d, err := motif.ParseDur("dotted-eighth")
	if err != nil || d != motif.DottedEighth {
		t.Errorf("got %v, %v; want %v", d, err, motif.DottedEighth)
	}
	if _, err := motif.ParseDur("-1/4"); err == nil {
		t.Error("negative duration should be rejected")
	}
}

func TestMeasure(t *testing.T) {
	inf := motif.Infinite[motif.Dur]()
	q := motif.Finite(motif.Quarter)
	if !q.Add(inf).IsInfinite() || !inf.Mul(q).IsInfinite() {
		t.Error("infinite should absorb finite operands")
	}
	if q.Max(inf) != inf || inf.Cmp(q) != 1 {
		t.Error("infinite should be greater than any finite value")
	}
	if v, ok := q.Add(q).Value(); !ok || v != motif.Half {
		t.Errorf("got %v, want %v", v, motif.Half)
	}
	if !motif.MaxOf(q, inf, q).IsInfinite() {
		t.Error("MaxOf should be infinite when any operand is")
	}
}

func TestRatioOverflowPanics(t *testing.T) {
	big := motif.NewRatio(1, math.MaxInt64)
	tests := []struct {
		name string
		f    func() motif.Ratio
	}{
		{"add", func() motif.Ratio { return motif.Int(math.MaxInt64).Add(motif.Int(1)) }},
		{"sub", func() motif.Ratio { return motif.Int(math.MinInt64).Sub(motif.Int(1)) }},
		{"denominator", func() motif.Ratio { return big.Add(motif.NewRatio(1, math.MaxInt64-1)) }},
		{"mul", func() motif.Ratio { return motif.Int(1 << 40).Mul(motif.Int(1 << 40)) }},
		{"neg", func() motif.Ratio { return motif.Int(math.MinInt64).Neg() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != motif.ErrOverflow {
					t.Fatalf("recovered %v, want ErrOverflow", r)
				}
			}()
			got := tt.f()
			t.Fatalf("got %v, want a panic", got)
		})
	}
}

func TestRatioCmpLarge(t *testing.T) {
	a := motif.NewRatio(math.MaxInt64, 3)
	b := motif.NewRatio(math.MaxInt64-1, 3)
	if a.Cmp(b) != 1 || b.Cmp(a) != -1 || a.Cmp(a) != 0 {
		t.Fatalf("comparing %v and %v failed", a, b)
	}
	if c := a.Neg().Cmp(b.Neg()); c != -1 {
		t.Fatalf("-a cmp -b = %d, want -1", c)
	}
	if c := motif.NewRatio(1, math.MaxInt64).Cmp(motif.NewRatio(1, math.MaxInt64-1)); c != -1 {
		t.Fatalf("1/max cmp 1/(max-1) = %d, want -1", c)
	}
	if c := motif.Int(math.MinInt64).Cmp(motif.Int(math.MaxInt64)); c != -1 {
		t.Fatalf("min cmp max = %d, want -1", c)
	}
}
