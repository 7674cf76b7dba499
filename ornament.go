package motif

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperand is returned by operations applied to a kind of
	// music they do not support.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrInvalidTrill is returned for trill options that cannot subdivide a
	// note.
	ErrInvalidTrill = errors.New("invalid trill options")
)

func kindOf[P any](m Music[P]) string {
	switch m := m.(type) {
	case Primitive[P]:
		if m.IsRest {
			return "a rest"
		}
		return "a note"
	case Sequential[P]:
		return "a sequential composition"
	case Parallel[P]:
		return "a parallel composition"
	case Modify[P]:
		return "a modified music"
	case Lazy[P]:
		return "a lazy sequence"
	}
	return fmt.Sprintf("%T", m)
}

// GraceNote prepends a grace note to a single note. The grace note takes the
// given fraction of the note's duration and is transposed by offset; the
// principal note keeps the rest. The fraction must be between 0 and 1.
func GraceNote(m Music[Pitch], offset Interval, fraction Ratio) (Music[Pitch], error) {
	p, ok := m.(Primitive[Pitch])
	if !ok || p.IsRest {
		return nil, fmt.Errorf("grace note on %s: %w", kindOf(m), ErrInvalidOperand)
	}
	if fraction.Sign() < 0 || Int(1).Less(fraction) {
		return nil, fmt.Errorf("grace note fraction %v outside 0 to 1: %w", fraction, ErrInvalidOperand)
	}
	grace := p.Dur.Mul(fraction)
	return Seq(
		Note(grace, p.Payload.Trans(offset)),
		Note(p.Dur.Sub(grace), p.Payload),
	), nil
}

// Trill alternates a single note with the note transposed by interval,
// starting on the principal note. A modified note is trilled inside its
// controls; duration options are rescaled by an enclosing Tempo.
func Trill(m Music[Pitch], interval Interval, opts TrillOptions) (Music[Pitch], error) {
	switch m := m.(type) {
	case Primitive[Pitch]:
		if m.IsRest {
			return nil, fmt.Errorf("trill on %s: %w", kindOf[Pitch](m), ErrInvalidOperand)
		}
		durs, err := trillDurs(m.Dur, opts)
		if err != nil {
			return nil, err
		}
		notes := make([]Music[Pitch], len(durs))
		aux := m.Payload.Trans(interval)
		for i, d := range durs {
			if i%2 == 0 {
				notes[i] = Note(d, m.Payload)
			} else {
				notes[i] = Note(d, aux)
			}
		}
		return Line(notes...), nil
	case Modify[Pitch]:
		inner := opts
		if t, ok := m.Control.(Tempo); ok {
			if d, ok := opts.Dur(); ok {
				inner = TrillDur(d.Mul(t.Ratio))
			}
		}
		trilled, err := Trill(m.Music, interval, inner)
		if err != nil {
			return nil, err
		}
		return WithControl(m.Control, trilled), nil
	}
	return nil, fmt.Errorf("trill on %s: %w", kindOf(m), ErrInvalidOperand)
}

// trillDurs splits d according to the options. With a fixed sub-note
// duration the last piece absorbs the remainder.
func trillDurs(d Dur, opts TrillOptions) ([]Dur, error) {
	if n, ok := opts.Count(); ok {
		if n < 0 {
			return nil, fmt.Errorf("trill of %d notes: %w", n, ErrInvalidTrill)
		}
		ret := make([]Dur, n)
		for i := range ret {
			ret[i] = d.DivInt(int64(n))
		}
		return ret, nil
	}
	single, _ := opts.Dur()
	if single.Sign() <= 0 {
		return nil, fmt.Errorf("trill of %v notes: %w", single, ErrInvalidTrill)
	}
	n := d.Div(single).Floor()
	ret := make([]Dur, n, n+1)
	for i := range ret {
		ret[i] = single
	}
	if rem := d.Sub(single.MulInt(n)); !rem.IsZero() {
		ret = append(ret, rem)
	}
	return ret, nil
}

// Roll repeats a single note, i.e. a trill with a zero interval.
func Roll(m Music[Pitch], opts TrillOptions) (Music[Pitch], error) {
	return Trill(m, Unison, opts)
}
