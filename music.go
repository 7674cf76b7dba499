package motif

import (
	"fmt"
	"strings"
)

type (
	// Music is a piece of music as an expression tree over note payloads of
	// type P. Its values are one of Primitive, Sequential, Parallel, Modify
	// and Lazy. Music values are immutable; every transformation builds a
	// new tree, sharing unchanged subtrees.
	Music[P any] interface {
		music(P)
	}

	// Primitive is a note with a payload, or a rest when IsRest is set.
	Primitive[P any] struct {
		Dur     Dur
		Payload P
		IsRest  bool
	}

	// Sequential plays Left, then Right starting exactly when Left ends.
	Sequential[P any] struct {
		Left, Right Music[P]
	}

	// Parallel plays Left and Right starting at the same instant.
	Parallel[P any] struct {
		Left, Right Music[P]
	}

	// Modify scopes a Control to the music it wraps.
	Modify[P any] struct {
		Control Control
		Music   Music[P]
	}

	// Lazy is a sequential composition of a possibly infinite stream of
	// music. The stream is only walked as far as consumers need.
	Lazy[P any] struct {
		Items Stream[Music[P]]
	}
)

func (Primitive[P]) music(P)  {}
func (Sequential[P]) music(P) {}
func (Parallel[P]) music(P)   {}
func (Modify[P]) music(P)     {}
func (Lazy[P]) music(P)       {}

func Note[P any](d Dur, p P) Music[P] {
	return Primitive[P]{Dur: d, Payload: p}
}

func Rest[P any](d Dur) Music[P] {
	return Primitive[P]{Dur: d, IsRest: true}
}

func Seq[P any](left, right Music[P]) Music[P] {
	return Sequential[P]{Left: left, Right: right}
}

func Par[P any](left, right Music[P]) Music[P] {
	return Parallel[P]{Left: left, Right: right}
}

func WithControl[P any](c Control, m Music[P]) Music[P] {
	return Modify[P]{Control: c, Music: m}
}

// Line composes the music sequentially. It folds from the right with a
// zero-length rest as the identity, so Line(a, b) is a, then b, then rest 0.
func Line[P any](ms ...Music[P]) Music[P] {
	ret := Rest[P](Dur{})
	for i := len(ms) - 1; i >= 0; i-- {
		ret = Seq(ms[i], ret)
	}
	return ret
}

// LazyLine composes a stream of music sequentially without walking it.
func LazyLine[P any](items Stream[Music[P]]) Music[P] {
	return Lazy[P]{Items: items}
}

// Chord composes the music in parallel.
func Chord[P any](ms ...Music[P]) Music[P] {
	ret := Rest[P](Dur{})
	for i := len(ms) - 1; i >= 0; i-- {
		ret = Par(ms[i], ret)
	}
	return ret
}

// Folder holds the functions Fold applies to each kind of node. Modify is
// applied after the wrapped music has been folded, so controls compose
// from the outside in. Lazy receives the folded items as a stream; when it
// is nil, bounded streams are folded with Seq and unbounded ones panic.
type Folder[P, R any] struct {
	Prim   func(Primitive[P]) R
	Seq    func(left, right R) R
	Par    func(left, right R) R
	Modify func(c Control, inner R) R
	Lazy   func(items Stream[R]) R
}

// Fold is the generalized recursion over the music tree.
func Fold[P, R any](m Music[P], f Folder[P, R]) R {
	switch m := m.(type) {
	case Primitive[P]:
		return f.Prim(m)
	case Sequential[P]:
		return f.Seq(Fold(m.Left, f), Fold(m.Right, f))
	case Parallel[P]:
		return f.Par(Fold(m.Left, f), Fold(m.Right, f))
	case Modify[P]:
		return f.Modify(m.Control, Fold(m.Music, f))
	case Lazy[P]:
		items := MapStream(m.Items, func(x Music[P]) R { return Fold(x, f) })
		if f.Lazy != nil {
			return f.Lazy(items)
		}
		if items.Unbounded {
			panic("motif: fold over an unbounded sequence")
		}
		var acc R
		first := true
		for x := range items.All() {
			if first {
				acc, first = x, false
			} else {
				acc = f.Seq(acc, x)
			}
		}
		if first {
			return f.Prim(Primitive[P]{IsRest: true})
		}
		return acc
	}
	panic(fmt.Sprintf("motif: unknown music node %T", m))
}

// Map transforms every payload, keeping the structure. Lazy streams are
// mapped lazily.
func Map[P, Q any](m Music[P], f func(P) Q) Music[Q] {
	switch m := m.(type) {
	case Primitive[P]:
		if m.IsRest {
			return Rest[Q](m.Dur)
		}
		return Note(m.Dur, f(m.Payload))
	case Sequential[P]:
		return Seq(Map(m.Left, f), Map(m.Right, f))
	case Parallel[P]:
		return Par(Map(m.Left, f), Map(m.Right, f))
	case Modify[P]:
		return WithControl(m.Control, Map(m.Music, f))
	case Lazy[P]:
		return LazyLine(MapStream(m.Items, func(x Music[P]) Music[Q] { return Map(x, f) }))
	}
	panic(fmt.Sprintf("motif: unknown music node %T", m))
}

// Duration returns the length of the music in whole notes. Tempo controls
// divide the duration of the music they wrap; an unbounded Lazy stream is
// Infinite without being walked.
func Duration[P any](m Music[P]) Measure[Dur] {
	return Fold(m, Folder[P, Measure[Dur]]{
		Prim: func(p Primitive[P]) Measure[Dur] { return Finite(p.Dur) },
		Seq:  func(l, r Measure[Dur]) Measure[Dur] { return l.Add(r) },
		Par:  func(l, r Measure[Dur]) Measure[Dur] { return l.Max(r) },
		Modify: func(c Control, d Measure[Dur]) Measure[Dur] {
			if t, ok := c.(Tempo); ok {
				return d.Map(func(v Dur) Dur { return v.Div(t.Ratio) })
			}
			return d
		},
		Lazy: func(items Stream[Measure[Dur]]) Measure[Dur] {
			if items.Unbounded {
				return Infinite[Dur]()
			}
			total := Finite(Dur{})
			for d := range items.All() {
				if total = total.Add(d); total.IsInfinite() {
					break
				}
			}
			return total
		},
	})
}

// IsZeroDuration reports whether m is a note or rest of length zero.
func IsZeroDuration[P any](m Music[P]) bool {
	p, ok := m.(Primitive[P])
	return ok && p.Dur.IsZero()
}

// String renders the tree in a compact prefix notation, mostly for
// debugging. Lazy streams are not walked.
func String[P any](m Music[P]) string {
	var b strings.Builder
	writeMusic(&b, m)
	return b.String()
}

func writeMusic[P any](b *strings.Builder, m Music[P]) {
	switch m := m.(type) {
	case Primitive[P]:
		if m.IsRest {
			fmt.Fprintf(b, "rest(%v)", m.Dur)
		} else {
			fmt.Fprintf(b, "note(%v, %v)", m.Dur, m.Payload)
		}
	case Sequential[P]:
		b.WriteString("(")
		writeMusic(b, m.Left)
		b.WriteString(" :+: ")
		writeMusic(b, m.Right)
		b.WriteString(")")
	case Parallel[P]:
		b.WriteString("(")
		writeMusic(b, m.Left)
		b.WriteString(" :=: ")
		writeMusic(b, m.Right)
		b.WriteString(")")
	case Modify[P]:
		fmt.Fprintf(b, "modify(%v, ", m.Control)
		writeMusic(b, m.Music)
		b.WriteString(")")
	case Lazy[P]:
		if m.Items.Unbounded {
			b.WriteString("lazy(...)")
		} else {
			b.WriteString("lazy(..)")
		}
	}
}
