package motif

import "slices"

// sized is music that can still be cut to a length, the intermediate result
// of folding Take and Drop.
type sized[P any] func(n Dur) Music[P]

// Take returns the first n whole notes of the music. Tempo controls convert
// n into the units of the music they wrap. A Lazy stream is walked only
// until n has been consumed, so taking from infinite music terminates.
func Take[P any](m Music[P], n Dur) Music[P] {
	return Fold(m, Folder[P, sized[P]]{
		Prim: func(p Primitive[P]) sized[P] {
			return func(n Dur) Music[P] {
				if n.IsZero() {
					return Rest[P](Dur{})
				}
				q := p
				q.Dur = p.Dur.Min(n)
				return q
			}
		},
		Seq: func(l, r sized[P]) sized[P] {
			return func(n Dur) Music[P] {
				if n.IsZero() {
					return Rest[P](Dur{})
				}
				left := l(n)
				d, _ := Duration(left).Value()
				return Seq(left, r(n.SatSub(d)))
			}
		},
		Par: func(l, r sized[P]) sized[P] {
			return func(n Dur) Music[P] {
				if n.IsZero() {
					return Rest[P](Dur{})
				}
				return Par(l(n), r(n))
			}
		},
		Modify: func(c Control, inner sized[P]) sized[P] {
			return func(n Dur) Music[P] {
				if n.IsZero() {
					return Rest[P](Dur{})
				}
				if t, ok := c.(Tempo); ok {
					return WithControl(c, inner(n.Mul(t.Ratio)))
				}
				return WithControl(c, inner(n))
			}
		},
		Lazy: func(items Stream[sized[P]]) sized[P] {
			return func(n Dur) Music[P] {
				var taken []Music[P]
				remaining := n
				for item := range items.All() {
					if remaining.IsZero() {
						break
					}
					x := item(remaining)
					taken = append(taken, x)
					d, _ := Duration(x).Value()
					if d.Cmp(remaining) >= 0 {
						break
					}
					remaining = remaining.Sub(d)
				}
				return Line(taken...)
			}
		},
	})(n)
}

// Drop removes the first n whole notes of the music. Dropping from a Lazy
// stream is itself lazy.
func Drop[P any](m Music[P], n Dur) Music[P] {
	return Fold(m, Folder[P, sized[P]]{
		Prim: func(p Primitive[P]) sized[P] {
			return func(n Dur) Music[P] {
				q := p
				q.Dur = p.Dur.SatSub(n)
				return q
			}
		},
		Seq: func(l, r sized[P]) sized[P] {
			return func(n Dur) Music[P] {
				if n.IsZero() {
					return Seq(l(n), r(n))
				}
				right := r(Dur{})
				if d, ok := Duration(l(Dur{})).Value(); ok {
					right = r(n.SatSub(d))
				}
				return Seq(l(n), right)
			}
		},
		Par: func(l, r sized[P]) sized[P] {
			return func(n Dur) Music[P] {
				return Par(l(n), r(n))
			}
		},
		Modify: func(c Control, inner sized[P]) sized[P] {
			return func(n Dur) Music[P] {
				if t, ok := c.(Tempo); ok {
					return WithControl(c, inner(n.Mul(t.Ratio)))
				}
				return WithControl(c, inner(n))
			}
		},
		Lazy: func(items Stream[sized[P]]) sized[P] {
			return func(n Dur) Music[P] {
				return LazyLine(Stream[Music[P]]{Seq: func(yield func(Music[P]) bool) {
					remaining := n
					for item := range items.All() {
						if remaining.IsZero() {
							if !yield(item(Dur{})) {
								return
							}
							continue
						}
						d, ok := Duration(item(Dur{})).Value()
						if ok && d.Cmp(remaining) <= 0 {
							remaining = remaining.Sub(d)
							continue
						}
						x := item(remaining)
						remaining = Dur{}
						if !yield(x) {
							return
						}
					}
				}, Unbounded: items.Unbounded})
			}
		},
	})(n)
}

// RemoveZeros drops notes and rests of zero length from sequential and
// parallel compositions.
func RemoveZeros[P any](m Music[P]) Music[P] {
	return Fold(m, Folder[P, Music[P]]{
		Prim: func(p Primitive[P]) Music[P] { return p },
		Seq: func(l, r Music[P]) Music[P] {
			switch {
			case IsZeroDuration(l):
				return r
			case IsZeroDuration(r):
				return l
			}
			return Seq(l, r)
		},
		Par: func(l, r Music[P]) Music[P] {
			switch {
			case IsZeroDuration(l):
				return r
			case IsZeroDuration(r):
				return l
			}
			return Par(l, r)
		},
		Modify: WithControl[P],
		Lazy: func(items Stream[Music[P]]) Music[P] {
			return LazyLine(Stream[Music[P]]{Seq: func(yield func(Music[P]) bool) {
				for x := range items.All() {
					if IsZeroDuration(x) {
						continue
					}
					if !yield(x) {
						return
					}
				}
			}, Unbounded: items.Unbounded})
		},
	})
}

// Flatten lists the operands of the sequential compositions of m, dropping
// rests of zero length. Bounded Lazy streams are flattened too; an
// unbounded one is kept as a single element.
func Flatten[P any](m Music[P]) []Music[P] {
	switch m := m.(type) {
	case Primitive[P]:
		if m.IsRest && m.Dur.IsZero() {
			return nil
		}
	case Sequential[P]:
		return append(Flatten(m.Left), Flatten(m.Right)...)
	case Lazy[P]:
		if !m.Items.Unbounded {
			var ret []Music[P]
			for x := range m.Items.All() {
				ret = append(ret, Flatten(x)...)
			}
			return ret
		}
	}
	return []Music[P]{m}
}

// Retrograde plays a line backwards. Only the order of the flattened
// operands is reversed; parallel and modified operands are kept as they
// are.
func Retrograde[P any](m Music[P]) Music[P] {
	flat := Flatten(m)
	slices.Reverse(flat)
	return Line(flat...)
}

// Reverse reverses the music structurally. The shorter side of a parallel
// composition gets a leading rest so that both sides still end together;
// zero-length sides, such as the end of a Chord, are left alone. Reverse
// panics on unbounded music.
func Reverse[P any](m Music[P]) Music[P] {
	return Fold(m, Folder[P, Music[P]]{
		Prim: func(p Primitive[P]) Music[P] { return p },
		Seq:  func(l, r Music[P]) Music[P] { return Seq(r, l) },
		Par: func(l, r Music[P]) Music[P] {
			d1, _ := Duration(l).Value()
			d2, _ := Duration(r).Value()
			switch {
			case d1.Cmp(d2) > 0 && !IsZeroDuration(r):
				return Par(l, Seq(Rest[P](d1.Sub(d2)), r))
			case d1.Cmp(d2) < 0 && !IsZeroDuration(l):
				return Par(Seq(Rest[P](d2.Sub(d1)), l), r)
			}
			return Par(l, r)
		},
		Modify: WithControl[P],
		Lazy: func(items Stream[Music[P]]) Music[P] {
			xs, err := Collect(items)
			if err != nil {
				panic("motif: cannot reverse unbounded music")
			}
			slices.Reverse(xs)
			return Line(xs...)
		},
	})
}

// Invert mirrors every note of a line around the pitch of its first note:
// a pitch p becomes 2·p0 − p. Other operands are kept as they are.
func Invert(m Music[Pitch]) Music[Pitch] {
	flat := Flatten(m)
	var anchor AbsPitch
	found := false
	for _, x := range flat {
		if p, ok := x.(Primitive[Pitch]); ok && !p.IsRest {
			anchor, found = p.Payload.Abs(), true
			break
		}
	}
	if !found {
		return Line(flat...)
	}
	for i, x := range flat {
		p, ok := x.(Primitive[Pitch])
		if !ok || p.IsRest {
			continue
		}
		old := p.Payload.Abs()
		mirrored, _ := checkAbs(2*int(anchor) - int(old))
		if mirrored != old {
			p.Payload = mirrored.Pitch()
		}
		flat[i] = p
	}
	return Line(flat...)
}

// RetroInvert is the retrograde of the inversion.
func RetroInvert(m Music[Pitch]) Music[Pitch] {
	return Retrograde(Invert(m))
}

// InvertRetro is the inversion of the retrograde.
func InvertRetro(m Music[Pitch]) Music[Pitch] {
	return Invert(Retrograde(m))
}

// Times repeats the music n times.
func Times[P any](m Music[P], n int) Music[P] {
	ms := make([]Music[P], max(n, 0))
	for i := range ms {
		ms[i] = m
	}
	return Line(ms...)
}

// Forever repeats the music endlessly.
func Forever[P any](m Music[P]) Music[P] {
	return LazyLine(Repeat(m))
}

// WithDelay starts the music after a rest.
func WithDelay[P any](d Dur, m Music[P]) Music[P] {
	return Seq(Rest[P](d), m)
}

// CutPar plays a and b in parallel, truncating both to the shorter of the
// two.
func CutPar[P any](a, b Music[P]) Music[P] {
	da, db := Duration(a), Duration(b)
	if d, ok := db.Value(); ok {
		a = Take(a, d)
	}
	if d, ok := da.Value(); ok {
		b = Take(b, d)
	}
	return Par(a, b)
}

func Trans[P any](i Interval, m Music[P]) Music[P] {
	return WithControl(Transpose{Interval: i}, m)
}

func WithTempo[P any](r Ratio, m Music[P]) Music[P] {
	return WithControl(Tempo{Ratio: r}, m)
}

func WithInstrument[P any](name InstrumentName, m Music[P]) Music[P] {
	return WithControl(UseInstrument{Name: name}, m)
}

func WithPlayer[P any](name string, m Music[P]) Music[P] {
	return WithControl(UsePlayer{Name: name}, m)
}

func WithPhrase[P any](attrs []PhraseAttribute, m Music[P]) Music[P] {
	return WithControl(Phrase{Attrs: attrs}, m)
}

func WithKey[P any](key KeySig, m Music[P]) Music[P] {
	return WithControl(KeyChange{Key: key}, m)
}
