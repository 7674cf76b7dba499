package motif

// Measurable is implemented by values that a Measure can hold.
type Measurable[T any] interface {
	Add(T) T
	Mul(T) T
	Cmp(T) int
}

// Measure is either a finite value or Infinite. Infinite absorbs finite
// operands in arithmetic and compares greater than any finite value.
type Measure[T Measurable[T]] struct {
	v        T
	infinite bool
}

func Finite[T Measurable[T]](v T) Measure[T] {
	return Measure[T]{v: v}
}

func Infinite[T Measurable[T]]() Measure[T] {
	return Measure[T]{infinite: true}
}

func (m Measure[T]) IsInfinite() bool { return m.infinite }

// Value returns the finite value; ok is false for Infinite.
func (m Measure[T]) Value() (v T, ok bool) {
	return m.v, !m.infinite
}

func (m Measure[T]) Add(o Measure[T]) Measure[T] {
	if m.infinite || o.infinite {
		return Infinite[T]()
	}
	return Finite(m.v.Add(o.v))
}

func (m Measure[T]) Mul(o Measure[T]) Measure[T] {
	if m.infinite || o.infinite {
		return Infinite[T]()
	}
	return Finite(m.v.Mul(o.v))
}

// Map applies f to a finite value and keeps Infinite as it is.
func (m Measure[T]) Map(f func(T) T) Measure[T] {
	if m.infinite {
		return m
	}
	return Finite(f(m.v))
}

func (m Measure[T]) Cmp(o Measure[T]) int {
	switch {
	case m.infinite && o.infinite:
		return 0
	case m.infinite:
		return 1
	case o.infinite:
		return -1
	}
	return m.v.Cmp(o.v)
}

func (m Measure[T]) Max(o Measure[T]) Measure[T] {
	if m.Cmp(o) >= 0 {
		return m
	}
	return o
}

// MaxOf returns the greatest of the measures, Infinite if any of them is.
// It returns the finite zero value for no arguments.
func MaxOf[T Measurable[T]](ms ...Measure[T]) Measure[T] {
	var ret Measure[T]
	for i, m := range ms {
		if i == 0 || m.Cmp(ret) > 0 {
			ret = m
		}
		if ret.infinite {
			break
		}
	}
	return ret
}

func (m Measure[T]) String() string {
	if m.infinite {
		return "infinite"
	}
	if s, ok := any(m.v).(interface{ String() string }); ok {
		return s.String()
	}
	return "finite"
}
