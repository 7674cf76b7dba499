package motif

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Ratio is an exact rational number. The zero value is 0. Ratios are always
// kept normalized: the denominator is positive and coprime with the
// numerator, so two Ratios holding the same number compare equal with ==.
// Arithmetic whose result does not fit in int64 panics with ErrOverflow
// rather than losing exactness; Cmp never overflows.
type Ratio struct {
	num int64
	dm1 int64 // denominator minus one, so that the zero value is 0/1
}

// ErrOverflow is the panic value of Ratio arithmetic that overflows int64.
var ErrOverflow = errors.New("motif: ratio overflows int64")

// NewRatio returns num/den. It panics if den is zero.
func NewRatio(num, den int64) Ratio {
	if den == 0 {
		panic("motif: zero denominator")
	}
	if den < 0 {
		num, den = neg64(num), neg64(den)
	}
	if num == 0 {
		return Ratio{}
	}
	g := gcd(abs64(num), den)
	return Ratio{num / g, den/g - 1}
}

// Int returns n as a Ratio.
func Int(n int64) Ratio {
	return Ratio{num: n}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return neg64(a)
	}
	return a
}

func neg64(a int64) int64 {
	if a == math.MinInt64 {
		panic(ErrOverflow)
	}
	return -a
}

func add64(a, b int64) int64 {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		panic(ErrOverflow)
	}
	return c
}

func mul64(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		panic(ErrOverflow)
	}
	return c
}

// magnitude returns |a| without overflowing on math.MinInt64.
func magnitude(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1
	}
	return uint64(a)
}

func (r Ratio) Num() int64 { return r.num }
func (r Ratio) Den() int64 { return r.dm1 + 1 }

func (r Ratio) Add(o Ratio) Ratio {
	rd, od := r.Den(), o.Den()
	g := gcd(rd, od)
	return NewRatio(add64(mul64(r.num, od/g), mul64(o.num, rd/g)), mul64(rd/g, od))
}

func (r Ratio) Sub(o Ratio) Ratio {
	return r.Add(o.Neg())
}

// SatSub subtracts o from r, returning 0 instead of a negative result.
func (r Ratio) SatSub(o Ratio) Ratio {
	if r.Cmp(o) <= 0 {
		return Ratio{}
	}
	return r.Sub(o)
}

func (r Ratio) Mul(o Ratio) Ratio {
	if r.num == 0 || o.num == 0 {
		return Ratio{}
	}
	g1 := gcd(abs64(r.num), o.Den())
	g2 := gcd(abs64(o.num), r.Den())
	return NewRatio(mul64(r.num/g1, o.num/g2), mul64(r.Den()/g2, o.Den()/g1))
}

// Div returns r/o. It panics if o is zero.
func (r Ratio) Div(o Ratio) Ratio {
	if o.num == 0 {
		panic("motif: division by zero")
	}
	return r.Mul(NewRatio(o.Den(), o.num))
}

func (r Ratio) MulInt(n int64) Ratio { return r.Mul(Int(n)) }
func (r Ratio) DivInt(n int64) Ratio { return r.Div(Int(n)) }

func (r Ratio) Neg() Ratio {
	return Ratio{neg64(r.num), r.dm1}
}

// Cmp returns -1, 0 or +1 depending on whether r is less than, equal to or
// greater than o. The cross products are compared in 128 bits.
func (r Ratio) Cmp(o Ratio) int {
	rs, os := r.Sign(), o.Sign()
	if rs != os || rs == 0 {
		return cmp.Compare(rs, os)
	}
	hi1, lo1 := bits.Mul64(magnitude(r.num), uint64(o.Den()))
	hi2, lo2 := bits.Mul64(magnitude(o.num), uint64(r.Den()))
	c := cmp.Compare(hi1, hi2)
	if c == 0 {
		c = cmp.Compare(lo1, lo2)
	}
	return rs * c
}

func (r Ratio) Less(o Ratio) bool { return r.Cmp(o) < 0 }

func (r Ratio) Max(o Ratio) Ratio {
	if r.Cmp(o) >= 0 {
		return r
	}
	return o
}

func (r Ratio) Min(o Ratio) Ratio {
	if r.Cmp(o) <= 0 {
		return r
	}
	return o
}

func (r Ratio) IsZero() bool { return r.num == 0 }

func (r Ratio) Sign() int {
	switch n := r.num; {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Floor returns the greatest integer not greater than r.
func (r Ratio) Floor() int64 {
	q := r.num / r.Den()
	if r.num%r.Den() != 0 && r.num < 0 {
		q--
	}
	return q
}

func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

func (r Ratio) String() string {
	if r.dm1 == 0 {
		return strconv.FormatInt(r.num, 10)
	}
	return fmt.Sprintf("%d/%d", r.num, r.Den())
}

var errBadRatio = errors.New("malformed ratio")

// ParseRatio parses "3", "-3", "3/8" or a decimal such as "0.25".
func ParseRatio(s string) (Ratio, error) {
	s = strings.TrimSpace(s)
	if n, d, ok := strings.Cut(s, "/"); ok {
		num, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return Ratio{}, fmt.Errorf("%w %q: %v", errBadRatio, s, err)
		}
		den, err := strconv.ParseInt(strings.TrimSpace(d), 10, 64)
		if err != nil {
			return Ratio{}, fmt.Errorf("%w %q: %v", errBadRatio, s, err)
		}
		if den == 0 {
			return Ratio{}, fmt.Errorf("%w %q: zero denominator", errBadRatio, s)
		}
		if num == math.MinInt64 || den == math.MinInt64 {
			return Ratio{}, fmt.Errorf("%w %q: out of range", errBadRatio, s)
		}
		return NewRatio(num, den), nil
	}
	if whole, frac, ok := strings.Cut(s, "."); ok {
		if len(frac) > 9 {
			return Ratio{}, fmt.Errorf("%w %q: too many decimals", errBadRatio, s)
		}
		num, err := strconv.ParseInt(whole+frac, 10, 64)
		if err != nil {
			return Ratio{}, fmt.Errorf("%w %q: %v", errBadRatio, s, err)
		}
		return NewRatio(num, int64(math.Pow10(len(frac)))), nil
	}
	num, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Ratio{}, fmt.Errorf("%w %q: %v", errBadRatio, s, err)
	}
	return Int(num), nil
}

func (r Ratio) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Ratio) UnmarshalText(text []byte) error {
	v, err := ParseRatio(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
