package motif

import (
	"errors"
	"iter"
)

// Stream is a restartable, possibly infinite lazy sequence. Ranging over
// Seq again starts from the beginning, and copying a Stream clones it.
// Unbounded is the finiteness hint: consumers that would need to see the
// whole sequence check it instead of walking the sequence.
type Stream[T any] struct {
	Seq       iter.Seq[T]
	Unbounded bool
}

var ErrUnbounded = errors.New("stream is unbounded")

func FromSlice[T any](xs ...T) Stream[T] {
	return Stream[T]{Seq: func(yield func(T) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}}
}

// Repeat returns the unbounded stream x, x, x, ...
func Repeat[T any](x T) Stream[T] {
	return Stream[T]{Seq: func(yield func(T) bool) {
		for yield(x) {
		}
	}, Unbounded: true}
}

// Iterate returns the unbounded stream x, f(x), f(f(x)), ...
func Iterate[T any](x T, f func(T) T) Stream[T] {
	return Stream[T]{Seq: func(yield func(T) bool) {
		for v := x; yield(v); v = f(v) {
		}
	}, Unbounded: true}
}

// Generate returns the unbounded stream f(0), f(1), f(2), ...
func Generate[T any](f func(i int) T) Stream[T] {
	return Stream[T]{Seq: func(yield func(T) bool) {
		for i := 0; yield(f(i)); i++ {
		}
	}, Unbounded: true}
}

// Cycle repeats the elements of xs forever. It returns an empty bounded
// stream for no elements.
func Cycle[T any](xs ...T) Stream[T] {
	if len(xs) == 0 {
		return FromSlice[T]()
	}
	return Stream[T]{Seq: func(yield func(T) bool) {
		for {
			for _, x := range xs {
				if !yield(x) {
					return
				}
			}
		}
	}, Unbounded: true}
}

// StreamTake returns the first n elements of s as a bounded stream.
func StreamTake[T any](s Stream[T], n int) Stream[T] {
	return Stream[T]{Seq: func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for x := range s.All() {
			if !yield(x) {
				return
			}
			if i++; i >= n {
				return
			}
		}
	}}
}

// MapStream applies f lazily to every element.
func MapStream[T, U any](s Stream[T], f func(T) U) Stream[U] {
	return Stream[U]{Seq: func(yield func(U) bool) {
		for x := range s.All() {
			if !yield(f(x)) {
				return
			}
		}
	}, Unbounded: s.Unbounded}
}

// Collect materializes a bounded stream. It refuses to walk an unbounded one.
func Collect[T any](s Stream[T]) ([]T, error) {
	if s.Unbounded {
		return nil, ErrUnbounded
	}
	var ret []T
	for x := range s.All() {
		ret = append(ret, x)
	}
	return ret, nil
}

// All returns the sequence, treating a nil Seq as empty.
func (s Stream[T]) All() iter.Seq[T] {
	if s.Seq == nil {
		return func(func(T) bool) {}
	}
	return s.Seq
}
