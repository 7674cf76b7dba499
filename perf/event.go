package perf

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vsariola/motif"
)

// Event is one performed note. Start and Dur are in seconds since the start
// of the performance.
type Event struct {
	Start      motif.Ratio          `yaml:"start" json:"start" msgpack:"start"`
	Instrument motif.InstrumentName `yaml:"instrument" json:"instrument" msgpack:"instrument"`
	Pitch      motif.AbsPitch       `yaml:"pitch" json:"pitch" msgpack:"pitch"`
	Dur        motif.Ratio          `yaml:"dur" json:"dur" msgpack:"dur"`
	Volume     motif.Volume         `yaml:"volume" json:"volume" msgpack:"volume"`
	Params     []float64            `yaml:"params,omitempty" json:"params,omitempty" msgpack:"params,omitempty"`
}

// End returns the time the event stops sounding.
func (e Event) End() motif.Ratio {
	return e.Start.Add(e.Dur)
}

func (e Event) String() string {
	return fmt.Sprintf("%v %v %v %v %v", e.Start, e.Instrument, e.Pitch, e.Dur, e.Volume)
}

// ErrInfinitePerformance is returned when an unbounded performance would
// have to be materialized.
var ErrInfinitePerformance = errors.New("performance is infinite")

// Performance is a lazy, restartable sequence of events ordered by start
// time. Ranging over it twice evaluates it twice and yields the same events.
type Performance struct {
	motif.Stream[Event]
}

// NewPerformance returns a finite performance of the events.
func NewPerformance(events ...Event) Performance {
	return Performance{motif.FromSlice(events...)}
}

// Empty returns the performance of no events.
func Empty() Performance {
	return NewPerformance()
}

func fromSeq(seq iter.Seq[Event], unbounded bool) Performance {
	return Performance{motif.Stream[Event]{Seq: seq, Unbounded: unbounded}}
}

// IsInfinite reports whether the performance may never end. Check it before
// calling anything that walks the whole performance.
func (p Performance) IsInfinite() bool {
	return p.Unbounded
}

// Collect returns every event of a finite performance.
func (p Performance) Collect() ([]Event, error) {
	if p.Unbounded {
		return nil, ErrInfinitePerformance
	}
	ret, _ := motif.Collect(p.Stream)
	return ret, nil
}

// Take returns the first k events.
func (p Performance) Take(k int) Performance {
	return Performance{motif.StreamTake(p.Stream, k)}
}

// Until returns the events that start before t. The walk stops at the first
// event starting at or after t, so it terminates on infinite performances.
func (p Performance) Until(t motif.Ratio) Performance {
	return fromSeq(func(yield func(Event) bool) {
		for e := range p.All() {
			if !e.Start.Less(t) || !yield(e) {
				return
			}
		}
	}, false)
}

// Map applies f to every event.
func (p Performance) Map(f func(Event) Event) Performance {
	return Performance{motif.MapStream(p.Stream, f)}
}

// FlatMap replaces every event with the events returned by f.
func (p Performance) FlatMap(f func(Event) []Event) Performance {
	return fromSeq(func(yield func(Event) bool) {
		for e := range p.All() {
			for _, x := range f(e) {
				if !yield(x) {
					return
				}
			}
		}
	}, p.Unbounded)
}

// Concat plays the performances one after another. An infinite part hides
// the ones after it.
func Concat(ps ...Performance) Performance {
	unbounded := false
	for _, p := range ps {
		unbounded = unbounded || p.Unbounded
	}
	return fromSeq(func(yield func(Event) bool) {
		for _, p := range ps {
			for e := range p.All() {
				if !yield(e) {
					return
				}
			}
		}
	}, unbounded)
}

// Merge interleaves two performances by start time. The merge is stable:
// on equal start times the events of a come first.
func Merge(a, b Performance) Performance {
	return fromSeq(func(yield func(Event) bool) {
		nextA, stopA := iter.Pull(a.All())
		defer stopA()
		nextB, stopB := iter.Pull(b.All())
		defer stopB()
		ea, okA := nextA()
		eb, okB := nextB()
		for okA || okB {
			if okA && (!okB || !eb.Start.Less(ea.Start)) {
				if !yield(ea) {
					return
				}
				ea, okA = nextA()
				continue
			}
			if !yield(eb) {
				return
			}
			eb, okB = nextB()
		}
	}, a.Unbounded || b.Unbounded)
}
