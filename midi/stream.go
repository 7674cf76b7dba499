package midi

import (
	"container/heap"
	"fmt"
	"iter"
	"slices"

	"github.com/vsariola/motif/perf"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MergeTracks flattens the tracks into one list of messages at absolute
// ticks. Messages at the same tick keep track order. The end of track markers
// are replaced by a single one at the last tick.
func MergeTracks(tracks ...smf.Track) []TimedMessage {
	var ret []TimedMessage
	for _, tr := range tracks {
		var tick uint32
		for _, ev := range tr {
			tick += ev.Delta
			if isEndOfTrack(ev.Message) {
				continue
			}
			ret = append(ret, TimedMessage{Tick: tick, Msg: ev.Message})
		}
	}
	slices.SortStableFunc(ret, func(a, b TimedMessage) int {
		return int(int64(a.Tick) - int64(b.Tick))
	})
	var last uint32
	if len(ret) > 0 {
		last = ret[len(ret)-1].Tick
	}
	return append(ret, TimedMessage{Tick: last, Msg: endOfTrack})
}

// Messages adapts a message list for Player.Play.
func Messages(msgs []TimedMessage) iter.Seq2[TimedMessage, error] {
	return func(yield func(TimedMessage, error) bool) {
		for _, m := range msgs {
			if !yield(m, nil) {
				return
			}
		}
	}
}

// LiveStream turns a performance, finite or not, into messages ordered by
// tick. Notes are timed as in Encode. Instruments get their channels as they
// first appear, announced with a program change. A channel allocation failure is yielded as an error and
// ends the stream.
func LiveStream(p perf.Performance, patch *PatchMap) iter.Seq2[TimedMessage, error] {
	return func(yield func(TimedMessage, error) bool) {
		pm := patch
		if pm == nil {
			pm = &PatchMap{}
		}
		announced := map[uint8]bool{}
		var pending noteOffs
		flush := func(until uint32, all bool) bool {
			for pending.Len() > 0 && (all || pending[0].Tick <= until) {
				off := heap.Pop(&pending).(pendingOff)
				if !yield(off.TimedMessage, nil) {
					return false
				}
			}
			return true
		}
		var seq int
		for e := range p.All() {
			if e.Dur.Sign() <= 0 {
				continue
			}
			pt, err := pm.GetOrInsert(e.Instrument)
			if err != nil {
				yield(TimedMessage{}, fmt.Errorf("streaming %v: %w", e, err))
				return
			}
			start := Ticks(e.Start)
			if !flush(start, false) {
				return
			}
			if !announced[pt.Channel] {
				announced[pt.Channel] = true
				if !yield(TimedMessage{start, midi.ProgramChange(pt.Channel, pt.Program)}, nil) {
					return
				}
			}
			key, vel := uint8(e.Pitch)&0x7f, min(uint8(e.Volume), 127)
			if !yield(TimedMessage{start, midi.NoteOn(pt.Channel, key, vel)}, nil) {
				return
			}
			_, off := noteTicks(e)
			heap.Push(&pending, pendingOff{TimedMessage{off, midi.NoteOffVelocity(pt.Channel, key, vel)}, seq})
			seq++
		}
		flush(0, true)
	}
}

type pendingOff struct {
	TimedMessage
	seq int
}

// noteOffs is a min-heap of note offs by tick, then by insertion order.
type noteOffs []pendingOff

func (h noteOffs) Len() int { return len(h) }
func (h noteOffs) Less(i, j int) bool {
	if h[i].Tick != h[j].Tick {
		return h[i].Tick < h[j].Tick
	}
	return h[i].seq < h[j].seq
}
func (h noteOffs) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *noteOffs) Push(x any)   { *h = append(*h, x.(pendingOff)) }
func (h *noteOffs) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
