package midi

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/vsariola/motif"
	"github.com/vsariola/motif/perf"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerQuarter = 96
	// BeatsPerMinute is the fixed file tempo. Event times are already in
	// seconds, so the tempo only sets the tick length.
	BeatsPerMinute = 120
	TicksPerSecond = TicksPerQuarter * BeatsPerMinute / 60
)

// Ticks converts seconds into file ticks, rounding down.
func Ticks(seconds motif.Ratio) uint32 {
	t := seconds.MulInt(TicksPerSecond).Floor()
	if t < 0 {
		return 0
	}
	return uint32(t)
}

// TimedMessage is a MIDI message at an absolute tick.
type TimedMessage struct {
	Tick uint32
	Msg  []byte
}

func (m TimedMessage) String() string {
	return fmt.Sprintf("%d %v", m.Tick, smf.Message(m.Msg))
}

// IsMeta reports whether the message is a file meta event that is never sent
// to a port.
func (m TimedMessage) IsMeta() bool {
	return len(m.Msg) > 0 && m.Msg[0] == 0xff
}

var endOfTrack = []byte{0xff, 0x2f, 0x00}

func isEndOfTrack(msg []byte) bool {
	return len(msg) >= 2 && msg[0] == 0xff && msg[1] == 0x2f
}

// Encode renders a finite performance into a Standard MIDI File with one
// track per instrument. If patch is nil or misses some of the instruments, a
// new patch map is allocated in instrument order.
func Encode(p perf.Performance, patch *PatchMap) (*smf.SMF, error) {
	events, err := p.Collect()
	if err != nil {
		return nil, fmt.Errorf("encoding MIDI file failed: %w", err)
	}
	byInstrument := map[motif.InstrumentName][]perf.Event{}
	var instruments []motif.InstrumentName
	for _, e := range events {
		if _, ok := byInstrument[e.Instrument]; !ok {
			instruments = append(instruments, e.Instrument)
		}
		byInstrument[e.Instrument] = append(byInstrument[e.Instrument], e)
	}
	sortInstruments(instruments)
	if patch == nil || !patch.Contains(instruments...) {
		if patch, err = NewPatchMap(instruments...); err != nil {
			return nil, fmt.Errorf("encoding MIDI file failed: %w", err)
		}
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	for _, in := range instruments {
		pt, _ := patch.Lookup(in)
		slog.Debug("encoding track", "instrument", in, "channel", pt.Channel, "program", pt.Program, "events", len(byInstrument[in]))
		if err := s.Add(encodeTrack(byInstrument[in], pt)); err != nil {
			return nil, fmt.Errorf("adding track for %v failed: %w", in, err)
		}
	}
	return s, nil
}

// Write encodes the performance and writes the file to w.
func Write(w io.Writer, p perf.Performance, patch *PatchMap) error {
	s, err := Encode(p, patch)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing MIDI file failed: %w", err)
	}
	return nil
}

// WriteFile encodes the performance into the file at path.
func WriteFile(path string, p perf.Performance, patch *PatchMap) error {
	s, err := Encode(p, patch)
	if err != nil {
		return err
	}
	slog.Info("saving MIDI file", "path", path, "tracks", len(s.Tracks))
	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("writing MIDI file %v failed: %w", path, err)
	}
	return nil
}

// noteTicks returns the ticks a note starts and stops at. A note shorter
// than a tick is lengthened to one tick so that it stops after it starts.
func noteTicks(e perf.Event) (on, off uint32) {
	on = Ticks(e.Start)
	return on, max(Ticks(e.End()), on+1)
}

// noteMessages returns the note on and note off messages of the events, at
// absolute ticks and ordered by tick. Events of no length sound nothing and
// are left out. A note off comes before a note on at the same tick so
// repeated notes are not cut; such a note off always belongs to an earlier
// note.
func noteMessages(events []perf.Event, pt Patch) []TimedMessage {
	type timed struct {
		TimedMessage
		on bool
	}
	msgs := make([]timed, 0, 2*len(events))
	for _, e := range events {
		if e.Dur.Sign() <= 0 {
			continue
		}
		key, vel := uint8(e.Pitch)&0x7f, min(uint8(e.Volume), 127)
		on, off := noteTicks(e)
		msgs = append(msgs,
			timed{TimedMessage{on, midi.NoteOn(pt.Channel, key, vel)}, true},
			timed{TimedMessage{off, midi.NoteOffVelocity(pt.Channel, key, vel)}, false})
	}
	slices.SortStableFunc(msgs, func(a, b timed) int {
		if a.Tick != b.Tick {
			return int(int64(a.Tick) - int64(b.Tick))
		}
		switch {
		case !a.on && b.on:
			return -1
		case a.on && !b.on:
			return 1
		}
		return 0
	})
	ret := make([]TimedMessage, len(msgs))
	for i, m := range msgs {
		ret[i] = m.TimedMessage
	}
	return ret
}

func encodeTrack(events []perf.Event, pt Patch) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(BeatsPerMinute))
	tr.Add(0, midi.ProgramChange(pt.Channel, pt.Program))
	var last uint32
	for _, m := range noteMessages(events, pt) {
		tr.Add(m.Tick-last, m.Msg)
		last = m.Tick
	}
	tr.Close(0)
	return tr
}
