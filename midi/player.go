package midi

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"time"

	"gitlab.com/gomidi/midi/v2"
)

// Out is where the player sends its messages. Ports of the gomidi drivers
// satisfy it.
type Out interface {
	Send(msg []byte) error
}

const (
	DefaultMinLatency = time.Millisecond
	DefaultMaxLatency = 10 * time.Millisecond
)

// TickDuration converts file ticks to wall clock time.
func TickDuration(tick uint32) time.Duration {
	return time.Duration(tick) * time.Second / TicksPerSecond
}

type noteKey struct {
	channel, key uint8
}

// Player sends timed messages to an output in real time. While waiting for
// the next message it sleeps at least MinLatency and at most MaxLatency at a
// time, so cancellation is noticed within MaxLatency.
type Player struct {
	out        Out
	MinLatency time.Duration
	MaxLatency time.Duration

	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration)
	sounding map[noteKey]uint8 // note on velocity
}

func NewPlayer(out Out) *Player {
	return &Player{
		out:        out,
		MinLatency: DefaultMinLatency,
		MaxLatency: DefaultMaxLatency,
		now:        time.Now,
		sleep:      sleepContext,
		sounding:   map[noteKey]uint8{},
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// Play sends the messages when their time comes, counting from the call.
// Meta events are skipped. However Play returns, every note still sounding
// is stopped first. Cancelling ctx stops the playback and returns the
// context's error.
func (p *Player) Play(ctx context.Context, msgs iter.Seq2[TimedMessage, error]) (err error) {
	defer func() {
		err = errors.Join(err, p.StopAll())
	}()
	start := p.now()
	for m, merr := range msgs {
		if merr != nil {
			return merr
		}
		at := TickDuration(m.Tick)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			elapsed := p.now().Sub(start)
			if elapsed >= at {
				break
			}
			p.sleep(ctx, min(max(at-elapsed, p.MinLatency), p.MaxLatency))
		}
		if m.IsMeta() {
			continue
		}
		if err := p.out.Send(m.Msg); err != nil {
			return fmt.Errorf("sending %v failed: %w", midi.Message(m.Msg), err)
		}
		p.track(m.Msg)
	}
	return nil
}

func (p *Player) track(msg []byte) {
	var ch, key, vel uint8
	m := midi.Message(msg)
	switch {
	case m.GetNoteStart(&ch, &key, &vel):
		k := noteKey{ch, key}
		if _, ok := p.sounding[k]; ok {
			slog.Warn("note started while already sounding", "channel", ch, "key", key)
		}
		p.sounding[k] = vel
	case m.GetNoteEnd(&ch, &key):
		k := noteKey{ch, key}
		if _, ok := p.sounding[k]; !ok {
			slog.Warn("stopping a note that is not sounding", "channel", ch, "key", key)
		}
		delete(p.sounding, k)
	}
}

// Sounding returns the number of notes started and not yet stopped.
func (p *Player) Sounding() int {
	return len(p.sounding)
}

// StopAll sends a note off for every sounding note. Notes whose note off
// cannot be sent stay sounding.
func (p *Player) StopAll() error {
	keys := make([]noteKey, 0, len(p.sounding))
	for k := range p.sounding {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b noteKey) int {
		if a.channel != b.channel {
			return int(a.channel) - int(b.channel)
		}
		return int(a.key) - int(b.key)
	})
	var errs []error
	for _, k := range keys {
		if err := p.out.Send(midi.NoteOffVelocity(k.channel, k.key, p.sounding[k])); err != nil {
			errs = append(errs, fmt.Errorf("stopping note %d on channel %d failed: %w", k.key, k.channel, err))
			continue
		}
		delete(p.sounding, k)
	}
	if len(keys) > 0 {
		slog.Debug("stopped sounding notes", "count", len(keys))
	}
	return errors.Join(errs...)
}
