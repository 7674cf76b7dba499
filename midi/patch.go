// Package midi renders performances as Standard MIDI Files and plays them
// through MIDI output ports.
package midi

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vsariola/motif"
)

var (
	ErrTooManyInstruments = errors.New("too many instruments for the MIDI channels")
	ErrInstrumentNotFound = errors.New("instrument not found in the patch map")
)

const (
	NumChannels = 16
	// PercussionChannel is reserved for the percussion kit, as in General
	// MIDI.
	PercussionChannel uint8 = 9
)

// melodicChannels lists the channels available to instruments other than
// percussion, in allocation order.
var melodicChannels = func() []uint8 {
	ret := make([]uint8, 0, NumChannels-1)
	for c := uint8(0); c < NumChannels; c++ {
		if c != PercussionChannel {
			ret = append(ret, c)
		}
	}
	return ret
}()

// Patch is the channel and program an instrument is played with.
type Patch struct {
	Channel uint8
	Program uint8
}

// PatchMap assigns MIDI channels to instruments. The percussion kit always
// gets PercussionChannel; the other instruments share the remaining 15.
type PatchMap struct {
	channels map[motif.InstrumentName]uint8
}

// NewPatchMap assigns consecutive channels to the instruments in the given
// order.
func NewPatchMap(instruments ...motif.InstrumentName) (*PatchMap, error) {
	pm := &PatchMap{channels: map[motif.InstrumentName]uint8{}}
	for _, in := range instruments {
		if _, err := pm.GetOrInsert(in); err != nil {
			return nil, err
		}
	}
	return pm, nil
}

// Assign puts the instrument on an explicit channel, replacing any earlier
// assignment of the instrument.
func (pm *PatchMap) Assign(in motif.InstrumentName, channel uint8) error {
	if channel >= NumChannels {
		return fmt.Errorf("assigning %v to channel %d: no such channel", in, channel)
	}
	if pm.channels == nil {
		pm.channels = map[motif.InstrumentName]uint8{}
	}
	pm.channels[in] = channel
	return nil
}

// Lookup returns the patch of an instrument already in the map.
func (pm *PatchMap) Lookup(in motif.InstrumentName) (Patch, bool) {
	c, ok := pm.channels[in]
	if !ok {
		return Patch{}, false
	}
	return Patch{Channel: c, Program: program(in)}, true
}

// GetOrInsert returns the patch of the instrument, allocating the first free
// channel if the instrument is new.
func (pm *PatchMap) GetOrInsert(in motif.InstrumentName) (Patch, error) {
	if p, ok := pm.Lookup(in); ok {
		return p, nil
	}
	if pm.channels == nil {
		pm.channels = map[motif.InstrumentName]uint8{}
	}
	if in == motif.Percussion {
		pm.channels[in] = PercussionChannel
		p, _ := pm.Lookup(in)
		return p, nil
	}
	used := 0
	for other := range pm.channels {
		if other != motif.Percussion {
			used++
		}
	}
	if used >= len(melodicChannels) {
		return Patch{}, fmt.Errorf("allocating a channel for %v: %w", in, ErrTooManyInstruments)
	}
	for _, c := range melodicChannels {
		if !pm.occupied(c) {
			pm.channels[in] = c
			p, _ := pm.Lookup(in)
			return p, nil
		}
	}
	return Patch{}, fmt.Errorf("allocating a channel for %v: %w", in, ErrInstrumentNotFound)
}

func (pm *PatchMap) occupied(channel uint8) bool {
	for _, c := range pm.channels {
		if c == channel {
			return true
		}
	}
	return false
}

// Contains reports whether every instrument has a channel.
func (pm *PatchMap) Contains(instruments ...motif.InstrumentName) bool {
	for _, in := range instruments {
		if _, ok := pm.channels[in]; !ok {
			return false
		}
	}
	return true
}

// Instruments lists the mapped instruments in instrument order.
func (pm *PatchMap) Instruments() []motif.InstrumentName {
	ret := make([]motif.InstrumentName, 0, len(pm.channels))
	for in := range pm.channels {
		ret = append(ret, in)
	}
	sortInstruments(ret)
	return ret
}

func sortInstruments(ins []motif.InstrumentName) {
	slices.SortFunc(ins, func(a, b motif.InstrumentName) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
}

// program returns the program change number of the instrument; the
// percussion kit and custom instruments use program 0.
func program(in motif.InstrumentName) uint8 {
	if in.Kind == motif.GeneralMIDI {
		return in.Program & 0x7f
	}
	return 0
}
