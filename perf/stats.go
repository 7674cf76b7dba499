package perf

import (
	"github.com/viterin/vek"
	"github.com/vsariola/motif"
)

// Summary describes a finite performance.
type Summary struct {
	Events      int
	End         motif.Ratio // seconds until the last event stops
	MinPitch    motif.AbsPitch
	MaxPitch    motif.AbsPitch
	MeanPitch   float64
	MeanVolume  float64
	MeanDur     float64 // seconds
	TotalDur    float64 // sum of event durations in seconds
	Instruments []motif.InstrumentName
}

// Summarize walks a finite performance and computes its statistics.
func Summarize(p Performance) (Summary, error) {
	events, err := p.Collect()
	if err != nil {
		return Summary{}, err
	}
	s := Summary{Events: len(events)}
	if len(events) == 0 {
		return s, nil
	}
	pitches := make([]float64, len(events))
	volumes := make([]float64, len(events))
	durs := make([]float64, len(events))
	seen := map[motif.InstrumentName]bool{}
	for i, e := range events {
		pitches[i] = float64(e.Pitch)
		volumes[i] = float64(e.Volume)
		durs[i] = e.Dur.Float64()
		s.End = s.End.Max(e.End())
		if !seen[e.Instrument] {
			seen[e.Instrument] = true
			s.Instruments = append(s.Instruments, e.Instrument)
		}
	}
	s.MinPitch = motif.AbsPitch(vek.Min(pitches))
	s.MaxPitch = motif.AbsPitch(vek.Max(pitches))
	s.MeanPitch = vek.Mean(pitches)
	s.MeanVolume = vek.Mean(volumes)
	s.MeanDur = vek.Mean(durs)
	s.TotalDur = vek.Sum(durs)
	return s, nil
}
