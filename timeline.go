package main

import (
	"fmt"
	"math"
)

// Channel indices for the merged per-channel series.
type Channel int

const (
	ChanRFMag Channel = iota
	ChanRFPhase
	ChanGx
	ChanGy
	ChanGz
	ChanADC
	numChannels
)

func (c Channel) Label() string {
	switch c {
	case ChanRFMag:
		return "RF mag"
	case ChanRFPhase:
		return "RF ph"
	case ChanGx:
		return "Gx"
	case ChanGy:
		return "Gy"
	case ChanGz:
		return "Gz"
	case ChanADC:
		return "ADC"
	default:
		return "?"
	}
}

// IsGap reports whether a value is the gap sentinel. A NaN sample splits the
// drawn curve into separate segments; renderers must never stroke across it.
func IsGap(v float64) bool { return math.IsNaN(v) }

// gapEpsilon is the contiguity tolerance between the end of one block's
// samples and the start of the next, in scaled time units.
const gapEpsilon = 1e-9

// ChannelSeries is one channel's merged (time, value) series with gap
// sentinels. Parallel slices; immutable once built.
type ChannelSeries struct {
	T []float64
	V []float64
}

func (s *ChannelSeries) Len() int { return len(s.T) }

// Timeline is everything derived from one load: merged series, TR boundaries
// and locked axis ranges. Replaced wholesale on the next load, never mutated
// in place (the locked ranges depend on it).
type Timeline struct {
	Series    [numChannels]ChannelSeries
	TRBounds  []float64 // absolute scaled start times, first always 0
	Duration  float64   // scaled end of the sequence
	TimeUnits string
	Ranges    [numChannels]AxisRange

	blocks         []EventBlock // kept for TR re-detection on manual override
	repetitionTime float64      // declared raw repetition time, 0 if absent
	scale          float64
}

// BuildTimeline converts the decoded block list into merged per-channel
// series. The time-scale multiplication happens here and nowhere else; every
// downstream component already operates in scaled units.
func BuildTimeline(sf *SequenceFile) (*Timeline, error) {
	if err := validateBlocks(sf.Blocks); err != nil {
		return nil, fmt.Errorf("build timeline: %w", err)
	}

	tl := &Timeline{
		TimeUnits:      sf.TimeUnits,
		blocks:         sf.Blocks,
		repetitionTime: sf.RepetitionTime,
		scale:          sf.TimeScale,
	}

	for ch := Channel(0); ch < numChannels; ch++ {
		tl.Series[ch] = mergeChannel(sf.Blocks, ch, sf.TimeScale)
	}

	last := &sf.Blocks[len(sf.Blocks)-1]
	tl.Duration = (last.Start + last.Duration) * sf.TimeScale

	tl.TRBounds = detectTRBounds(sf.Blocks, sf.RepetitionTime, sf.TimeScale, tl.Duration)
	tl.Ranges = lockAxisRanges(&tl.Series)
	return tl, nil
}

// SetManualTR overrides TR detection with a user-supplied repetition time in
// scaled units. Zero or negative restores automatic detection. Boundaries are
// recomputed; the merged series is untouched.
func (tl *Timeline) SetManualTR(tr float64) {
	if tr <= 0 {
		tl.TRBounds = detectTRBounds(tl.blocks, tl.repetitionTime, tl.scale, tl.Duration)
		return
	}
	tl.TRBounds = boundsFromRepetitionTime(tr, tl.Duration)
}

// TRCount is always at least 1: a sequence with no detected repetition is a
// single TR spanning everything.
func (tl *Timeline) TRCount() int {
	if len(tl.TRBounds) == 0 {
		return 1
	}
	return len(tl.TRBounds)
}

// TRSpan returns the absolute [start, end] of TR i, clamped to a valid index.
func (tl *Timeline) TRSpan(i int) (float64, float64) {
	n := tl.TRCount()
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	if len(tl.TRBounds) == 0 {
		return 0, tl.Duration
	}
	start := tl.TRBounds[i]
	end := tl.Duration
	if i+1 < len(tl.TRBounds) {
		end = tl.TRBounds[i+1]
	}
	return start, end
}

// TRIndexAt returns the TR containing time t.
func (tl *Timeline) TRIndexAt(t float64) int {
	idx := 0
	for i, b := range tl.TRBounds {
		if b <= t {
			idx = i
		} else {
			break
		}
	}
	return idx
}

func channelSamples(b *EventBlock, ch Channel) BlockSamples {
	switch ch {
	case ChanRFMag:
		return b.RFMag
	case ChanRFPhase:
		return b.RFPhase
	case ChanGx, ChanGy, ChanGz:
		return b.gradient(int(ch - ChanGx))
	default:
		return b.ADC
	}
}

func mergeChannel(blocks []EventBlock, ch Channel, scale float64) ChannelSeries {
	var out ChannelSeries
	haveLast := false
	lastT := 0.0

	for i := range blocks {
		b := &blocks[i]
		src := channelSamples(b, ch)
		if src.empty() {
			continue
		}
		blockStart := b.Start * scale
		firstT := blockStart + src.T[0]*scale
		if haveLast && firstT-lastT > gapEpsilon {
			// Sentinel at the gap midpoint keeps timestamps monotonic.
			out.T = append(out.T, (lastT+firstT)/2)
			out.V = append(out.V, math.NaN())
		}
		for j := range src.T {
			out.T = append(out.T, blockStart+src.T[j]*scale)
			out.V = append(out.V, src.V[j])
		}
		lastT = out.T[len(out.T)-1]
		haveLast = true
	}
	return out
}

// detectTRBounds picks boundaries as absolute scaled times. Priority:
// explicit per-block repeat markers, then a declared repetition time, then a
// repeating per-block duration pattern, then a single TR.
func detectTRBounds(blocks []EventBlock, repTimeRaw, scale, duration float64) []float64 {
	if bounds := boundsFromMarkers(blocks, scale); bounds != nil {
		return bounds
	}
	if repTimeRaw > 0 {
		return boundsFromRepetitionTime(repTimeRaw*scale, duration)
	}
	if bounds := boundsFromDurationPattern(blocks, scale); bounds != nil {
		return bounds
	}
	return []float64{0}
}

func boundsFromMarkers(blocks []EventBlock, scale float64) []float64 {
	var bounds []float64
	for i := range blocks {
		if blocks[i].TRMarker {
			bounds = append(bounds, blocks[i].Start*scale)
		}
	}
	if bounds == nil {
		return nil
	}
	if bounds[0] != 0 {
		bounds = append([]float64{0}, bounds...)
	}
	return bounds
}

func boundsFromRepetitionTime(tr, duration float64) []float64 {
	if tr <= 0 || duration <= 0 {
		return []float64{0}
	}
	count := int(math.Ceil(duration / tr))
	if count < 1 {
		count = 1
	}
	bounds := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		bounds = append(bounds, float64(i)*tr)
	}
	return bounds
}

// boundsFromDurationPattern looks for the smallest block-count period whose
// per-block durations repeat across the whole list.
func boundsFromDurationPattern(blocks []EventBlock, scale float64) []float64 {
	n := len(blocks)
	if n < 2 {
		return nil
	}
	const durEps = 1e-9
	for period := 1; period <= n/2; period++ {
		if n%period != 0 {
			continue
		}
		match := true
		for i := period; i < n; i++ {
			if math.Abs(blocks[i].Duration-blocks[i%period].Duration) > durEps {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		bounds := make([]float64, 0, n/period)
		for i := 0; i < n; i += period {
			bounds = append(bounds, blocks[i].Start*scale)
		}
		return bounds
	}
	return nil
}
