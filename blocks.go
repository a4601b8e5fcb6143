package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// The decoder that parses raw sequence files lives outside this program; what
// we consume is its output, a time-ordered list of event blocks serialized to
// a versioned JSON file.

const blockFileVersion = 1

// BlockSamples holds one channel's samples for a single block. Times are
// block-relative and in raw (unscaled) units.
type BlockSamples struct {
	T []float64 `json:"t,omitempty"`
	V []float64 `json:"v,omitempty"`
}

func (s BlockSamples) empty() bool { return len(s.T) == 0 }

// EventBlock is one decoded block: an absolute start time, a duration and the
// per-channel payload. Immutable after load.
type EventBlock struct {
	Start    float64      `json:"start"`
	Duration float64      `json:"duration"`
	RFMag    BlockSamples `json:"rfMag,omitempty"`
	RFPhase  BlockSamples `json:"rfPhase,omitempty"`
	Gx       BlockSamples `json:"gx,omitempty"`
	Gy       BlockSamples `json:"gy,omitempty"`
	Gz       BlockSamples `json:"gz,omitempty"`
	ADC      BlockSamples `json:"adc,omitempty"`
	TRMarker bool         `json:"trMarker,omitempty"`
}

func (b *EventBlock) gradient(axis int) BlockSamples {
	switch axis {
	case 0:
		return b.Gx
	case 1:
		return b.Gy
	default:
		return b.Gz
	}
}

type blockFileDTO struct {
	Version        int          `json:"version"`
	TimeUnits      string       `json:"timeUnits,omitempty"`
	TimeScale      float64      `json:"timeScale"`
	RepetitionTime float64      `json:"repetitionTime,omitempty"` // raw units; 0 = not declared
	Blocks         []EventBlock `json:"blocks"`
}

// SequenceFile is the decoded input handed to the timeline builder.
type SequenceFile struct {
	TimeUnits      string
	TimeScale      float64
	RepetitionTime float64
	Blocks         []EventBlock
}

// LoadSequenceFile reads a decoded block file. Validation failures here are
// load errors: the caller keeps whatever it was displaying before.
func LoadSequenceFile(path string) (*SequenceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dto blockFileDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parse block file: %w", err)
	}
	if dto.Version != blockFileVersion {
		return nil, fmt.Errorf("block file version %d not supported (want %d)", dto.Version, blockFileVersion)
	}
	if dto.TimeScale <= 0 {
		dto.TimeScale = 1.0
	}
	sf := &SequenceFile{
		TimeUnits:      dto.TimeUnits,
		TimeScale:      dto.TimeScale,
		RepetitionTime: dto.RepetitionTime,
		Blocks:         dto.Blocks,
	}
	if err := validateBlocks(sf.Blocks); err != nil {
		return nil, err
	}
	return sf, nil
}

// validateBlocks rejects malformed input before anything is built so a bad
// load can never leave a half-merged series behind.
func validateBlocks(blocks []EventBlock) error {
	if len(blocks) == 0 {
		return fmt.Errorf("block list is empty")
	}
	prevStart := blocks[0].Start
	var lastSample [numChannels]float64
	var haveSample [numChannels]bool
	for i := range blocks {
		b := &blocks[i]
		if b.Duration < 0 {
			return fmt.Errorf("block %d has negative duration %g", i, b.Duration)
		}
		if i > 0 && b.Start < prevStart {
			return fmt.Errorf("block %d starts at %g, before block %d at %g", i, b.Start, i-1, prevStart)
		}
		prevStart = b.Start
		for ch, s := range []BlockSamples{b.RFMag, b.RFPhase, b.Gx, b.Gy, b.Gz, b.ADC} {
			if len(s.T) != len(s.V) {
				return fmt.Errorf("block %d has mismatched sample arrays (%d times, %d values)", i, len(s.T), len(s.V))
			}
			if s.empty() {
				continue
			}
			for j := 1; j < len(s.T); j++ {
				if s.T[j] < s.T[j-1] {
					return fmt.Errorf("block %d has unordered %s samples at %d", i, Channel(ch).Label(), j)
				}
			}
			// Ordered starts alone do not rule out sample overlap between
			// blocks; the merged series must stay non-decreasing per channel.
			first := b.Start + s.T[0]
			if haveSample[ch] && first < lastSample[ch]-gapEpsilon {
				return fmt.Errorf("block %d %s samples start at %g, before block samples ending at %g",
					i, Channel(ch).Label(), first, lastSample[ch])
			}
			end := b.Start + s.T[len(s.T)-1]
			if !haveSample[ch] || end > lastSample[ch] {
				lastSample[ch] = end
			}
			haveSample[ch] = true
		}
	}
	return nil
}
