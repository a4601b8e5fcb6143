package main

// AxisRange is a channel's locked vertical range. Computed once per load from
// the whole merged series; per-window autoscaling is what causes axis jitter,
// so nothing on the interaction path is allowed to touch these.
type AxisRange struct {
	Min float64
	Max float64
}

func lockAxisRanges(series *[numChannels]ChannelSeries) [numChannels]AxisRange {
	var out [numChannels]AxisRange
	for ch := Channel(0); ch < numChannels; ch++ {
		out[ch] = computeAxisRange(&series[ch])
	}
	return out
}

func computeAxisRange(s *ChannelSeries) AxisRange {
	haveAny := false
	min, max := 0.0, 0.0
	for _, v := range s.V {
		if IsGap(v) {
			continue
		}
		if !haveAny {
			min, max = v, v
			haveAny = true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if !haveAny {
		return AxisRange{Min: -1, Max: 1}
	}
	pad := (max - min) * 0.05
	if pad == 0 {
		pad = 1.0
	}
	return AxisRange{Min: min - pad, Max: max + pad}
}
