package main

import (
	"math"
	"sort"
)

// Point-budget reduction for drawing. The input series can hold hundreds of
// thousands of samples; a redraw only ever needs a bounded number of points
// for the visible window.

const defaultTargetPoints = 1000

// Reduce returns drawable (time, value) arrays for the part of the series
// inside [winStart, winEnd], at most targetPoints per gap-free segment, with
// one extra sample of margin each side so edge lines are not truncated.
// Output is a pure function of its inputs: identical calls give identical
// arrays, so repeated redraws of an unchanged window cannot shimmer. Gap
// sentinels separating surviving segments are preserved in the output.
func Reduce(s *ChannelSeries, winStart, winEnd float64, targetPoints int) ([]float64, []float64) {
	if s.Len() == 0 || winEnd <= winStart {
		return nil, nil
	}
	if targetPoints < 2 {
		targetPoints = 2
	}

	var outT, outV []float64
	segStart := 0
	for i := 0; i <= s.Len(); i++ {
		atEnd := i == s.Len()
		if !atEnd && !IsGap(s.V[i]) {
			continue
		}
		if i > segStart {
			t, v := reduceSegment(s.T[segStart:i], s.V[segStart:i], winStart, winEnd, targetPoints)
			if len(t) > 0 {
				if len(outT) > 0 {
					// Re-insert the sentinel between two drawn segments.
					outT = append(outT, (outT[len(outT)-1]+t[0])/2)
					outV = append(outV, math.NaN())
				}
				outT = append(outT, t...)
				outV = append(outV, v...)
			}
		}
		segStart = i + 1
	}
	return outT, outV
}

// reduceSegment windows one gap-free segment and LTTB-reduces it when it is
// over budget. Segments at or under budget pass through untouched.
func reduceSegment(t, v []float64, winStart, winEnd float64, targetPoints int) ([]float64, []float64) {
	n := len(t)
	if n == 0 || t[0] > winEnd || t[n-1] < winStart {
		return nil, nil
	}

	lo := sort.SearchFloat64s(t, winStart)
	hi := sort.SearchFloat64s(t, winEnd)
	if hi < n && t[hi] <= winEnd {
		hi++
	}
	// Margin: one sample past each edge keeps viewport-edge lines connected.
	if lo > 0 {
		lo--
	}
	if hi < n {
		hi++
	}
	if hi-lo < 1 {
		return nil, nil
	}

	t, v = t[lo:hi], v[lo:hi]
	if len(t) <= targetPoints {
		return append([]float64(nil), t...), append([]float64(nil), v...)
	}
	if targetPoints > len(t) {
		targetPoints = len(t)
	}
	return lttb(t, v, targetPoints)
}

// lttb is largest-triangle-three-buckets: first and last points are kept, the
// interior is split into targetPoints-2 buckets and each bucket contributes
// the point forming the largest triangle with the previously chosen point and
// the next bucket's average.
func lttb(t, v []float64, targetPoints int) ([]float64, []float64) {
	n := len(t)
	outT := make([]float64, 0, targetPoints)
	outV := make([]float64, 0, targetPoints)
	outT = append(outT, t[0])
	outV = append(outV, v[0])

	buckets := targetPoints - 2
	every := float64(n-2) / float64(buckets)
	a := 0

	for b := 0; b < buckets; b++ {
		start := int(float64(b)*every) + 1
		end := int(float64(b+1)*every) + 1
		if end >= n-1 {
			end = n - 1
		}
		if start >= end {
			start = end - 1
		}

		// Average of the next bucket (or the final point for the last one).
		nextStart := end
		nextEnd := int(float64(b+2)*every) + 1
		if b == buckets-1 || nextEnd > n-1 {
			nextEnd = n - 1
		}
		avgT, avgV := t[n-1], v[n-1]
		if nextEnd > nextStart {
			sumT, sumV := 0.0, 0.0
			for i := nextStart; i < nextEnd; i++ {
				sumT += t[i]
				sumV += v[i]
			}
			cnt := float64(nextEnd - nextStart)
			avgT, avgV = sumT/cnt, sumV/cnt
		}

		bestArea := -1.0
		best := start
		for i := start; i < end; i++ {
			// Twice the triangle area; the factor is irrelevant for argmax.
			area := abs((t[a]-avgT)*(v[i]-v[a]) - (t[a]-t[i])*(avgV-v[a]))
			if area > bestArea {
				bestArea = area
				best = i
			}
		}
		outT = append(outT, t[best])
		outV = append(outV, v[best])
		a = best
	}

	outT = append(outT, t[n-1])
	outV = append(outV, v[n-1])
	return outT, outV
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
