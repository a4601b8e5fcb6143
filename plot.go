package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille cells pack a 2x4 dot grid per terminal cell, so a plot pane
// of C columns and R rows resolves 2C horizontal and 4R vertical dots.
const (
	brailleBase  = 0x2800
	dotsPerCellX = 2
	dotsPerCellY = 4
)

// Unicode braille dot numbering is column-major with dots 7 and 8
// appended below, hence the irregular bit layout.
var brailleBits = [dotsPerCellY][dotsPerCellX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type plotCanvas struct {
	cols, rows int
	cells      []rune
}

func newPlotCanvas(cols, rows int) *plotCanvas {
	return &plotCanvas{cols: cols, rows: rows, cells: make([]rune, cols*rows)}
}

func (c *plotCanvas) setDot(dx, dy int) {
	if dx < 0 || dy < 0 {
		return
	}
	col, row := dx/dotsPerCellX, dy/dotsPerCellY
	if col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] |= brailleBits[dy%dotsPerCellY][dx%dotsPerCellX]
}

// line draws a connected segment between two dots. Plain DDA is fine
// here; segments are short after reduction.
func (c *plotCanvas) line(x0, y0, x1, y1 int) {
	steps := maxInt(absInt(x1-x0), absInt(y1-y0))
	if steps == 0 {
		c.setDot(x0, y0)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		c.setDot(x, y)
	}
}

func (c *plotCanvas) column(dx int) {
	for dy := 0; dy < c.rows*dotsPerCellY; dy++ {
		c.setDot(dx, dy)
	}
}

// renderChannelPlot draws one channel over the viewport window into a
// cols x rows text block. The vertical range is the channel's locked
// axis range, so panning and zooming never rescale the trace. Gap
// sentinels break the polyline; markers are drawn on a separate canvas
// and win over trace cells so they keep their own colour.
func renderChannelPlot(tl *Timeline, ch Channel, vp Viewport, cols, rows int, markers []float64) string {
	if cols < 1 || rows < 1 {
		return ""
	}
	span := vp.End - vp.Start
	if span <= 0 {
		return strings.Repeat("\n", rows-1)
	}
	rng := tl.Ranges[ch]
	vspan := rng.Max - rng.Min

	target := defaultTargetPoints
	if w := cols * dotsPerCellX; w < target {
		target = w
	}
	ts, vs := Reduce(&tl.Series[ch], vp.Start, vp.End, target)

	maxX := cols*dotsPerCellX - 1
	maxY := rows*dotsPerCellY - 1
	toX := func(t float64) int {
		return int(math.Round((t - vp.Start) / span * float64(maxX)))
	}
	toY := func(v float64) int {
		return int(math.Round((rng.Max - v) / vspan * float64(maxY)))
	}

	trace := newPlotCanvas(cols, rows)
	for i := 1; i < len(ts); i++ {
		if IsGap(vs[i-1]) || IsGap(vs[i]) {
			continue
		}
		trace.line(toX(ts[i-1]), toY(vs[i-1]), toX(ts[i]), toY(vs[i]))
	}
	if len(ts) == 1 && !IsGap(vs[0]) {
		trace.setDot(toX(ts[0]), toY(vs[0]))
	}

	overlay := newPlotCanvas(cols, rows)
	for _, mt := range markers {
		if mt < vp.Start || mt > vp.End {
			continue
		}
		overlay.column(toX(mt))
	}

	return renderPlot(trace, overlay, channelStyles[ch], measureMarkerStyle)
}

// renderPlot composites the marker overlay on top of the trace and
// styles runs of cells per source, one colour per run.
func renderPlot(trace, overlay *plotCanvas, traceStyle, overlayStyle lipgloss.Style) string {
	var b strings.Builder
	for row := 0; row < trace.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run []rune
		runOverlay := false
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runOverlay {
				b.WriteString(overlayStyle.Render(string(run)))
			} else {
				b.WriteString(traceStyle.Render(string(run)))
			}
			run = run[:0]
		}
		for col := 0; col < trace.cols; col++ {
			idx := row*trace.cols + col
			mask, fromOverlay := trace.cells[idx], false
			if overlay.cells[idx] != 0 {
				mask, fromOverlay = overlay.cells[idx], true
			}
			r := ' '
			if mask != 0 {
				r = brailleBase + mask
			}
			if fromOverlay != runOverlay {
				flush()
				runOverlay = fromOverlay
			}
			run = append(run, r)
		}
		flush()
	}
	return b.String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
