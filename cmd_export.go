package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ExportWindow writes the reduced samples of the current viewing window to a
// CSV file, one row per point with a channel column. Gap sentinels are
// written with an empty value field so the breaks survive a round trip
// through spreadsheet tools.
func ExportWindow(m *model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"channel", "time_" + m.data.tl.TimeUnits, "value"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	vp := m.ctrl.Viewport()
	for ch := Channel(0); ch < numChannels; ch++ {
		ts, vs := Reduce(&m.data.tl.Series[ch], vp.Start, vp.End, defaultTargetPoints)
		for i := range ts {
			val := ""
			if !IsGap(vs[i]) {
				val = strconv.FormatFloat(vs[i], 'g', -1, 64)
			}
			row := []string{
				ch.Label(),
				strconv.FormatFloat(ts[i], 'g', -1, 64),
				val,
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write %s row %d: %w", ch.Label(), i, err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}
