package main

// dataState holds everything derived from the loaded sequence file.
// It changes only on load and on a manual TR override; the view layer
// reads it but never mutates it directly.
type dataState struct {
	path string
	file *SequenceFile
	tl   *Timeline
}

func newDataState(path string) (dataState, error) {
	sf, err := LoadSequenceFile(path)
	if err != nil {
		return dataState{}, err
	}
	tl, err := BuildTimeline(sf)
	if err != nil {
		return dataState{}, err
	}
	return dataState{path: path, file: sf, tl: tl}, nil
}
