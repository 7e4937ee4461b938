package game

import "time"

// Beatmap is the parsed spawn schedule for one song.
type Beatmap struct {
	Delay        time.Duration // Offset of beat zero from song start
	BeatInterval time.Duration

	// Offsets from song start, in file order, per lane
	Schedules [LaneCount][]time.Duration
}

// NoteCount is the total number of scheduled notes.
func (b *Beatmap) NoteCount() int {
	if b == nil {
		return 0
	}
	count := 0
	for _, s := range b.Schedules {
		count += len(s)
	}
	return count
}
