package score

// Recorder receives the outcome of every judged or expired note.
type Recorder interface {
	RecordHit()
	RecordMiss()
	RecordLoss()
}

// Scorer is a Recorder that can also be read by the stat displays.
type Scorer interface {
	Recorder

	Hits() uint64
	Misses() uint64
	Losses() uint64
	Combo() uint64

	// A consistent copy of all counters
	Score() Score
}

type Score struct {
	Hits   uint64
	Misses uint64
	Losses uint64
	Combo  uint64
}

// Points is the value shown as the score label.
func (s Score) Points() uint64 {
	return s.Hits
}

// Power is the chance that, if there was a note, it was hit.
func (s Score) Power() float64 {
	if s.Hits == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Hits+s.Losses)
}

// Significance is the chance that, if a key was struck, it hit a note.
func (s Score) Significance() float64 {
	if s.Hits == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Hits+s.Misses)
}
