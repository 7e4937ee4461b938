package game

// Judgement is the outcome of a key press on a lane.
type Judgement uint8

const (
	Ignored Judgement = iota // The press was not for this lane
	Hit
	Miss
)

func (j Judgement) String() string {
	switch j {
	case Ignored:
		return "ignored"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return "unknown"
}
