package game

import "strings"

// Lane is one of the four fixed note tracks, each bound to one key.
type Lane uint8

const (
	LaneD Lane = iota
	LaneF
	LaneJ
	LaneK
)

const LaneCount = 4

var Lanes = [LaneCount]Lane{LaneD, LaneF, LaneJ, LaneK}

var laneLetters = [LaneCount]string{"D", "F", "J", "K"}

func (l Lane) String() string {
	if int(l) >= LaneCount {
		return "?"
	}
	return laneLetters[l]
}

// ParseLane matches a pressed letter against the lane letters, ignoring case.
func ParseLane(letter string) (Lane, bool) {
	letter = strings.TrimSpace(letter)
	for i, l := range laneLetters {
		if strings.EqualFold(letter, l) {
			return Lane(i), true
		}
	}
	return 0, false
}
