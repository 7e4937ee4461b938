package game

import (
	"errors"
	"math"
	"time"
)

// Geometry describes how far a note falls and where it can be struck.
// Distances are in the same arbitrary unit as LaneLength.
type Geometry struct {
	FallDuration time.Duration // Time for a note to travel LaneLength
	LaneLength   float64
	HitWindow    float64 // Distance above the resolution line where a note is reachable
	NoteRadius   float64 // Distance above the resolution line where a note expires
}

var DefaultGeometry = Geometry{
	FallDuration: 2 * time.Second,
	LaneLength:   600,
	HitWindow:    100,
	NoteRadius:   15,
}

func (g Geometry) Validate() error {
	switch {
	case g.FallDuration <= 0:
		return errors.New("fall duration must be positive")
	case g.LaneLength <= 0:
		return errors.New("lane length must be positive")
	case g.NoteRadius <= 0:
		return errors.New("note radius must be positive")
	case g.HitWindow <= g.NoteRadius:
		return errors.New("hit window must be larger than the note radius")
	case g.HitWindow >= g.LaneLength:
		return errors.New("hit window must be smaller than the lane length")
	}
	return nil
}

// ReachableAfter is the earliest elapsed time at which a note is reachable.
func (g Geometry) ReachableAfter() time.Duration {
	return g.after(g.HitWindow)
}

// ExpiredAfter is the earliest elapsed time at which a note has expired.
func (g Geometry) ExpiredAfter() time.Duration {
	return g.after(g.NoteRadius)
}

func (g Geometry) after(distance float64) time.Duration {
	return time.Duration(math.Ceil(float64(g.FallDuration) * (1 - distance/g.LaneLength)))
}
