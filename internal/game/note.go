package game

import (
	"math"
	"time"
)

type State uint8

const (
	Approaching State = iota // Falling, not yet strikable
	Reachable                // Inside the hit window
	Expired                  // Passed the resolution line unstruck
)

func (s State) String() string {
	switch s {
	case Approaching:
		return "approaching"
	case Reachable:
		return "reachable"
	case Expired:
		return "expired"
	}
	return "unknown"
}

// Note is a single falling note. Its position and state are derived from the
// time elapsed since creation, never integrated frame to frame.
type Note struct {
	Created time.Time

	geometry *Geometry

	// This is state, recomputed by every Tick
	y     float64
	state State
}

func NewNote(created time.Time, g *Geometry) *Note {
	return &Note{Created: created, geometry: g}
}

// Tick moves the note to where it should be at now and returns its state.
// The displacement may overshoot the lane length.
func (n *Note) Tick(now time.Time) State {
	elapsed := now.Sub(n.Created)
	n.y = float64(elapsed) / float64(n.geometry.FallDuration) * n.geometry.LaneLength

	distance := n.geometry.LaneLength - n.y
	switch {
	case distance <= n.geometry.NoteRadius:
		n.state = Expired
	case distance <= n.geometry.HitWindow:
		n.state = Reachable
	default:
		n.state = Approaching
	}
	return n.state
}

func (n *Note) State() State {
	return n.state
}

// Y is the displacement from the top of the lane.
func (n *Note) Y() float64 {
	return n.y
}

func (n *Note) Opacity() float64 {
	return math.Max(0, math.Min(1, 10*n.y/n.geometry.LaneLength))
}

// NoteView is a copy of a note's render-relevant values.
type NoteView struct {
	Y       float64
	Opacity float64
	State   State
}

func (n *Note) View() NoteView {
	return NoteView{Y: n.y, Opacity: n.Opacity(), State: n.state}
}
