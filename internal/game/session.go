package game

import (
	"log/slog"
	"time"

	"git.lost.host/meutraa/yuri/internal/score"
)

type SessionOptions struct {
	Geometry Geometry

	// Maximum notes spawned per lane per tick, 1 if unset
	SpawnLimit int
}

// Session drives the four lanes for one play through a song.
type Session struct {
	Tracks [LaneCount]*Track
	Scorer score.Scorer

	geometry Geometry
}

// NewSession builds a track for every lane. A nil beatmap gives silent lanes.
func NewSession(beatmap *Beatmap, scorer score.Scorer, opts SessionOptions, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		Scorer:   scorer,
		geometry: opts.Geometry,
	}
	if s.geometry == (Geometry{}) {
		s.geometry = DefaultGeometry
	}
	if beatmap == nil {
		beatmap = &Beatmap{}
	}
	for _, lane := range Lanes {
		s.Tracks[lane] = NewTrack(lane, beatmap.Schedules[lane], &s.geometry, scorer, opts.SpawnLimit)
	}
	log.Info("session ready", "notes", beatmap.NoteCount(), "spawn_limit", s.Tracks[0].spawnLimit)
	return s
}

func (s *Session) Geometry() Geometry {
	return s.geometry
}

// Tick advances every lane to now. Spawning runs before positioning so new
// notes are placed before they are drawn, and sweeping runs last so it sees
// the latest states.
func (s *Session) Tick(start, now time.Time) {
	for _, t := range s.Tracks {
		t.SpawnCheck(start, now)
		t.TickAll(now)
		t.SweepTimeouts()
	}
}

// Press judges a key press on the lane matching letter. Letters that match
// no lane are ignored.
func (s *Session) Press(letter string) (Lane, Judgement) {
	lane, ok := ParseLane(letter)
	if !ok {
		return 0, Ignored
	}
	return lane, s.Tracks[lane].Judge(true)
}

// Done reports whether every note has been spawned and resolved.
func (s *Session) Done() bool {
	for _, t := range s.Tracks {
		if t.Pending() > 0 || t.Active() > 0 {
			return false
		}
	}
	return true
}

// Pending is the number of notes in every lane that are yet to spawn.
func (s *Session) Pending() int {
	total := 0
	for _, t := range s.Tracks {
		total += t.Pending()
	}
	return total
}
