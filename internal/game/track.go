package game

import (
	"sync"
	"time"

	"git.lost.host/meutraa/yuri/internal/score"
)

// Track owns one lane: the offsets still waiting to spawn and the notes
// currently falling. Only the oldest falling note is ever judged or timed
// out. All methods are safe to call from the frame loop and the input
// handler at the same time.
type Track struct {
	Lane Lane

	mu         sync.Mutex
	geometry   *Geometry
	recorder   score.Recorder
	spawnLimit int
	pending    *queue[time.Duration]
	active     *queue[*Note]
}

// NewTrack copies schedule, which must be ordered by offset from song start.
// A spawnLimit below 1 is treated as 1.
func NewTrack(lane Lane, schedule []time.Duration, g *Geometry, recorder score.Recorder, spawnLimit int) *Track {
	if spawnLimit < 1 {
		spawnLimit = 1
	}
	pending := newQueue[time.Duration](len(schedule))
	for _, offset := range schedule {
		pending.PushBack(offset)
	}
	return &Track{
		Lane:       lane,
		geometry:   g,
		recorder:   recorder,
		spawnLimit: spawnLimit,
		pending:    pending,
		active:     newQueue[*Note](len(schedule)),
	}
}

// SpawnCheck moves due offsets from the schedule to the falling notes, at
// most spawnLimit per call. New notes are created at now, not at their
// scheduled offset. It returns how many notes were spawned.
func (t *Track) SpawnCheck(start, now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := now.Sub(start)
	spawned := 0
	for spawned < t.spawnLimit {
		offset, ok := t.pending.Front()
		if !ok || elapsed < offset {
			break
		}
		t.pending.PopFront()
		t.active.PushBack(NewNote(now, t.geometry))
		spawned++
	}
	return spawned
}

// TickAll moves every falling note to its position at now.
func (t *Track) TickAll(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.active.Each(func(n *Note) {
		n.Tick(now)
	})
}

// SweepTimeouts removes the oldest note if it has expired and records a loss.
func (t *Track) SweepTimeouts() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	head, ok := t.active.Front()
	if !ok || head.State() != Expired {
		return false
	}
	t.active.PopFront()
	t.recorder.RecordLoss()
	return true
}

// Judge resolves a key press. A press for another lane is ignored. Only a
// reachable oldest note is a hit; anything else is a miss and leaves the
// notes untouched.
func (t *Track) Judge(matchesLane bool) Judgement {
	if !matchesLane {
		return Ignored
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	head, ok := t.active.Front()
	if !ok || head.State() != Reachable {
		t.recorder.RecordMiss()
		return Miss
	}
	t.active.PopFront()
	t.recorder.RecordHit()
	return Hit
}

// Active is the number of falling notes.
func (t *Track) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active.Len()
}

// Pending is the number of offsets not yet spawned.
func (t *Track) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending.Len()
}

// Views copies the falling notes, oldest first, into dst.
func (t *Track) Views(dst []NoteView) []NoteView {
	t.mu.Lock()
	defer t.mu.Unlock()

	dst = dst[:0]
	t.active.Each(func(n *Note) {
		dst = append(dst, n.View())
	})
	return dst
}

// Created reports the creation times of the falling notes, oldest first.
func (t *Track) Created() []time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	times := make([]time.Time, 0, t.active.Len())
	t.active.Each(func(n *Note) {
		times = append(times, n.Created)
	})
	return times
}
