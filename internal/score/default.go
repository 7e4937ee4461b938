package score

import "sync"

// DefaultScorer holds the counters for one session. It is shared by every
// lane and by the displays, and is safe for concurrent use.
type DefaultScorer struct {
	mu    sync.RWMutex
	score Score

	// Off by default: only a loss breaks the combo
	missResetsCombo bool
}

func NewDefaultScorer(missResetsCombo bool) *DefaultScorer {
	return &DefaultScorer{missResetsCombo: missResetsCombo}
}

func (s *DefaultScorer) RecordHit() {
	s.mu.Lock()
	s.score.Hits++
	s.score.Combo++
	s.mu.Unlock()
}

func (s *DefaultScorer) RecordMiss() {
	s.mu.Lock()
	s.score.Misses++
	if s.missResetsCombo {
		s.score.Combo = 0
	}
	s.mu.Unlock()
}

func (s *DefaultScorer) RecordLoss() {
	s.mu.Lock()
	s.score.Losses++
	s.score.Combo = 0
	s.mu.Unlock()
}

func (s *DefaultScorer) Score() Score {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score
}

func (s *DefaultScorer) Hits() uint64   { return s.Score().Hits }
func (s *DefaultScorer) Misses() uint64 { return s.Score().Misses }
func (s *DefaultScorer) Losses() uint64 { return s.Score().Losses }
func (s *DefaultScorer) Combo() uint64  { return s.Score().Combo }
