package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/yuri/internal/game"
)

const Extension = ".yrct"

type Parser interface {
	Parse(file string) (*game.Beatmap, error)
}

// ChartPath is the beatmap file for a song title inside dir.
func ChartPath(dir, title string) string {
	return filepath.Join(dir, strings.ToLower(title)+Extension)
}

// ChartLoadError reports a beatmap that could not be fully loaded. Lane is
// only meaningful when HasLane is set; otherwise every lane is affected.
type ChartLoadError struct {
	Path    string
	Lane    game.Lane
	HasLane bool
	Reason  string
	Err     error
}

func (e *ChartLoadError) Error() string {
	msg := fmt.Sprintf("unable to load chart %v: %v", e.Path, e.Reason)
	if e.HasLane {
		msg = fmt.Sprintf("unable to load chart %v lane %v: %v", e.Path, e.Lane, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ChartLoadError) Unwrap() error {
	return e.Err
}
