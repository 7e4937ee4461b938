package parser

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"git.lost.host/meutraa/yuri/internal/game"
)

// The file layout is
//
//	<delay in seconds, float>
//	<beats per minute, int>
//	<lane letter>
//	<beat indices separated by spaces or newlines>
//	<lane letter>
//	...
//
// A lane section ends at the first token that is not an integer. Only the
// first section for a lane is used. Beats are not sorted.
type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Beatmap, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return &game.Beatmap{}, &ChartLoadError{Path: file, Reason: "unable to read file", Err: err}
	}
	return p.ParseReader(file, bytes.NewReader(data))
}

// ParseReader parses a beatmap named name. The returned beatmap is never nil;
// on a lane error the remaining lanes are still filled in.
func (p *DefaultParser) ParseReader(name string, r io.Reader) (*game.Beatmap, error) {
	beatmap := &game.Beatmap{}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if scanner.Scan() {
			return scanner.Text(), true
		}
		return "", false
	}

	token, ok := next()
	if !ok {
		return beatmap, &ChartLoadError{Path: name, Reason: "missing delay", Err: scanner.Err()}
	}
	seconds, err := strconv.ParseFloat(token, 64)
	if nil != err || math.IsNaN(seconds) || math.Abs(seconds*1e9) > math.MaxInt64 {
		return beatmap, &ChartLoadError{Path: name, Reason: "malformed delay", Err: err}
	}

	token, ok = next()
	if !ok {
		return beatmap, &ChartLoadError{Path: name, Reason: "missing bpm", Err: scanner.Err()}
	}
	bpm, err := strconv.ParseInt(token, 10, 64)
	if nil != err {
		return beatmap, &ChartLoadError{Path: name, Reason: "malformed bpm", Err: err}
	}
	if bpm <= 0 {
		return beatmap, &ChartLoadError{Path: name, Reason: "bpm must be positive"}
	}

	beatmap.Delay = time.Duration(1e9 * seconds)
	beatmap.BeatInterval = time.Duration((1e9 / float64(bpm)) * 60)

	var errs []error
	seen := [game.LaneCount]bool{}

	token, ok = next()
	for ok {
		lane, isLane := laneHeader(token)
		if !isLane {
			token, ok = next()
			continue
		}

		var offsets []time.Duration
		var laneErr error
		for token, ok = next(); ok; token, ok = next() {
			beat, err := strconv.ParseInt(token, 10, 64)
			if nil != err {
				// Not a beat, so the section is over
				break
			}
			if nil != laneErr {
				continue
			}
			offset, err := offsetOf(beatmap, beat)
			if nil != err {
				laneErr = &ChartLoadError{Path: name, Lane: lane, HasLane: true, Reason: err.Error()}
				continue
			}
			offsets = append(offsets, offset)
		}

		if seen[lane] {
			continue
		}
		seen[lane] = true
		if nil != laneErr {
			errs = append(errs, laneErr)
			continue
		}
		beatmap.Schedules[lane] = offsets
	}

	if err := scanner.Err(); nil != err {
		return beatmap, &ChartLoadError{Path: name, Reason: "unable to read file", Err: err}
	}
	return beatmap, errors.Join(errs...)
}

func laneHeader(token string) (game.Lane, bool) {
	for _, lane := range game.Lanes {
		if token == lane.String() {
			return lane, true
		}
	}
	return 0, false
}

func offsetOf(b *game.Beatmap, beat int64) (time.Duration, error) {
	if beat < 0 {
		return 0, errors.New("negative beat " + strconv.FormatInt(beat, 10))
	}
	limit := int64(math.MaxInt64)
	if b.Delay > 0 {
		limit -= int64(b.Delay)
	}
	if b.BeatInterval > 0 && beat > limit/int64(b.BeatInterval) {
		return 0, errors.New("beat " + strconv.FormatInt(beat, 10) + " is out of range")
	}
	return b.Delay + b.BeatInterval*time.Duration(beat), nil
}
