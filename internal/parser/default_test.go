package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/yuri/internal/game"
	"git.lost.host/meutraa/yuri/internal/testdata"
)

func equal(p, q []time.Duration) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func TestParseOffsets(t *testing.T) {
	psr := DefaultParser{}
	beatmap, err := psr.ParseReader("test", strings.NewReader("1.5\n128\nD\n0 4\n"))
	if nil != err {
		t.Fatal(err)
	}

	interval := time.Duration(4 * (60.0 / 128) * 1e9)
	expected := []time.Duration{1500 * time.Millisecond, 1500*time.Millisecond + interval}
	if !equal(beatmap.Schedules[game.LaneD], expected) {
		t.Errorf("offsets %v, expected %v", beatmap.Schedules[game.LaneD], expected)
	}
	if beatmap.BeatInterval != 468750*time.Microsecond {
		t.Errorf("beat interval %v", beatmap.BeatInterval)
	}
	for _, lane := range []game.Lane{game.LaneF, game.LaneJ, game.LaneK} {
		if len(beatmap.Schedules[lane]) != 0 {
			t.Errorf("lane %v without a section has %v notes", lane, len(beatmap.Schedules[lane]))
		}
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := testdata.WriteBeatmap(dir, "cadente"+Extension, testdata.Beatmap); nil != err {
		t.Fatal(err)
	}

	psr := DefaultParser{}
	beatmap, err := psr.Parse(ChartPath(dir, "Cadente"))
	if nil != err {
		t.Fatal(err)
	}

	counts := map[game.Lane]int{game.LaneD: 5, game.LaneF: 4, game.LaneJ: 4, game.LaneK: 4}
	for lane, count := range counts {
		if len(beatmap.Schedules[lane]) != count {
			t.Errorf("lane %v has %v notes, expected %v", lane, len(beatmap.Schedules[lane]), count)
		}
	}
	if beatmap.NoteCount() != 17 {
		t.Errorf("note count %v", beatmap.NoteCount())
	}

	// Sections may span lines
	d := beatmap.Schedules[game.LaneD]
	if d[4] != beatmap.Delay+16*beatmap.BeatInterval {
		t.Errorf("last D offset %v", d[4])
	}
}

func TestParseSectionTerminators(t *testing.T) {
	in := `0
60
K 3 1 x 7
D
2
D
9
`
	psr := DefaultParser{}
	beatmap, err := psr.ParseReader("test", strings.NewReader(in))
	if nil != err {
		t.Fatal(err)
	}

	// Unsorted beats are kept in file order
	if k := beatmap.Schedules[game.LaneK]; !equal(k, []time.Duration{3 * time.Second, time.Second}) {
		t.Errorf("K offsets %v", k)
	}
	// Only the first section for a lane is used
	if d := beatmap.Schedules[game.LaneD]; !equal(d, []time.Duration{2 * time.Second}) {
		t.Errorf("D offsets %v", d)
	}
}

var headerTests = map[string]string{
	"":              "missing delay",
	"soon\n128\n":   "malformed delay",
	"1e300\n128\n":  "malformed delay",
	"-1e300\n128\n": "malformed delay",
	"inf\n128\n":    "malformed delay",
	"1.5\n":         "missing bpm",
	"1.5\nfast\n":   "malformed bpm",
	"1.5\n128.5\n":  "malformed bpm",
	"1.5\n0\nD 1\n": "bpm must be positive",
}

func TestParseHeaderErrors(t *testing.T) {
	psr := DefaultParser{}
	for in, reason := range headerTests {
		beatmap, err := psr.ParseReader("test", strings.NewReader(in))
		var cle *ChartLoadError
		if !errors.As(err, &cle) {
			t.Errorf("%q: error %v, expected a ChartLoadError", in, err)
			continue
		}
		if cle.Reason != reason || cle.HasLane {
			t.Errorf("%q: %v, expected %v", in, cle, reason)
		}
		if nil == beatmap || beatmap.NoteCount() != 0 {
			t.Errorf("%q: beatmap %v, expected an empty one", in, beatmap)
		}
	}
}

func TestParseLaneErrorKeepsOtherLanes(t *testing.T) {
	psr := DefaultParser{}
	beatmap, err := psr.ParseReader("test", strings.NewReader("1\n120\nD 0 1\nF 2 -3 4\nJ 5\n"))

	var cle *ChartLoadError
	if !errors.As(err, &cle) || !cle.HasLane || cle.Lane != game.LaneF {
		t.Fatalf("error %v, expected a lane F ChartLoadError", err)
	}
	if len(beatmap.Schedules[game.LaneF]) != 0 {
		t.Errorf("broken lane has %v notes", len(beatmap.Schedules[game.LaneF]))
	}
	if len(beatmap.Schedules[game.LaneD]) != 2 || len(beatmap.Schedules[game.LaneJ]) != 1 {
		t.Errorf("other lanes were dropped: %v", beatmap.Schedules)
	}
}

func TestParseMissingFile(t *testing.T) {
	psr := DefaultParser{}
	p := filepath.Join(t.TempDir(), "nothing"+Extension)
	beatmap, err := psr.Parse(p)

	var cle *ChartLoadError
	if !errors.As(err, &cle) || cle.Path != p {
		t.Fatalf("error %v, expected a ChartLoadError for %v", err, p)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not unwrap to os.ErrNotExist", err)
	}
	if nil == beatmap || beatmap.NoteCount() != 0 {
		t.Errorf("beatmap %v, expected an empty one", beatmap)
	}
}

func TestChartPath(t *testing.T) {
	if p := ChartPath("assets", "Cadente"); p != filepath.Join("assets", "cadente.yrct") {
		t.Errorf("path %v", p)
	}
}
