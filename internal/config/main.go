package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/yuri/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	Directory       string
	Song            string
	Delay           time.Duration
	FramePeriod     time.Duration
	Geometry        game.Geometry
	SpawnLimit      int
	MissResetsCombo bool
	Mute            bool
	LogFile         string
}

// Parse reads the command line, without the program name.
func Parse(args []string) (*Config, error) {
	app := kingpin.New("yuri", "A four key rhythm game")
	app.Version(Version)

	var (
		directory       = app.Arg("directory", "Song/chart directory").Required().ExistingDir()
		song            = app.Flag("song", "Song title, the chart and audio files are named after it").Default("Cadente").Short('s').String()
		delay           = app.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
		framePeriod     = app.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Duration()
		fallDuration    = app.Flag("fall-duration", "Time for a note to reach the hit line").Default("2s").Duration()
		laneLength      = app.Flag("lane-length", "Length of a lane").Default("600").Float64()
		hitWindow       = app.Flag("hit-window", "Distance from the hit line at which a note can be struck").Default("100").Float64()
		noteRadius      = app.Flag("note-radius", "Distance from the hit line at which a note is lost").Default("15").Float64()
		spawnLimit      = app.Flag("spawn-limit", "Notes spawned per lane per frame").Default("1").Int()
		missResetsCombo = app.Flag("miss-resets-combo", "Break the combo on a miss as well as a loss").Bool()
		mute            = app.Flag("mute", "Do not play the song").Short('m').Bool()
		logFile         = app.Flag("log-file", "Write diagnostics to this file instead of stderr").String()
	)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	c := &Config{
		Directory:   *directory,
		Song:        *song,
		Delay:       *delay,
		FramePeriod: *framePeriod,
		Geometry: game.Geometry{
			FallDuration: *fallDuration,
			LaneLength:   *laneLength,
			HitWindow:    *hitWindow,
			NoteRadius:   *noteRadius,
		},
		SpawnLimit:      *spawnLimit,
		MissResetsCombo: *missResetsCombo,
		Mute:            *mute,
		LogFile:         *logFile,
	}

	if err := c.Geometry.Validate(); nil != err {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}
	if c.SpawnLimit < 1 {
		return nil, fmt.Errorf("spawn limit must be at least 1, got %v", c.SpawnLimit)
	}
	if c.FramePeriod <= 0 {
		return nil, fmt.Errorf("frame period must be positive, got %v", c.FramePeriod)
	}
	return c, nil
}
