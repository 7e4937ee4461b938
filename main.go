package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"git.lost.host/meutraa/yuri/internal/audio"
	"git.lost.host/meutraa/yuri/internal/config"
	"git.lost.host/meutraa/yuri/internal/game"
	"git.lost.host/meutraa/yuri/internal/input"
	"git.lost.host/meutraa/yuri/internal/parser"
	"git.lost.host/meutraa/yuri/internal/render"
	"git.lost.host/meutraa/yuri/internal/score"
	"git.lost.host/meutraa/yuri/internal/theme"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func newLogger(file string) (*slog.Logger, func() error, error) {
	if file == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), f.Close, nil
}

// loadBeatmap never fails: a broken chart leaves the affected lanes silent.
func loadBeatmap(psr parser.Parser, file string, log *slog.Logger) *game.Beatmap {
	beatmap, err := psr.Parse(file)
	if nil != err {
		var cle *parser.ChartLoadError
		if errors.As(err, &cle) {
			log.Warn("chart load error, affected lanes will be silent", "chart", cle.Path, "err", err)
		} else {
			log.Warn("chart load error", "chart", file, "err", err)
		}
	}
	if nil == beatmap {
		beatmap = &game.Beatmap{}
	}
	return beatmap
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if nil != err {
		return err
	}
	defer closeLog()

	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{}
	var th theme.Theme = &theme.DefaultTheme{}
	var r render.Renderer = render.NewDefaultRenderer(cfg.FramePeriod)
	var scorer score.Scorer = score.NewDefaultScorer(cfg.MissResetsCombo)

	chartFile := parser.ChartPath(cfg.Directory, cfg.Song)
	beatmap := loadBeatmap(psr, chartFile, logger)

	session := game.NewSession(beatmap, scorer, game.SessionOptions{
		Geometry:   cfg.Geometry,
		SpawnLimit: cfg.SpawnLimit,
	}, logger)

	var player *audio.Player
	if !cfg.Mute {
		if file, err := audio.Find(cfg.Directory, cfg.Song); nil != err {
			logger.Warn("playing without music", "err", err)
		} else if player, err = audio.Open(file); nil != err {
			logger.Warn("playing without music", "file", file, "err", err)
			player = nil
		} else {
			defer player.Close()
		}
	}

	columns, rows, err := r.Size()
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	p := NewProgram(session, r, th, columns, rows)

	closeKeyboard, err := input.ReadInput(128, p.Press, p.Quit, logger)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := closeKeyboard(); nil != err {
			logger.Warn("unable to close keyboard", "err", err)
		}
	}()

	if err := r.Init(); nil != err {
		return fmt.Errorf("unable to prepare terminal: %w", err)
	}

	// The music and the chart share one clock
	start := time.Now().Add(cfg.Delay)
	if nil != player {
		player.PlayAt(start)
	}
	r.RenderLoop(start, p.Frame)
	if err := r.Deinit(); nil != err {
		logger.Warn("unable to restore terminal", "err", err)
	}

	s := scorer.Score()
	logger.Info("session over",
		"hits", s.Hits, "misses", s.Misses, "losses", s.Losses, "combo", s.Combo,
		"power", s.Power(), "significance", s.Significance())
	fmt.Println(summary(cfg.Song, s))
	return nil
}

func summary(song string, s score.Score) string {
	return fmt.Sprintf("%v\n  Score: %v\n   Hits: %v\n Misses: %v\n Losses: %v\n  Power: %5.1f%%\n   Sig.: %5.1f%%",
		song, s.Points(), s.Hits, s.Misses, s.Losses, 100*s.Power(), 100*s.Significance())
}
