package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

// Extensions lists the supported audio files, in order of preference.
var Extensions = []string{".ogg", ".mp3"}

var ErrNoAudio = errors.New("no audio file found")

type decoder func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(file string) (decoder, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".ogg":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) }, nil
	}
	return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(file))
}

// Find returns the audio file for a song title inside dir.
func Find(dir, title string) (string, error) {
	for _, ext := range Extensions {
		p := filepath.Join(dir, strings.ToLower(title)+ext)
		if _, err := os.Stat(p); nil == err {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w for %v in %v", ErrNoAudio, title, dir)
}

type Player struct {
	streamer beep.StreamSeekCloser
}

// Open decodes file and prepares the speaker for it.
func Open(file string) (*Player, error) {
	decode, err := decoderFor(file)
	if nil != err {
		return nil, err
	}
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	streamer, format, err := decode(f)
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		streamer.Close()
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}
	return &Player{streamer: streamer}, nil
}

// PlayAt starts the song at start, or immediately if start has passed.
func (p *Player) PlayAt(start time.Time) {
	time.AfterFunc(untilStart(start, time.Now()), func() {
		speaker.Play(p.streamer)
	})
}

func untilStart(start, now time.Time) time.Duration {
	if d := start.Sub(now); d > 0 {
		return d
	}
	return 0
}

func (p *Player) Close() error {
	speaker.Clear()
	return p.streamer.Close()
}
