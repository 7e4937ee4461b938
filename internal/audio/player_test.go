package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDecoderFor(t *testing.T) {
	for _, file := range []string{"a.mp3", "b.OGG", "dir/c.ogg"} {
		if _, err := decoderFor(file); nil != err {
			t.Errorf("%v: %v", file, err)
		}
	}
	for _, file := range []string{"a.wav", "b", "c.yrct"} {
		if _, err := decoderFor(file); nil == err {
			t.Errorf("%v has a decoder", file)
		}
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	if _, err := Find(dir, "Cadente"); !errors.Is(err, ErrNoAudio) {
		t.Fatalf("error %v, expected ErrNoAudio", err)
	}

	for _, name := range []string{"cadente.mp3", "cadente.ogg"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); nil != err {
			t.Fatal(err)
		}
	}
	p, err := Find(dir, "Cadente")
	if nil != err {
		t.Fatal(err)
	}
	if p != filepath.Join(dir, "cadente.ogg") {
		t.Errorf("found %v, expected the ogg file", p)
	}
}

func TestUntilStart(t *testing.T) {
	now := time.Unix(100, 0)
	tests := map[time.Duration]time.Duration{
		1500 * time.Millisecond: 1500 * time.Millisecond,
		0:                       0,
		-time.Second:            0,
	}
	for offset, expected := range tests {
		if d := untilStart(now.Add(offset), now); d != expected {
			t.Errorf("start %v from now: wait %v, expected %v", offset, d, expected)
		}
	}
}
