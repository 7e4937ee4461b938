package input

import (
	"log/slog"
	"strings"

	"github.com/eiannone/keyboard"
)

type Event struct {
	Letter string // Lowercased, empty for keys without a rune
	Quit   bool
}

func translate(key keyboard.KeyEvent) Event {
	switch key.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Quit: true}
	}
	if key.Rune == 0 {
		return Event{}
	}
	return Event{Letter: strings.ToLower(string(key.Rune))}
}

// ReadInput opens the keyboard and forwards key presses to handle from its
// own goroutine until a quit key is pressed or close is called. quit is
// called once either way.
func ReadInput(buffer int, handle func(Event), quit func(), log *slog.Logger) (func() error, error) {
	keys, err := keyboard.GetKeys(buffer)
	if nil != err {
		return nil, err
	}
	go func() {
		defer quit()
		for key := range keys {
			if nil != key.Err {
				log.Warn("unable to read keyboard input", "err", key.Err)
				return
			}
			ev := translate(key)
			if ev.Quit {
				return
			}
			handle(ev)
		}
	}()
	return keyboard.Close, nil
}
