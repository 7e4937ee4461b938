package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/yuri/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(lane game.Lane, note game.NoteView) string {
	c := Fade(laneColors[lane%game.LaneCount], note.Opacity)
	sym := noteSym
	if note.State == game.Reachable {
		sym = reachableSym
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) RenderHitField(lane game.Lane) (color.RGBA, string) {
	return traceColor, fmt.Sprintf("(%v)", lane)
}

func (t *DefaultTheme) RenderSparkle(lane game.Lane) string {
	c := laneColors[lane%game.LaneCount]
	return fmt.Sprintf("\033[1;38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sparkleSym)
}

const (
	noteSym      = "○"
	reachableSym = "⬤"
	sparkleSym   = "✦"
)

var (
	traceColor = color.RGBA{0x8e, 0xbc, 0xbb, 0xff} // frost teal

	// aurora red, orange, yellow, green
	laneColors = [game.LaneCount]color.RGBA{
		{0xc1, 0x60, 0x69, 0xff},
		{0xd2, 0x87, 0x6d, 0xff},
		{0xec, 0xcc, 0x87, 0xff},
		{0xa2, 0xbf, 0x8a, 0xff},
	}
)

// Fade scales a colour towards black, opacity is clamped to [0, 1].
func Fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: c.A,
	}
}
