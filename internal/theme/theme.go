package theme

import (
	"image/color"

	"git.lost.host/meutraa/yuri/internal/game"
)

type Theme interface {
	RenderNote(lane game.Lane, note game.NoteView) string
	RenderHitField(lane game.Lane) (color.RGBA, string)
	RenderSparkle(lane game.Lane) string
}
