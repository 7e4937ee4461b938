package main

import (
	"fmt"
	"sync"
	"time"

	"git.lost.host/meutraa/yuri/internal/game"
	"git.lost.host/meutraa/yuri/internal/input"
	"git.lost.host/meutraa/yuri/internal/render"
	"git.lost.host/meutraa/yuri/internal/theme"
)

const (
	laneSpacing   = 6
	sparkleFrames = 24
)

type Program struct {
	Session  *game.Session
	Renderer render.Renderer
	Theme    theme.Theme

	columns     [game.LaneCount]uint16
	top, hitRow uint16
	sideCol     uint16

	// An empty chart plays until the player quits
	endWhenDone bool

	// Hits are judged on the input goroutine and decorated on the frame loop
	hits     chan game.Lane
	quit     chan struct{}
	quitOnce sync.Once

	views []game.NoteView
}

func NewProgram(session *game.Session, r render.Renderer, th theme.Theme, columns, rows int) *Program {
	p := &Program{
		Session:     session,
		Renderer:    r,
		Theme:       th,
		endWhenDone: session.Pending() > 0,
		hits:        make(chan game.Lane, 64),
		quit:        make(chan struct{}),
	}
	p.Resize(columns, rows)
	return p
}

func (p *Program) Resize(columns, rows int) {
	mc := columns >> 1
	for i := range p.columns {
		p.columns[i] = uint16(clamp(mc+laneSpacing*(2*i-3)/2, 1, columns))
	}
	p.top = 2
	p.hitRow = uint16(clamp(rows-3, int(p.top)+1, rows))
	p.sideCol = uint16(clamp(int(p.columns[0])-30, 2, columns))
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// Press is called from the input goroutine.
func (p *Program) Press(ev input.Event) {
	lane, judgement := p.Session.Press(ev.Letter)
	if judgement != game.Hit {
		return
	}
	select {
	case p.hits <- lane:
	default:
	}
}

func (p *Program) Quit() {
	p.quitOnce.Do(func() { close(p.quit) })
}

// Frame advances the game and draws it, returning false once the run is over.
func (p *Program) Frame(start, now time.Time) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	p.Session.Tick(start, now)

	for drained := false; !drained; {
		select {
		case lane := <-p.hits:
			p.Renderer.AddDecoration(p.columns[lane], p.hitRow+1, p.Theme.RenderSparkle(lane), sparkleFrames)
		default:
			drained = true
		}
	}

	p.renderLanes()
	p.renderStats()

	return !p.endWhenDone || !p.Session.Done()
}

// row maps a displacement to a terminal row, false if it is outside the field.
func (p *Program) row(y float64) (uint16, bool) {
	length := p.Session.Geometry().LaneLength
	if y < 0 || y >= length {
		return 0, false
	}
	r := p.top + uint16(y/length*float64(p.hitRow-p.top))
	return r, r < p.hitRow
}

func (p *Program) renderLanes() {
	for _, lane := range game.Lanes {
		col := p.columns[lane]
		for r := p.top; r < p.hitRow; r++ {
			p.Renderer.Fill(r, col, " ")
		}

		p.views = p.Session.Tracks[lane].Views(p.views)
		for _, v := range p.views {
			if r, ok := p.row(v.Y); ok {
				p.Renderer.Fill(r, col, p.Theme.RenderNote(lane, v))
			}
		}
		c, field := p.Theme.RenderHitField(lane)
		p.Renderer.FillColor(p.hitRow, col-1, c, field)
	}
}

func (p *Program) renderStats() {
	s := p.Session.Scorer.Score()
	p.Renderer.Fill(4, p.sideCol, fmt.Sprintf("       Combo:  %6v", s.Combo))
	p.Renderer.Fill(5, p.sideCol, fmt.Sprintf("       Score:  %6v", s.Points()))
	p.Renderer.Fill(7, p.sideCol, fmt.Sprintf("        Hits:  %6v", s.Hits))
	p.Renderer.Fill(8, p.sideCol, fmt.Sprintf("      Misses:  %6v", s.Misses))
	p.Renderer.Fill(9, p.sideCol, fmt.Sprintf("      Losses:  %6v", s.Losses))
	p.Renderer.Fill(11, p.sideCol, fmt.Sprintf("       Power:  %5.1f%%", 100*s.Power()))
	p.Renderer.Fill(12, p.sideCol, fmt.Sprintf("Significance:  %5.1f%%", 100*s.Significance()))
}
