package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
)

// drawAll paints the full board from the current state
func (l *Loop) drawAll() {
	l.screen.Clear()
	for _, seg := range l.state.Snake {
		l.screen.DrawGlyph(seg.Row, seg.Col, constants.GlyphHead)
	}
	l.screen.DrawGlyph(l.state.Food.Row, l.state.Food.Col, constants.GlyphFood)
	l.drawScore()
	l.screen.Show()
}

// render applies one tick of cell deltas and refreshes the score text
func (l *Loop) render(effects []game.Effect) {
	for _, e := range effects {
		switch e.Kind {
		case game.EffectErase:
			l.screen.DrawGlyph(e.Pos.Row, e.Pos.Col, constants.GlyphEmpty)
		case game.EffectFood:
			l.screen.DrawGlyph(e.Pos.Row, e.Pos.Col, constants.GlyphFood)
		case game.EffectHead:
			l.screen.DrawGlyph(e.Pos.Row, e.Pos.Col, constants.GlyphHead)
		}
	}
	l.drawScore()
	l.screen.Show()
}

func (l *Loop) drawScore() {
	l.screen.DrawText(constants.ScoreTextRow, constants.ScoreTextCol, fmt.Sprintf(constants.ScoreTextFormat, l.state.Score))
}
