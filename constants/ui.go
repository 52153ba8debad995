package constants

// Glyphs
const (
	GlyphHead  = '*'
	GlyphFood  = '#'
	GlyphEmpty = ' '
)

// Score Text Placement (drawn over the top border)
const (
	ScoreTextRow    = 0
	ScoreTextCol    = 2
	ScoreTextFormat = "Score: %d "
)

// Report Text
const (
	ReportFinalFormat  = "Final Score: %d"
	ReportHeader       = "Top Scores:"
	ReportRecordFormat = "%d. %d - %s"
)
