package score

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lixenwraith/vi-snake/constants"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	rankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Report prints the final score and the ranked list
//
//	Final Score: 3
//	Top Scores:
//	1. 3 - Mon Jan  2 15:04:05 2006
//
// styled adds terminal colors without changing the text
func Report(w io.Writer, final int, b *Board, styled bool) error {
	title := func(s string) string { return s }
	rank := func(s string) string { return s }
	if styled {
		title = func(s string) string { return titleStyle.Render(s) }
		rank = func(s string) string { return rankStyle.Render(s) }
	}

	var sb strings.Builder
	sb.WriteString(title(fmt.Sprintf(constants.ReportFinalFormat, final)))
	sb.WriteByte('\n')
	sb.WriteString(title(constants.ReportHeader))
	sb.WriteByte('\n')

	for i, r := range b.Records() {
		line := fmt.Sprintf(constants.ReportRecordFormat, i+1, r.Score, r.At.Format(time.ANSIC))
		if i == 0 {
			line = rank(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
