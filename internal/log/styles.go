package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
)

var (
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")) // Gray
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AFFF")) // Blue
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")) // Yellow
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")) // Red

	fatalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Background(lipgloss.Color("#000000")).
			Bold(true)

	levelStyles = []struct {
		level    charmlog.Level
		maxWidth int
		style    lipgloss.Style
	}{
		{level: charmlog.DebugLevel, maxWidth: 5, style: debugStyle},
		{level: charmlog.InfoLevel, maxWidth: 5, style: infoStyle},
		{level: charmlog.WarnLevel, maxWidth: 5, style: warnStyle},
		{level: charmlog.ErrorLevel, maxWidth: 5, style: errorStyle},
		{level: charmlog.FatalLevel, maxWidth: 5, style: fatalStyle},
	}
)

// DefaultStyles returns charm's default styles with fixed-width,
// colored level labels.
func DefaultStyles() *charmlog.Styles {
	styles := charmlog.DefaultStyles()
	for _, ls := range levelStyles {
		levelStr := strings.ToUpper(ls.level.String())
		if len(levelStr) < ls.maxWidth {
			levelStr = levelStr + strings.Repeat(" ", ls.maxWidth-len(levelStr))
		}
		styles.Levels[ls.level] = ls.style.SetString(levelStr)
	}
	return styles
}
