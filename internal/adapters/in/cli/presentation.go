package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
)

var (
	colorBorder  = lipgloss.Color("#404040")
	colorHeader  = lipgloss.Color("#00ff88")
	colorText    = lipgloss.Color("#e5e5e5")
	colorMuted   = lipgloss.Color("#737373")
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
)

func cliSuccess(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}

func cliWarning(w io.Writer, format string, args ...any) {
	warningColor.Fprintf(w, format+"\n", args...)
}

func cliError(w io.Writer, format string, args ...any) {
	errorColor.Fprintf(w, format+"\n", args...)
}

func cliInfo(w io.Writer, format string, args ...any) {
	infoColor.Fprintf(w, format+"\n", args...)
}

func cliWriteLine(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

// renderTable draws rows under headers with a rounded border.
func renderTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	mutedStyle := cellStyle.Foreground(colorMuted)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row][col] == "-":
				return mutedStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}
