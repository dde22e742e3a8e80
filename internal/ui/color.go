package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	trkStyle    = lipgloss.NewStyle().Faint(true)
	delStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().Faint(true)
)

func NewLine(w io.Writer, path string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+path)
}

func TrkLine(w io.Writer, path string) {
	fmt.Fprintln(w, trkStyle.Render("trk")+"  "+path)
}

func DelLine(w io.Writer, path string) {
	fmt.Fprintln(w, delStyle.Render("del")+"  "+path)
}

func WarnLine(w io.Writer, path string, line int, message string) {
	fmt.Fprintf(w, "%s  %s:%d: %s\n", warnStyle.Render("wrn"), path, line, message)
}

func SummaryLine(w io.Writer, files, steps int) {
	fmt.Fprintf(w, "synced %d files, %d steps\n", files, steps)
}

// StepRow prints one tracked step with its columns padded to the given widths.
func StepRow(w io.Writer, id int64, location, step string, idWidth, locWidth int) {
	tag := fmt.Sprintf("#%d", id)
	pad := strings.Repeat(" ", max(idWidth-len(tag), 0))
	fmt.Fprintf(w, "%s%s  %-*s  %s\n", idStyle.Render(tag), pad, locWidth, location, step)
}

// SnippetHeader names the step a snippet was generated for.
func SnippetHeader(w io.Writer, location, step string) {
	fmt.Fprintln(w, headerStyle.Render(location+"  "+step))
}

func Snippet(w io.Writer, text string) {
	fmt.Fprint(w, text)
}
