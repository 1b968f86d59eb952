package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleNumber      = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue       = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// summary describes a finished run for printSummary.
type summary struct {
	count         int
	width, height int
	step          int
	mode          string
	path          string
	elapsed       time.Duration
}

// printSummary prints a one-line report of the run, plus the output path
// when the buffer went to a file.
func printSummary(w io.Writer, s summary) {
	parts := []string{
		styleNumber.Render(fmt.Sprintf("%d", s.count)) + " particles",
		styleValue.Render(fmt.Sprintf("%dx%d", s.width, s.height)),
		fmt.Sprintf("step %d", s.step),
		s.mode,
	}
	line := styleIconSuccess.Render(iconSuccess) + " " + strings.Join(parts, styleDim.Render(" · "))
	line += " " + styleDim.Render(fmt.Sprintf("(%s)", s.elapsed))
	fmt.Fprintln(w, line)

	if s.path != "" {
		fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(s.path))
	}
}
