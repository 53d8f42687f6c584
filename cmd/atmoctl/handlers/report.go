package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/atmoctl/internal/launch"
)

// Colors matching internal/ui/progress/styles.go palette.
var (
	reportColorGreen = lipgloss.Color("#22c55e")
	reportColorRed   = lipgloss.Color("#ef4444")
	reportColorBlue  = lipgloss.Color("#3b82f6")
	reportColorDim   = lipgloss.Color("#6b7280")
	reportColorWhite = lipgloss.Color("#f9fafb")
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorWhite)

	reportSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorBlue)

	reportDimStyle = lipgloss.NewStyle().
			Foreground(reportColorDim)

	reportGreenStyle = lipgloss.NewStyle().
				Foreground(reportColorGreen)

	reportRedStyle = lipgloss.NewStyle().
			Foreground(reportColorRed)
)

// RenderReport produces the per-account outcome summary printed after a
// batch run. With colored false every style degrades to plain text, for
// piped output.
func RenderReport(outcomes []launch.OutcomeRecord, colored bool) string {
	paint := func(style lipgloss.Style, s string) string {
		if !colored {
			return s
		}
		return style.Render(s)
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(paint(reportTitleStyle, "  Launch outcomes"))
	b.WriteString("\n")
	b.WriteString(paint(reportDimStyle, "  "+strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	succeeded := 0
	for _, rec := range outcomes {
		b.WriteString(renderOutcomeLine(rec, paint))
		b.WriteString("\n")
		if rec.Classification == launch.ClassSucceeded {
			succeeded++
		}
	}

	b.WriteString("\n")
	b.WriteString(paint(reportSectionStyle, "  Summary"))
	b.WriteString("\n")
	b.WriteString(paint(reportDimStyle, "  "+strings.Repeat("─", 30)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("    Succeeded: %d\n", succeeded))
	b.WriteString(fmt.Sprintf("    Failed:    %d\n", len(outcomes)-succeeded))
	b.WriteString("\n")

	return b.String()
}

func renderOutcomeLine(rec launch.OutcomeRecord, paint func(lipgloss.Style, string) string) string {
	elapsed := rec.Elapsed.Round(time.Second)

	if rec.Classification == launch.ClassSucceeded {
		instance := ""
		if rec.Instance != nil {
			instance = rec.Instance.ID
		}
		return fmt.Sprintf("  %s %-20s %s  %s %s",
			paint(reportGreenStyle, "[OK]"),
			rec.Username,
			paint(reportGreenStyle, string(rec.Classification)),
			paint(reportDimStyle, instance),
			paint(reportDimStyle, elapsed.String()))
	}

	detail := string(rec.Classification)
	if rec.Err != nil {
		detail = fmt.Sprintf("%s: %v", rec.Classification, rec.Err)
	}
	return fmt.Sprintf("  %s %-20s %s  %s",
		paint(reportRedStyle, "[!!]"),
		rec.Username,
		paint(reportRedStyle, detail),
		paint(reportDimStyle, elapsed.String()))
}
