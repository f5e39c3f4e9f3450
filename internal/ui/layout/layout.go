// Package layout draws the application chrome: header bar, key-hint
// footer and the frame that stacks them around a screen's content.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Smallest terminal the quiz view fits in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// compactWidth is where the footer drops hint descriptions.
const compactWidth = 100

// KeyHint is one footer entry, e.g. {"Enter", "Next"}.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage replaces the whole frame while the terminal is
// below the minimum size.
func RenderMinSizeMessage(width, height int) string {
	body := fmt.Sprintf("Terminal too small\n\nNeeds %d x %d, have %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(body))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader draws the app name on the left, title centered and status
// on the right.
func RenderHeader(title, status string, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Quizdeck")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	side := lipgloss.NewStyle().Foreground(theme.Accent).Render(status + "  ")

	inner := max(width-4, 0)
	bw, mw, sw := lipgloss.Width(brand), lipgloss.Width(mid), lipgloss.Width(side)

	gapL := max((inner-mw)/2-bw, 1)
	gapR := max(inner-bw-gapL-mw-sw, 1)

	return bar(width).Render(brand + strings.Repeat(" ", gapL) + mid + strings.Repeat(" ", gapR) + side)
}

// RenderFooter draws the key hints. Narrow terminals get keys only, and
// hints that still do not fit are dropped from the end.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	compact := width < compactWidth

	line := " "
	for _, h := range hints {
		part := keyStyle.Render(h.Key)
		if !compact && h.Description != "" {
			part += " " + descStyle.Render(h.Description)
		}
		if lipgloss.Width(line)+lipgloss.Width(part)+3 > width-4 {
			break
		}
		line += "  " + part
	}
	return bar(width).Render(line)
}

// RenderFrame stacks header, content and footer, giving the content all
// the height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}
