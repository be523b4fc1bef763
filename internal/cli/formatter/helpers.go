package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/shamsu/conops/internal/contract"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatDays renders a mission-day value with up to two decimals and no
// trailing zeros, so 4.00 prints as "4" and 3.50 as "3.5".
func FormatDays(d float64) string {
	s := strconv.FormatFloat(d, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-0" {
		s = "0"
	}
	return s
}

// DurationDays renders a span length such as "2.5d".
func DurationDays(d float64) string {
	return FormatDays(d) + "d"
}

// FormatSpan renders a half-open interval in mission elapsed time,
// e.g. "T+2 – T+6".
func FormatSpan(start, end float64) string {
	return fmt.Sprintf("T+%s – T+%s", FormatDays(start), FormatDays(end))
}

// FormatIntervals joins intervals into a single comma-separated span list.
func FormatIntervals(intervals []contract.Interval) string {
	if len(intervals) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		parts = append(parts, FormatSpan(iv.Start, iv.End))
	}
	return strings.Join(parts, ", ")
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// activityLabel picks the display label for an activity report: the name
// when present, the ID as a fallback.
func activityLabel(a contract.ActivityReport) string {
	if strings.TrimSpace(a.ActivityName) != "" {
		return a.ActivityName
	}
	if strings.TrimSpace(a.ActivityID) != "" {
		return a.ActivityID
	}
	return "--"
}
