package formatter

import (
	"fmt"
	"strings"

	"github.com/shamsu/conops/internal/contract"
)

// FormatWindows renders the derived timeline geometry: the phase layout,
// the canonical allowed windows, and the total mission length.
func FormatWindows(totalDuration float64, phases []contract.PhaseSpan, allowed []contract.Interval) string {
	var b strings.Builder

	if len(phases) == 0 {
		b.WriteString(Dim("No phases") + "\n")
	} else {
		headers := []string{"PHASE", "SPAN", "LENGTH"}
		rows := make([][]string, 0, len(phases))
		for _, p := range phases {
			rows = append(rows, []string{
				Bold(p.Name),
				StyleFg.Render(FormatSpan(p.Start, p.End)),
				Dim(DurationDays(p.End - p.Start)),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	b.WriteString("\n")
	b.WriteString(Header("Allowed") + "\n")
	if len(allowed) == 0 {
		b.WriteString(StyleRed.Render("No allowed windows") + "\n")
	} else {
		for _, iv := range allowed {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				StyleGreen.Render("●"),
				StyleFg.Render(FormatSpan(iv.Start, iv.End)),
				Dim("("+DurationDays(iv.End-iv.Start)+")")))
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("TOTAL"), StyleFg.Render(DurationDays(totalDuration))))

	return RenderBox("Windows", b.String())
}
