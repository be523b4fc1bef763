package formatter

import (
	"fmt"
	"strings"

	"github.com/shamsu/conops/internal/contract"
)

// FormatSnapResult renders the nearest-start answer for a proposed
// placement, echoing the request so the output stands on its own.
func FormatSnapResult(req contract.SnapRequest, res *contract.SnapResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("DESIRED "), StyleFg.Render("T+"+FormatDays(req.Desired))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("DURATION"), StyleFg.Render(DurationDays(req.Duration))))

	grid := "off"
	if req.GridStep > 0 {
		grid = DurationDays(req.GridStep)
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("GRID    "), StyleFg.Render(grid)))
	b.WriteString("\n")

	if res.Feasible {
		b.WriteString(StyleGreen.Render("START  T+"+FormatDays(res.Start)) + "\n")
	} else {
		b.WriteString(StyleRed.Render("No feasible placement") + "\n")
	}

	return RenderBox("Snap", b.String())
}
