package formatter

import (
	"fmt"
	"strings"

	"github.com/shamsu/conops/internal/contract"
)

// FormatActivityReport renders the placement explanation for one activity.
func FormatActivityReport(rep *contract.ActivityReport) string {
	var b strings.Builder

	b.WriteString(Bold(activityLabel(*rep)) + "  " + Dim(FormatSpan(rep.Start, rep.End)) + "\n\n")

	if rep.OK {
		b.WriteString(StyleGreen.Render("Placement is legal") + "\n")
	} else {
		for _, v := range rep.Violations {
			code := ViolationStyle(v.Code).Render("● " + string(v.Code))
			b.WriteString(fmt.Sprintf("%s %s\n", code, Dim(v.Message)))
		}
	}

	return RenderBox("Explain", b.String())
}
