package formatter

import (
	"fmt"
	"strings"

	"github.com/shamsu/conops/internal/contract"
)

// FormatValidationReport renders the full placement verdict for one
// document: timeline geometry, a per-activity table, violation details
// for every failing activity, and a one-line summary.
func FormatValidationReport(rep *contract.ValidationReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("TIMELINE"), StyleFg.Render(DurationDays(rep.TotalDuration))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("ALLOWED "), StyleFg.Render(FormatIntervals(rep.Allowed))))
	b.WriteString("\n")

	if len(rep.Activities) == 0 {
		b.WriteString(Dim("No activities") + "\n")
	} else {
		headers := []string{"ACTIVITY", "WINDOW", "VERDICT"}
		rows := make([][]string, 0, len(rep.Activities))
		for _, a := range rep.Activities {
			rows = append(rows, []string{
				Bold(activityLabel(a)),
				StyleFg.Render(FormatSpan(a.Start, a.End)),
				VerdictIndicator(a.OK),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	for _, a := range rep.Activities {
		if a.OK {
			continue
		}
		b.WriteString("\n")
		b.WriteString(Bold(activityLabel(a)) + "\n")
		for _, v := range a.Violations {
			code := ViolationStyle(v.Code).Render(string(v.Code))
			b.WriteString(fmt.Sprintf("  %s %s\n", code, Dim(v.Message)))
		}
	}

	b.WriteString("\n")
	b.WriteString(reportSummaryLine(rep) + "\n")

	return RenderBox("Validation", b.String())
}

func reportSummaryLine(rep *contract.ValidationReport) string {
	if rep.OK {
		return StyleGreen.Render("All activities placed legally")
	}

	failing := 0
	for _, a := range rep.Activities {
		if !a.OK {
			failing++
		}
	}
	violations := rep.ViolationCount()

	violationWord := "violations"
	if violations == 1 {
		violationWord = "violation"
	}
	activityWord := "activities"
	if failing == 1 {
		activityWord = "activity"
	}
	return StyleRed.Render(fmt.Sprintf("%d %s across %d %s", violations, violationWord, failing, activityWord))
}
