package formatter

import (
	"fmt"
	"strings"

	"github.com/shamsu/conops/internal/contract"
)

// FormatExportResult renders the artifact names one export wrote.
func FormatExportResult(res *contract.ExportResult) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render("Export complete") + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("MISSION"), StyleFg.Render(res.MissionFile)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("PATCH  "), StyleFg.Render(res.PatchFile)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("SUMMARY"), StyleFg.Render(res.SummaryFile)))
	b.WriteString("\n")
	b.WriteString(Dim(res.Dir) + "\n")

	return RenderBox("Export", b.String())
}
