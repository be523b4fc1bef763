package formatter

import (
	"github.com/shamsu/conops/internal/basespec"
)

// FormatProfileList renders the installed base spec profiles, marking the
// one exports fall back to when a document names no template.
func FormatProfileList(profiles []basespec.Profile, defaultName string) string {
	if len(profiles) == 0 {
		return RenderBox("Base Specs", Dim("No base spec profiles installed"))
	}

	headers := []string{"NAME", "FILE"}
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		name := Bold(p.Name)
		if p.Name == defaultName {
			name += " " + StyleGreen.Render("● default")
		}
		rows = append(rows, []string{name, Dim(p.Path)})
	}

	return RenderBox("Base Specs", RenderTable(headers, rows))
}
