package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shamsu/conops/internal/domain"
	"github.com/shamsu/conops/internal/repository"
)

// FormatProjectList renders the saved project index inside a bordered box.
func FormatProjectList(projects []repository.ProjectSummary) string {
	if len(projects) == 0 {
		return RenderBox("Projects", Dim("No saved projects"))
	}

	headers := []string{"ID", "NAME", "SAVED"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			Dim(strconv.FormatInt(p.ID, 10)),
			Bold(p.Name),
			StyleFg.Render(HumanTimestamp(p.CreatedAt)),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectDetail renders a saved project's metadata card. The document
// payload itself is written separately so it stays machine-readable.
func FormatProjectDetail(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(Bold(p.Name) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("ID        "), StyleFg.Render(strconv.FormatInt(p.ID, 10))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("SAVED     "), StyleFg.Render(HumanTimestamp(p.CreatedAt))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("TEMPLATE  "), StylePurple.Render(templateLabel(p.Doc.Template))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("TIMELINE  "), StyleFg.Render(DurationDays(p.Doc.TotalDuration()))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("PHASES    "), StyleFg.Render(strconv.Itoa(len(p.Doc.Phases)))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("ACTIVITIES"), StyleFg.Render(strconv.Itoa(len(p.Doc.Activities)))))

	if strings.TrimSpace(p.Doc.Intent) != "" {
		b.WriteString("\n")
		b.WriteString(Dim(p.Doc.Intent) + "\n")
	}

	return RenderBox("Project", b.String())
}

// FormatProjectSaved is the one-line confirmation after a save.
func FormatProjectSaved(p *domain.Project) string {
	return fmt.Sprintf("%s %s %s",
		StyleGreen.Render("Saved"),
		Bold(p.Name),
		Dim(fmt.Sprintf("(id %d)", p.ID)))
}

func templateLabel(t string) string {
	if strings.TrimSpace(t) == "" {
		return "--"
	}
	return t
}
