package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shamsu/conops/internal/domain"
)

// Summary renders the human-readable markdown digest of a document:
// framing, policies, constraints, phases in timeline order, and the
// declarative rules. Source rules and gating rules are listed as declared,
// not through the legacy split, since the summary documents what the
// author wrote.
func Summary(doc *domain.Document) string {
	var b strings.Builder

	b.WriteString("# ConOps Summary\n\n")
	fmt.Fprintf(&b, "**Intent:** %s\n\n", doc.Intent)
	fmt.Fprintf(&b, "**Stakeholders:** %s\n\n", doc.Stakeholders)
	fmt.Fprintf(&b, "**Template:** %s\n\n", doc.Template)

	b.WriteString("**Policies:**\n")
	fmt.Fprintf(&b, "- Autonomy level: %d\n", doc.AutonomyLevel)
	fmt.Fprintf(&b, "- Comms policy: %s\n\n", doc.CommsPolicy)

	b.WriteString("**Constraints:**\n")
	fmt.Fprintf(&b, "- Max mass: %s kg\n", formatFloat(doc.MaxMassKg))
	fmt.Fprintf(&b, "- Max power: %s W\n", formatFloat(doc.MaxPowerW))
	fmt.Fprintf(&b, "- Downlink: %s GB/day\n\n", formatFloat(doc.DownlinkGBPerDay))

	b.WriteString("**Phases:**\n")
	for _, p := range domain.SortedPhases(doc.Phases) {
		fmt.Fprintf(&b, "- %s (duration=%s)\n", p.Name, formatFloat(p.Duration))
	}
	b.WriteString("\n")

	b.WriteString("**Window Source Rules:**\n")
	if len(doc.SourceRules) == 0 {
		b.WriteString("- None\n")
	}
	for _, r := range doc.SourceRules {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", r.Name, r.Mode, r.SourceType)
	}
	b.WriteString("\n")

	b.WriteString("**Gating Rules:**\n")
	if len(doc.RequirementRules) == 0 {
		b.WriteString("- None\n")
	}
	for _, r := range doc.RequirementRules {
		if r.Threshold == "" {
			fmt.Fprintf(&b, "- %s: %s\n", r.ActivityType, r.Rule)
		} else {
			fmt.Fprintf(&b, "- %s: %s %s\n", r.ActivityType, r.Rule, r.Threshold)
		}
	}

	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
