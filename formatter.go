package wcagref

import (
	"fmt"
	"strings"
)

// FormatCriterion formats a criterion record for terminal display.
func FormatCriterion(rec *CriterionRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (Level %s)\n", rec.Handle, rec.Level)
	fmt.Fprintf(&b, "  link:       %s\n", rec.Link())
	fmt.Fprintf(&b, "  quickref:   %s\n", rec.QuickReference)
	fmt.Fprintf(&b, "  understand: %s", rec.DetailedReference)
	return b.String()
}

// FormatTechnique formats a technique record for terminal display.
// The group line shows the group ID for 2.1/2.2 and the one-page
// filename for 2.0.
func FormatTechnique(rec *TechniqueRecord) string {
	group := rec.GroupID
	if group == "" {
		group = rec.GroupPage
	}
	return fmt.Sprintf("%s\n  group:      %s\n  index:      %s", rec.Text, group, rec.TechniquesURL)
}

// FormatCriteria formats criteria as one line each: handle and level.
func FormatCriteria(recs []*CriterionRecord) string {
	if len(recs) == 0 {
		return ""
	}

	lines := make([]string, 0, len(recs))
	for _, rec := range recs {
		lines = append(lines, fmt.Sprintf("%-4s %s", rec.Level, rec.Handle))
	}
	return strings.Join(lines, "\n")
}
