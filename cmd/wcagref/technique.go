package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wcagref"
)

// techniqueView is a technique record together with its resolved link.
type techniqueView struct {
	Code string `json:"code" yaml:"code"`
	Link string `json:"link" yaml:"link"`
	wcagref.TechniqueRecord `yaml:",inline"`
}

// Run executes the technique command.
func (c *TechniqueCmd) Run(deps *Dependencies) error {
	rec, err := deps.Reference.TechniqueData(c.Version, c.Code)
	if err != nil {
		return fail(deps, err)
	}
	link, err := deps.Reference.LinkToTechnique(c.Version, c.Code)
	if err != nil {
		return fail(deps, err)
	}

	view := techniqueView{Code: c.Code, Link: link, TechniqueRecord: *rec}
	return render(deps.Stdout, deps.Format, view, func() string {
		return wcagref.FormatTechnique(rec) + "\n  link:       " + link
	})
}

// Run executes the techniques command.
func (c *TechniquesCmd) Run(deps *Dependencies) error {
	entries, err := deps.Reference.FindTechniques(c.Version, c.Group)
	if err != nil {
		return fail(deps, err)
	}

	if entries == nil {
		entries = []*wcagref.TechniqueEntry{}
	}
	return render(deps.Stdout, deps.Format, entries, func() string {
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("%-7s %s", e.Code, strings.TrimPrefix(e.Record.Text, e.Code+": ")))
		}
		return strings.Join(lines, "\n")
	})
}
