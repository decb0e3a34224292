package main

import (
	"github.com/fwojciec/wcagref"
)

// Run executes the criterion command.
func (c *CriterionCmd) Run(deps *Dependencies) error {
	coords, err := wcagref.ParseCoordinates(c.Number)
	if err != nil {
		return fail(deps, err)
	}

	rec, err := deps.Reference.CriterionData(c.Version, coords.Chapter, coords.Section, coords.Subsection)
	if err != nil {
		return fail(deps, err)
	}

	return render(deps.Stdout, deps.Format, rec, func() string {
		return wcagref.FormatCriterion(rec)
	})
}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := wcagref.CriterionFilter{Chapter: c.Chapter, Section: c.Section}
	if c.Level != "" {
		level, err := wcagref.ParseLevel(c.Level)
		if err != nil {
			return fail(deps, err)
		}
		filter.Level = level
	}

	recs, err := deps.Reference.FindCriteria(c.Version, filter)
	if err != nil {
		return fail(deps, err)
	}

	if recs == nil {
		recs = []*wcagref.CriterionRecord{}
	}
	return render(deps.Stdout, deps.Format, recs, func() string {
		if len(recs) == 0 {
			return "No criteria match."
		}
		return wcagref.FormatCriteria(recs)
	})
}
