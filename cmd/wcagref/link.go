package main

import "github.com/fwojciec/wcagref"

// linkView is the structured form of a link command result.
type linkView struct {
	Version string `json:"version" yaml:"version"`
	Target  string `json:"target" yaml:"target"`
	Link    string `json:"link" yaml:"link"`
}

// Run executes the link criterion command.
func (c *LinkCriterionCmd) Run(deps *Dependencies) error {
	coords, err := wcagref.ParseCoordinates(c.Number)
	if err != nil {
		return fail(deps, err)
	}

	link, err := deps.Reference.LinkToCriterion(c.Version, coords.Chapter, coords.Section, coords.Subsection)
	if err != nil {
		return fail(deps, err)
	}

	return printLink(deps, linkView{Version: c.Version, Target: coords.String(), Link: link})
}

// Run executes the link technique command.
func (c *LinkTechniqueCmd) Run(deps *Dependencies) error {
	link, err := deps.Reference.LinkToTechnique(c.Version, c.Code)
	if err != nil {
		return fail(deps, err)
	}

	return printLink(deps, linkView{Version: c.Version, Target: c.Code, Link: link})
}

func printLink(deps *Dependencies, view linkView) error {
	return render(deps.Stdout, deps.Format, view, func() string {
		return view.Link
	})
}
