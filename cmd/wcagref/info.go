package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/wcagref"
	"github.com/fwojciec/wcagref/fs"
)

// datasetInfo summarizes the loaded dataset.
type datasetInfo struct {
	Source      string          `json:"source" yaml:"source"`
	SavedAt     string          `json:"savedAt,omitempty" yaml:"savedAt,omitempty"`
	Fingerprint string          `json:"fingerprint" yaml:"fingerprint"`
	Partitions  []partitionInfo `json:"partitions" yaml:"partitions"`
}

type partitionInfo struct {
	Version    string `json:"version" yaml:"version"`
	URL        string `json:"url" yaml:"url"`
	Criteria   int    `json:"criteria" yaml:"criteria"`
	Groups     int    `json:"groups" yaml:"groups"`
	Techniques int    `json:"techniques" yaml:"techniques"`
}

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	fingerprint, err := fs.Fingerprint(deps.Dataset)
	if err != nil {
		return fail(deps, err)
	}

	info := datasetInfo{Source: deps.Source, Fingerprint: fingerprint}
	if !deps.SavedAt.IsZero() {
		info.SavedAt = deps.SavedAt.UTC().Format(time.RFC3339)
	}
	for _, v := range deps.Dataset.Versions() {
		p, _ := deps.Dataset.Partition(v)
		pi := partitionInfo{Version: v.String(), URL: p.URL, Groups: len(p.Techniques.Groups)}
		p.Criteria(func(wcagref.Coordinates, *wcagref.SuccessCriterion) { pi.Criteria++ })
		for _, g := range p.Techniques.Groups {
			pi.Techniques += len(g.Techniques)
		}
		info.Partitions = append(info.Partitions, pi)
	}

	return render(deps.Stdout, deps.Format, info, func() string {
		var b strings.Builder
		fmt.Fprintf(&b, "source:      %s\n", info.Source)
		if info.SavedAt != "" {
			fmt.Fprintf(&b, "saved:       %s\n", info.SavedAt)
		}
		fmt.Fprintf(&b, "fingerprint: %s", info.Fingerprint)
		for _, pi := range info.Partitions {
			fmt.Fprintf(&b, "\nWCAG %s  %3d criteria  %2d groups  %3d techniques  %s",
				pi.Version, pi.Criteria, pi.Groups, pi.Techniques, pi.URL)
		}
		return b.String()
	})
}
