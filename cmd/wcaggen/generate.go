package main

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/wcagref"
	"github.com/fwojciec/wcagref/fs"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	progress := func(p wcagref.GenerateProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "fail %s: %v\n", p.URL, p.Error)
			return
		}
		fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", p.Completed, p.Total, truncateURL(p.URL, 40))
	}

	result, err := deps.Generator.Generate(deps.Ctx, c.Versions, progress)
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wcagref.ErrorMessage(err))
		return err
	}

	for _, page := range result.Pages {
		fmt.Fprintf(deps.Stdout, "%s  %s  %7d bytes  %s\n", page.Version, page.Hash, page.Bytes, page.URL)
	}

	fingerprint, err := fs.Fingerprint(result.Dataset)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wcagref.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Dataset fingerprint %s\n", fingerprint)

	if c.Preview {
		fmt.Fprintln(deps.Stdout, "Preview mode, nothing saved")
		return nil
	}

	for _, w := range deps.Writers {
		if err := w.SaveDataset(deps.Ctx, result.Dataset); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving dataset: %v\n", err)
			return err
		}
	}
	fmt.Fprintf(deps.Stdout, "Saved %d partitions\n", len(result.Dataset.Partitions))

	return nil
}

// truncateURL shortens a URL for display by showing only the path.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	if len(path) <= maxLen {
		return path
	}

	return "..." + path[len(path)-maxLen+3:]
}
