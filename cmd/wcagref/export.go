package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/wcagref"
	"github.com/fwojciec/wcagref/fs"
	"github.com/fwojciec/wcagref/sqlite"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	switch c.Kind {
	case "json":
		out := filepath.Clean(c.Output)
		w := fs.NewWriter(filepath.Dir(out), filepath.Base(out))
		if err := w.SaveDataset(deps.Ctx, deps.Dataset); err != nil {
			return fail(deps, err)
		}
		fmt.Fprintf(deps.Stdout, "Exported %d partitions to %s\n", len(deps.Dataset.Partitions), w.Dir())
	case "sqlite":
		db := sqlite.NewDB(c.Output)
		if err := db.Open(); err != nil {
			return fail(deps, err)
		}
		defer db.Close()

		if err := sqlite.NewDatasetStore(db).SaveDataset(deps.Ctx, deps.Dataset); err != nil {
			return fail(deps, err)
		}
		fmt.Fprintf(deps.Stdout, "Exported %d partitions to %s\n", len(deps.Dataset.Partitions), c.Output)
	default:
		return fail(deps, wcagref.Errorf(wcagref.EINVALID, "unknown export target %q", c.Kind))
	}
	return nil
}
