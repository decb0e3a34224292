// Package bundled embeds the generated WCAG reference dataset.
//
// The JSON partitions under data/ are produced offline by cmd/wcaggen and
// are never regenerated at runtime.
package bundled

import (
	"context"
	"embed"
	"sync"

	"github.com/fwojciec/wcagref"
	"github.com/fwojciec/wcagref/fs"
)

//go:embed data/*.json
var FS embed.FS

// Dir is the directory within FS holding the partitions.
const Dir = "data"

var load = sync.OnceValues(func() (*wcagref.Dataset, error) {
	return NewLoader().LoadDataset(context.Background())
})

// NewLoader returns a loader over the embedded partitions.
func NewLoader() *fs.Loader {
	return fs.NewLoader(FS, Dir)
}

// Dataset returns the embedded dataset, decoding it on first use.
// The returned dataset is shared and must not be modified.
func Dataset() (*wcagref.Dataset, error) {
	return load()
}

// NewReference returns a Reference over the embedded dataset.
func NewReference() (*wcagref.Reference, error) {
	ds, err := Dataset()
	if err != nil {
		return nil, err
	}
	return wcagref.NewReference(ds), nil
}

// MustReference is like NewReference but panics if the embedded dataset
// cannot be decoded.
func MustReference() *wcagref.Reference {
	ref, err := NewReference()
	if err != nil {
		panic(err)
	}
	return ref
}
