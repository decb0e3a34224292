// Package fs provides file-based storage for WCAG datasets.
// Each partition is stored as one JSON document named after its partition
// key (wcag20.json, wcag21.json, wcag22.json).
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"path"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wcagref"
)

// FileName returns the file name holding the partition for v.
func FileName(v wcagref.Version) string {
	return v.Partition() + ".json"
}

// DecodePartition reads one JSON partition and validates it.
func DecodePartition(r io.Reader) (*wcagref.Partition, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var p wcagref.Partition
	if err := dec.Decode(&p); err != nil {
		return nil, wcagref.Errorf(wcagref.EINVALID, "failed to decode partition: %v", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// EncodePartition writes a partition as tab-indented JSON.
func EncodePartition(w io.Writer, p *wcagref.Partition) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)
	return enc.Encode(p)
}

// Fingerprint returns a stable hash of the dataset's encoded partitions.
// Two datasets with the same content always share a fingerprint.
func Fingerprint(ds *wcagref.Dataset) (string, error) {
	h := xxhash.New()
	for _, v := range ds.Versions() {
		p, _ := ds.Partition(v)
		if err := EncodePartition(h, p); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// Ensure Loader implements wcagref.DatasetLoader at compile time.
var _ wcagref.DatasetLoader = (*Loader)(nil)

// Loader reads partitions from a directory of any fs.FS, such as an
// embedded filesystem or os.DirFS.
type Loader struct {
	fsys iofs.FS
	dir  string
}

// NewLoader creates a Loader reading from dir within fsys.
func NewLoader(fsys iofs.FS, dir string) *Loader {
	return &Loader{fsys: fsys, dir: dir}
}

// LoadDataset reads every partition file present in the directory.
// Missing files are skipped; a directory without any partition returns
// ENOTFOUND.
func (l *Loader) LoadDataset(ctx context.Context) (*wcagref.Dataset, error) {
	var partitions []*wcagref.Partition
	for _, v := range wcagref.Versions() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := iofs.ReadFile(l.fsys, path.Join(l.dir, FileName(v)))
		if errors.Is(err, iofs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", FileName(v), err)
		}

		p, err := DecodePartition(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", FileName(v), err)
		}
		if p.Version != v {
			return nil, wcagref.Errorf(wcagref.EINVALID, "%s declares version %q", FileName(v), p.Version)
		}
		partitions = append(partitions, p)
	}

	if len(partitions) == 0 {
		return nil, wcagref.Errorf(wcagref.ENOTFOUND, "no dataset partitions in %q", l.dir)
	}
	return wcagref.NewDataset(partitions...), nil
}
