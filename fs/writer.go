package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/wcagref"
)

// Ensure Writer implements wcagref.DatasetWriter at compile time.
var _ wcagref.DatasetWriter = (*Writer)(nil)

// Writer saves datasets to a directory with atomic replace semantics.
// Partitions are written to baseDir/name.tmp and moved to baseDir/name
// once every file has been written.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a new Writer.
// baseDir is the parent directory, name is the output directory name.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{baseDir: baseDir, name: name}
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

// Dir returns the final output directory.
func (w *Writer) Dir() string {
	return filepath.Join(w.baseDir, w.name)
}

// SaveDataset validates ds and replaces the output directory with its partitions.
func (w *Writer) SaveDataset(ctx context.Context, ds *wcagref.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	if err := os.RemoveAll(w.tempDir()); err != nil {
		return err
	}
	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}

	for _, v := range ds.Versions() {
		if err := ctx.Err(); err != nil {
			_ = w.abort()
			return err
		}
		p, _ := ds.Partition(v)
		if err := w.writePartition(p); err != nil {
			_ = w.abort()
			return err
		}
	}

	return w.commit()
}

func (w *Writer) writePartition(p *wcagref.Partition) error {
	f, err := os.Create(filepath.Join(w.tempDir(), FileName(p.Version)))
	if err != nil {
		return err
	}
	if err := EncodePartition(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (w *Writer) commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(w.Dir()); err != nil {
		return err
	}
	return os.Rename(w.tempDir(), w.Dir())
}

func (w *Writer) abort() error {
	return os.RemoveAll(w.tempDir())
}
