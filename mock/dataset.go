package mock

import (
	"context"

	"github.com/fwojciec/wcagref"
)

var _ wcagref.DatasetLoader = (*DatasetLoader)(nil)

// DatasetLoader is a mock implementation of wcagref.DatasetLoader.
type DatasetLoader struct {
	LoadDatasetFn func(ctx context.Context) (*wcagref.Dataset, error)
}

func (l *DatasetLoader) LoadDataset(ctx context.Context) (*wcagref.Dataset, error) {
	return l.LoadDatasetFn(ctx)
}

var _ wcagref.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter is a mock implementation of wcagref.DatasetWriter.
type DatasetWriter struct {
	SaveDatasetFn func(ctx context.Context, ds *wcagref.Dataset) error
}

func (w *DatasetWriter) SaveDataset(ctx context.Context, ds *wcagref.Dataset) error {
	return w.SaveDatasetFn(ctx, ds)
}
