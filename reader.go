package saw

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/colstore/saw/codec"
	"github.com/colstore/saw/frame"
	"github.com/colstore/saw/sawerr"
	"github.com/colstore/saw/table"
	"github.com/colstore/saw/tablemeta"
	"golang.org/x/sync/errgroup"
)

// Read loads the table persisted at tableDir, reversing SaveTable:
// metadata is parsed first, then columns are decoded in parallel across a
// bounded worker pool and assembled back into metadata order.
func Read(tableDir string, opts ...Option) (table.Table, error) {
	o := defaultOptions()
	if err := applyOptions(o, opts...); err != nil {
		return nil, err
	}

	meta, err := tablemeta.ReadFile(filepath.Join(tableDir, tablemeta.FileName))
	if err != nil {
		return nil, err
	}

	columns := make([]table.Column, len(meta.ColumnMetadata))

	g, ctx := errgroup.WithContext(o.ctx)
	g.SetLimit(o.workerPoolSize)

	var mu sync.Mutex
	for i, cm := range meta.ColumnMetadata {
		i, cm := i, cm

		g.Go(func() error {
			col, err := readColumn(ctx, filepath.Join(tableDir, cm.ID), cm, meta.RowCount)
			if err != nil {
				return fmt.Errorf("column %q: %w", cm.Name, err)
			}

			mu.Lock()
			columns[i] = col
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return table.New(meta.Name, columns...), nil
}

func readColumn(ctx context.Context, path string, cm tablemeta.ColumnMeta, rowCount int) (table.Column, error) {
	tag, err := cm.Tag()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sawerr.ErrInvalidArgument, err)
	}

	backend, err := cm.Backend()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sawerr.ErrInvalidArgument, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}
	defer f.Close()

	r, err := frame.NewReader(f, backend)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", sawerr.ErrInterrupted, err)
	}

	if tag.IsDictionary() {
		return codec.DecodeStringDict(r, cm.Name, cm.KeyWidth, cm.UniqueCount, rowCount)
	}
	return codec.DecodeFixed(r, tag, cm.Name, rowCount)
}
