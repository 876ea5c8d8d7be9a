package saw

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/colstore/saw/codec"
	"github.com/colstore/saw/compress"
	"github.com/colstore/saw/frame"
	"github.com/colstore/saw/sawerr"
	"github.com/colstore/saw/table"
	"github.com/colstore/saw/tablemeta"
	"golang.org/x/sync/errgroup"
)

// SaveTable persists t as a directory under parentDir, named after t's
// sanitized display name, and returns that directory's absolute path.
//
// If the target directory already exists, its contents are deleted and it
// is recreated: saving replaces, it never merges. The metadata document is
// written before any column is encoded, so a process that dies mid-write
// always leaves a directory that is either empty, metadata-only, or
// metadata-plus-some-columns, never columns without metadata. A failed
// write leaves the partial directory in place; SaveTable does not roll
// back.
func SaveTable(parentDir string, t table.Table, opts ...Option) (string, error) {
	if parentDir == "" {
		return "", fmt.Errorf("%w: parentDir is empty", sawerr.ErrInvalidArgument)
	}
	if t == nil {
		return "", fmt.Errorf("%w: table is nil", sawerr.ErrInvalidArgument)
	}

	o := defaultOptions()
	if err := applyOptions(o, opts...); err != nil {
		return "", err
	}

	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}

	tableDir := filepath.Join(parentDir, sanitizeName(t.Name()))
	if _, err := os.Stat(tableDir); err == nil {
		if err := os.RemoveAll(tableDir); err != nil {
			return "", fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
		}
	}
	if err := os.MkdirAll(tableDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}

	columns := t.Columns()
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name()
	}
	ids := columnIDs(names)

	meta := tablemeta.TableMeta{
		Name:           t.Name(),
		RowCount:       t.RowCount(),
		ColumnMetadata: make([]tablemeta.ColumnMeta, len(columns)),
	}
	for i, c := range columns {
		backend := o.backendFor(c.Type())
		cm := tablemeta.ColumnMeta{
			ID:          ids[i],
			Type:        c.Type().String(),
			Name:        c.Name(),
			Compression: backend.String(),
		}
		if sc, ok := c.(table.StringColumn); ok {
			cm.KeyWidth = sc.KeyWidth()
			cm.UniqueCount = sc.UniqueCount()
		}
		meta.ColumnMetadata[i] = cm
	}

	if err := tablemeta.WriteFile(filepath.Join(tableDir, tablemeta.FileName), meta); err != nil {
		return "", err
	}

	g, ctx := errgroup.WithContext(o.ctx)
	g.SetLimit(o.workerPoolSize)

	for i, c := range columns {
		col := c
		id := ids[i]
		backend := o.backendFor(c.Type())

		g.Go(func() error {
			return writeColumn(ctx, filepath.Join(tableDir, id), col, backend)
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(tableDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}
	return abs, nil
}

// writeColumn encodes one column to its own file, fully independent of
// every other column's file.
func writeColumn(ctx context.Context, path string, col table.Column, backend compress.Backend) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}
	defer f.Close()

	w, err := frame.NewWriter(ctx, f, backend)
	if err != nil {
		return err
	}

	if err := codec.EncodeColumn(w, col); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}
