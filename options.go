package saw

import (
	"context"

	"github.com/colstore/saw/compress"
	"github.com/colstore/saw/coltype"
	genopt "github.com/colstore/saw/internal/options"
)

// defaultWorkerPoolSize bounds how many columns SaveTable/Read encode or
// decode concurrently.
const defaultWorkerPoolSize = 10

// options holds the resolved configuration for one SaveTable or Read call.
type options struct {
	ctx            context.Context
	workerPoolSize int
	compression    map[coltype.Tag]compress.Backend
}

func defaultOptions() *options {
	return &options{
		ctx:            context.Background(),
		workerPoolSize: defaultWorkerPoolSize,
		compression:    make(map[coltype.Tag]compress.Backend),
	}
}

// backendFor returns the compression backend for tag, honoring any
// WithCompression override, and otherwise applying the default heuristic:
// Zstd for STRING and TEXT, Snappy for everything else.
func (o *options) backendFor(tag coltype.Tag) compress.Backend {
	if b, ok := o.compression[tag]; ok {
		return b
	}
	if tag == coltype.String || tag == coltype.Text {
		return compress.Zstd
	}
	return compress.Snappy
}

// Option configures a SaveTable or Read call. It is the generic
// functional-option type this codebase already defines in
// internal/options, instantiated for *options.
type Option = genopt.Option[*options]

// applyOptions applies opts to o in order. Every Option built by this
// package's With* constructors is infallible, so the only error path is
// unreachable here; it exists because internal/options.Apply is generic
// over fallible options too.
func applyOptions(o *options, opts ...Option) error {
	return genopt.Apply(o, opts...)
}

// WithWorkerPoolSize bounds the number of columns encoded or decoded
// concurrently. n <= 0 is ignored, leaving the default in place.
func WithWorkerPoolSize(n int) Option {
	return genopt.NoError(func(o *options) {
		if n > 0 {
			o.workerPoolSize = n
		}
	})
}

// WithCompression overrides the compression backend used for every column
// of the given type tag, in place of the writer's default heuristic. Read
// ignores this option: it always dispatches the decompressor recorded in
// the table's own metadata document.
func WithCompression(tag coltype.Tag, backend compress.Backend) Option {
	return genopt.NoError(func(o *options) {
		o.compression[tag] = backend
	})
}

// WithContext supplies a context checked cooperatively at every frame
// flush interval during column writes, and once per column before its
// decode starts during Read; a column decode already under way is not
// interrupted. Cancelling it surfaces sawerr.ErrInterrupted from the
// column task that observes it.
func WithContext(ctx context.Context) Option {
	return genopt.NoError(func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	})
}
