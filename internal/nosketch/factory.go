package nosketch

import "github.com/custodia-labs/vertify/internal/core/ports/driven"

// Ensure Factory implements the interface.
var _ driven.MaterializerFactory = Factory{}

// Factory creates materializers bound to an output root. The root is a
// per-invocation CLI argument, so the convert service receives this
// factory instead of a fixed materializer.
type Factory struct {
	opts []Option
}

// NewFactory creates a factory; opts are applied to every materializer.
func NewFactory(opts ...Option) Factory {
	return Factory{opts: opts}
}

// Create returns a materializer for the given output root.
func (f Factory) Create(root string) driven.Materializer {
	return New(root, f.opts...)
}
