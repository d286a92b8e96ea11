package driven

import "io"

// Materializer writes corpus artifacts under one output root.
type Materializer interface {
	// CreateLayout creates the corpus directory layout and returns the
	// vertical directory path. Fails with domain.ErrOutputRootNotFound
	// or domain.ErrCorpusExists; an existing corpus is never modified.
	CreateLayout(corpusName string) (string, error)

	// WriteSource streams serialized vertical content into the layout's
	// source file, encoded with the corpus codec.
	WriteSource(verticalDir string, content io.Reader) error

	// RewriteSource overwrites the source file of an already
	// materialized corpus, leaving layout and registry alone.
	RewriteSource(corpusName string, content io.Reader) error

	// WriteRegistry writes the engine's fixed-template descriptor for
	// the corpus.
	WriteRegistry(corpusName string) error

	// List returns the registered corpus names under the root.
	List() ([]string, error)
}

// MaterializerFactory creates materializers bound to an output root.
// The root is only known per invocation, so the service receives a
// factory rather than a single instance.
type MaterializerFactory interface {
	Create(root string) Materializer
}
