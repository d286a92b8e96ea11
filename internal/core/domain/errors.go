package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidSource indicates the source path is neither a file
	// nor a directory.
	ErrInvalidSource = errors.New("invalid source path")

	// ErrDecode indicates a source file's bytes could not be decoded
	// under the fixed corpus codec. Raised per file, not per corpus.
	ErrDecode = errors.New("decode failed")

	// ErrInvalidCorpusName indicates the corpus name contains a path
	// separator. Rejected before any I/O occurs.
	ErrInvalidCorpusName = errors.New("invalid corpus name")

	// ErrOutputRootNotFound indicates the output root directory does
	// not exist.
	ErrOutputRootNotFound = errors.New("output root not found")

	// ErrCorpusExists indicates the target corpus directory already
	// exists. Existing corpora are never overwritten.
	ErrCorpusExists = errors.New("corpus already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
