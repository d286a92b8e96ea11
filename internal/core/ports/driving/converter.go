package driving

import "context"

// ConvertRequest carries everything one conversion run needs.
type ConvertRequest struct {
	// SourcePath is the raw text file or directory tree to convert.
	SourcePath string

	// OutputRoot is the engine's docker directory.
	OutputRoot string

	// CorpusName is the user-facing corpus name. May not contain a
	// path separator.
	CorpusName string

	// SingleDoc selects the legacy <doc> boundary form instead of the
	// indexed <doc n="i"> form. Requires a single-document corpus.
	SingleDoc bool

	// EscapeMarkup enables XML-entity escaping of tokens that collide
	// with the boundary markup. Off reproduces the legacy format.
	EscapeMarkup bool

	// Jobs bounds the number of concurrent tokenization workers.
	// Values below 1 mean one worker.
	Jobs int
}

// ConvertResult summarises a completed conversion.
type ConvertResult struct {
	// Documents is the number of documents in the corpus.
	Documents int

	// Tokens is the total token count across all documents.
	Tokens int

	// VerticalPath is where the vertical source file was written.
	VerticalPath string
}

// Converter turns raw text into a materialized vertical corpus.
type Converter interface {
	// Convert runs the full pipeline: load, tokenize, serialize,
	// materialize layout + registry. Fail-fast on every fatal
	// condition; no partial corpus is retried or rolled back.
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error)

	// Refresh re-runs load/tokenize/serialize for an already
	// materialized corpus and rewrites its source file in place.
	Refresh(ctx context.Context, req ConvertRequest) (*ConvertResult, error)

	// Watch converts once, then refreshes the corpus whenever the
	// source tree changes, until ctx is done.
	Watch(ctx context.Context, req ConvertRequest) error

	// List returns the corpus names registered under an output root.
	List(outputRoot string) ([]string, error)
}
