// Package filesystem loads raw corpus text from the local filesystem:
// a single file, or every regular file under a directory tree.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/vertify/internal/core/domain"
	"github.com/custodia-labs/vertify/internal/logger"
	"github.com/custodia-labs/vertify/internal/textcodec"
)

// Loader resolves a source path into an ordered sequence of decoded
// texts, one per discovered file.
type Loader struct {
	log logger.Sink
}

// Option configures the loader.
type Option func(*Loader)

// WithLogger sets the logging sink. Defaults to the package logger.
func WithLogger(sink logger.Sink) Option {
	return func(l *Loader) {
		l.log = sink
	}
}

// New creates a loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{log: logger.Default()}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads every file named by sourcePath. A file yields a one-element
// result; a directory yields one RawText per regular file in the tree,
// in discovery order. Discovery order is stable for an unchanged tree:
// directory entries are visited in sorted order, depth first.
//
// A path that is neither file nor directory wraps domain.ErrInvalidSource.
// A file whose bytes the corpus codec cannot decode wraps domain.ErrDecode
// for that file (fail fast, not swallowed).
func (l *Loader) Load(ctx context.Context, sourcePath string) ([]domain.RawText, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSource, sourcePath)
	}

	paths := []string{sourcePath}
	if info.IsDir() {
		if paths, err = l.discover(sourcePath); err != nil {
			return nil, err
		}
	}

	l.log.Debug("discovered %d file(s) under %s", len(paths), sourcePath)

	texts := make([]domain.RawText, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := l.readFile(path)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}

	return texts, nil
}

// discover walks the tree depth first with an explicit stack, so deep
// trees cannot exhaust the call stack. Children are pushed in reverse so
// each directory's sorted entries are visited in order.
func (l *Loader) discover(root string) ([]string, error) {
	var files []string
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", dir, err)
		}

		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				subdirs = append(subdirs, path)
				continue
			}
			if entry.Type().IsRegular() {
				files = append(files, path)
			}
		}

		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return files, nil
}

// readFile reads and decodes one source file. os.ReadFile closes the
// descriptor on every path, normal or error.
func (l *Loader) readFile(path string) (domain.RawText, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.RawText{}, fmt.Errorf("read %s: %w", path, err)
	}

	content, err := textcodec.Decode(raw)
	if err != nil {
		return domain.RawText{}, fmt.Errorf("%w: %s: %v", domain.ErrDecode, path, err)
	}

	l.log.Debug("loaded %s (%d bytes)", path, len(raw))

	return domain.RawText{URI: path, Content: content}, nil
}
