// Package nosketch materializes the on-disk corpus layout expected by the
// NoSketch Engine docker distribution: the per-corpus vertical directory
// under <root>/corpora and the descriptor under <root>/corpora/registry.
package nosketch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/vertify/internal/core/domain"
	"github.com/custodia-labs/vertify/internal/logger"
	"github.com/custodia-labs/vertify/internal/textcodec"
)

// SourceFileName is the vertical file's name inside the layout, fixed by
// the engine's registry template.
const SourceFileName = "source"

// Materializer writes corpus artifacts under one output root.
type Materializer struct {
	root string
	log  logger.Sink
}

// Option configures the materializer.
type Option func(*Materializer)

// WithLogger sets the logging sink. Defaults to the package logger.
func WithLogger(sink logger.Sink) Option {
	return func(m *Materializer) {
		m.log = sink
	}
}

// New creates a materializer for the given output root.
func New(root string, opts ...Option) *Materializer {
	m := &Materializer{root: root, log: logger.Default()}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// CreateLayout creates <root>/corpora/<lowercased name>/vertical and
// returns the vertical directory path. Fails with
// domain.ErrOutputRootNotFound if the root is missing, and with
// domain.ErrCorpusExists if the corpus directory is already present; an
// existing corpus is never touched.
func (m *Materializer) CreateLayout(corpusName string) (string, error) {
	if _, err := os.Stat(m.root); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrOutputRootNotFound, m.root)
	}

	corporaDir := filepath.Join(m.root, "corpora")
	if err := os.MkdirAll(corporaDir, 0755); err != nil {
		return "", fmt.Errorf("create corpora directory: %w", err)
	}

	corpusDir := filepath.Join(corporaDir, strings.ToLower(corpusName))
	if err := os.Mkdir(corpusDir, 0755); err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%w: %q at %s", domain.ErrCorpusExists, corpusName, corpusDir)
		}
		return "", fmt.Errorf("create corpus directory: %w", err)
	}

	verticalDir := filepath.Join(corpusDir, "vertical")
	if err := os.Mkdir(verticalDir, 0755); err != nil {
		return "", fmt.Errorf("create vertical directory: %w", err)
	}

	m.log.Debug("created corpus layout at %s", corpusDir)

	return verticalDir, nil
}

// WriteSource streams the serialized corpus into the vertical directory's
// source file, re-encoded with the corpus codec.
func (m *Materializer) WriteSource(verticalDir string, content io.Reader) error {
	return m.writeSource(filepath.Join(verticalDir, SourceFileName), content)
}

// RewriteSource overwrites the source file of an already materialized
// corpus. Used by watch mode; the layout and registry are left alone.
func (m *Materializer) RewriteSource(corpusName string, content io.Reader) error {
	path := filepath.Join(m.root, "corpora", strings.ToLower(corpusName), "vertical", SourceFileName)
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: corpus %q has no layout under %s", domain.ErrInvalidInput, corpusName, m.root)
	}
	return m.writeSource(path, content)
}

// List returns the registered corpus names under the root, sorted.
func (m *Materializer) List() ([]string, error) {
	registryDir := filepath.Join(m.root, "corpora", "registry")

	entries, err := os.ReadDir(registryDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read registry directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

func (m *Materializer) writeSource(path string, content io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create vertical file: %w", err)
	}

	enc := textcodec.NewWriter(f)
	if _, err := io.Copy(enc, content); err != nil {
		f.Close()
		return fmt.Errorf("write vertical file: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flush vertical file: %w", err)
	}

	m.log.Debug("wrote vertical file to %s", path)

	return f.Close()
}
