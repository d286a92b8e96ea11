package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/vertify/internal/core/domain"
	"github.com/custodia-labs/vertify/internal/core/ports/driven"
	"github.com/custodia-labs/vertify/internal/core/ports/driving"
	"github.com/custodia-labs/vertify/internal/logger"
	"github.com/custodia-labs/vertify/internal/tokenizer"
	"github.com/custodia-labs/vertify/internal/vertical"
)

// Ensure ConvertService implements the interface.
var _ driving.Converter = (*ConvertService)(nil)

// refreshDebounce coalesces bursts of watch events into one refresh.
const refreshDebounce = 200 * time.Millisecond

// ConvertService coordinates one-shot and watched conversions.
type ConvertService struct {
	loader        driven.Loader
	watcher       driven.Watcher
	materializers driven.MaterializerFactory
	tok           *tokenizer.Tokenizer
	log           logger.Sink
}

// NewConvertService creates a convert service. The watcher is optional;
// without it, Watch returns an error.
func NewConvertService(
	loader driven.Loader,
	watcher driven.Watcher,
	materializers driven.MaterializerFactory,
	log logger.Sink,
) *ConvertService {
	if log == nil {
		log = logger.Default()
	}
	return &ConvertService{
		loader:        loader,
		watcher:       watcher,
		materializers: materializers,
		tok:           tokenizer.New(),
		log:           log,
	}
}

// Convert runs the full pipeline for one corpus.
func (s *ConvertService) Convert(ctx context.Context, req driving.ConvertRequest) (*driving.ConvertResult, error) {
	// 1. Validate the corpus name before any I/O
	if err := domain.ValidateCorpusName(req.CorpusName); err != nil {
		return nil, fmt.Errorf("%w: %q", err, req.CorpusName)
	}

	// 2. Build the corpus in memory
	corpus, err := s.buildCorpus(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Create the layout and stream the vertical file into it
	mat := s.materializers.Create(req.OutputRoot)
	verticalDir, err := mat.CreateLayout(req.CorpusName)
	if err != nil {
		return nil, err
	}

	if err := s.writeVertical(req, corpus, func(r io.Reader) error {
		return mat.WriteSource(verticalDir, r)
	}); err != nil {
		return nil, err
	}

	// 4. Register the corpus with the engine
	if err := mat.WriteRegistry(req.CorpusName); err != nil {
		return nil, err
	}

	s.log.Info("corpus %q materialized: %d document(s), %d token(s)",
		req.CorpusName, len(corpus.Documents), corpus.TokenCount())

	return &driving.ConvertResult{
		Documents:    len(corpus.Documents),
		Tokens:       corpus.TokenCount(),
		VerticalPath: verticalDir,
	}, nil
}

// Refresh rebuilds the vertical file of an already materialized corpus.
func (s *ConvertService) Refresh(ctx context.Context, req driving.ConvertRequest) (*driving.ConvertResult, error) {
	if err := domain.ValidateCorpusName(req.CorpusName); err != nil {
		return nil, fmt.Errorf("%w: %q", err, req.CorpusName)
	}

	corpus, err := s.buildCorpus(ctx, req)
	if err != nil {
		return nil, err
	}

	mat := s.materializers.Create(req.OutputRoot)
	if err := s.writeVertical(req, corpus, func(r io.Reader) error {
		return mat.RewriteSource(req.CorpusName, r)
	}); err != nil {
		return nil, err
	}

	s.log.Info("corpus %q refreshed: %d document(s), %d token(s)",
		req.CorpusName, len(corpus.Documents), corpus.TokenCount())

	return &driving.ConvertResult{
		Documents: len(corpus.Documents),
		Tokens:    corpus.TokenCount(),
	}, nil
}

// Watch converts once, then refreshes whenever the source tree changes.
func (s *ConvertService) Watch(ctx context.Context, req driving.ConvertRequest) error {
	if s.watcher == nil {
		return fmt.Errorf("%w: watch requires a source watcher", domain.ErrInvalidInput)
	}

	if _, err := s.Convert(ctx, req); err != nil {
		return err
	}

	changes, errs := s.watcher.Watch(ctx, req.SourcePath)

	var timer *time.Timer
	var refresh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case path, ok := <-changes:
			if !ok {
				// Channel closes when the watch ends; report why.
				return ctx.Err()
			}
			s.log.Debug("source changed: %s", path)
			if timer == nil {
				timer = time.NewTimer(refreshDebounce)
				refresh = timer.C
			} else {
				timer.Reset(refreshDebounce)
			}

		case <-refresh:
			timer = nil
			refresh = nil
			if _, err := s.Refresh(ctx, req); err != nil {
				return err
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if err != nil {
				return fmt.Errorf("watch %s: %w", req.SourcePath, err)
			}
		}
	}
}

// List returns the corpus names registered under an output root.
func (s *ConvertService) List(outputRoot string) ([]string, error) {
	return s.materializers.Create(outputRoot).List()
}

// buildCorpus loads the source and tokenizes every text into a document.
// Tokenization runs on a bounded pool of workers; results are collected
// by index, so corpus order always equals discovery order.
func (s *ConvertService) buildCorpus(ctx context.Context, req driving.ConvertRequest) (domain.Corpus, error) {
	texts, err := s.loader.Load(ctx, req.SourcePath)
	if err != nil {
		return domain.Corpus{}, err
	}

	jobs := req.Jobs
	if jobs < 1 {
		jobs = 1
	}
	if jobs > len(texts) {
		jobs = len(texts)
	}

	docs := make([]domain.Document, len(texts))

	if jobs <= 1 {
		for i := range texts {
			docs[i] = s.tokenizeOne(texts[i])
		}
	} else {
		indices := make(chan int)
		var wg sync.WaitGroup
		wg.Add(jobs)
		for w := 0; w < jobs; w++ {
			go func() {
				defer wg.Done()
				for i := range indices {
					docs[i] = s.tokenizeOne(texts[i])
				}
			}()
		}
		for i := range texts {
			indices <- i
		}
		close(indices)
		wg.Wait()
	}

	return domain.Corpus{Name: req.CorpusName, Documents: docs}, nil
}

func (s *ConvertService) tokenizeOne(text domain.RawText) domain.Document {
	tokens := s.tok.Tokenize(text.Content)
	s.log.Debug("tokenized %s: %d token(s)", text.URI, len(tokens))

	return domain.Document{
		ID:     uuid.New().String(),
		URI:    text.URI,
		Tokens: tokens,
	}
}

// writeVertical serializes the corpus and streams it through sink.
func (s *ConvertService) writeVertical(req driving.ConvertRequest, corpus domain.Corpus, sink func(io.Reader) error) error {
	ser := vertical.New(
		vertical.WithDocumentIndexing(!req.SingleDoc),
		vertical.WithMarkupEscaping(req.EscapeMarkup),
	)

	pr, pw := io.Pipe()

	go func() {
		pw.CloseWithError(ser.Serialize(corpus, pw))
	}()

	if err := sink(pr); err != nil {
		pr.CloseWithError(err)
		return err
	}
	return pr.Close()
}
