// Package vertical renders a tokenized corpus in the line-oriented
// vertical format consumed by the indexing engine: one token per line,
// documents delimited by <doc>/</doc> markers.
package vertical

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/vertify/internal/core/domain"
)

// Serializer writes a corpus in vertical format.
// Total over well-formed input: the only failure sources are the output
// writer and the legacy-mode arity rule.
type Serializer struct {
	indexed bool
	escape  bool
}

// Option configures the serializer.
type Option func(*Serializer)

// WithDocumentIndexing selects between the indexed boundary form
// (`<doc n="i">`, the default) and the legacy single-document form
// (`<doc>`). Legacy mode accepts exactly one document.
func WithDocumentIndexing(enabled bool) Option {
	return func(s *Serializer) {
		s.indexed = enabled
	}
}

// WithMarkupEscaping enables XML-entity escaping of &, < and > inside
// tokens. Off by default: the legacy format emits tokens verbatim even
// when they collide with the boundary markup, and the downstream engine
// expects that.
func WithMarkupEscaping(enabled bool) Option {
	return func(s *Serializer) {
		s.escape = enabled
	}
}

// New creates a serializer with the given options.
func New(opts ...Option) *Serializer {
	s := &Serializer{indexed: true}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Serialize writes the corpus to w: per document a boundary header, one
// token per line, and a closing `</doc>`. No preamble, and nothing after
// the final `</doc>` line beyond its newline.
func (s *Serializer) Serialize(c domain.Corpus, w io.Writer) error {
	if !s.indexed && len(c.Documents) != 1 {
		return fmt.Errorf("%w: legacy single-document mode requires exactly one document, got %d",
			domain.ErrInvalidInput, len(c.Documents))
	}

	bw := bufio.NewWriter(w)

	for i := range c.Documents {
		if s.indexed {
			fmt.Fprintf(bw, "<doc n=\"%d\">\n", i+1)
		} else {
			bw.WriteString("<doc>\n")
		}

		for _, token := range c.Documents[i].Tokens {
			if s.escape {
				token = markupEscaper.Replace(token)
			}
			bw.WriteString(token)
			bw.WriteByte('\n')
		}

		bw.WriteString("</doc>\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write vertical output: %w", err)
	}
	return nil
}
