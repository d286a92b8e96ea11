// Package tokenizer provides the word/punctuation splitter that turns raw
// text into vertical-format tokens.
package tokenizer

import (
	"strings"

	"github.com/custodia-labs/vertify/internal/core/domain"
)

// Punctuation is the default punctuation set: the ASCII punctuation
// characters. Each occurrence becomes a standalone token.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenizer splits text into word and punctuation tokens.
// It is a pure, deterministic, single-pass splitter: no normalization,
// no lookahead, no locale dependence.
type Tokenizer struct {
	punct [256]bool
}

// Option configures the tokenizer.
type Option func(*Tokenizer)

// WithPunctuation replaces the default punctuation set. Only single-byte
// characters are honoured; multi-byte runes in the set are ignored.
func WithPunctuation(set string) Option {
	return func(t *Tokenizer) {
		t.punct = [256]bool{}
		for i := 0; i < len(set); i++ {
			t.punct[set[i]] = true
		}
	}
}

// New creates a tokenizer with the given options.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{}
	WithPunctuation(Punctuation)(t)

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Tokenize splits text into an ordered token sequence. Words are maximal
// whitespace-delimited runs; every punctuation character inside a word is
// cut out as its own single-character token. Empty input yields an empty
// sequence. Total over decoded text: never fails.
func (t *Tokenizer) Tokenize(text string) []domain.Token {
	words := strings.Fields(text)

	var tokens []domain.Token
	for _, word := range words {
		tokens = t.splitWord(tokens, word)
	}

	return tokens
}

// splitWord appends the tokens of a single whitespace-delimited word.
// The scan is byte-wise: the punctuation set is ASCII-only and UTF-8
// continuation bytes never collide with it.
func (t *Tokenizer) splitWord(tokens []domain.Token, word string) []domain.Token {
	lastCut := 0

	for i := 0; i < len(word); i++ {
		if !t.punct[word[i]] {
			continue
		}
		if i > lastCut {
			tokens = append(tokens, word[lastCut:i])
		}
		tokens = append(tokens, word[i:i+1])
		lastCut = i + 1
	}

	if lastCut < len(word) {
		tokens = append(tokens, word[lastCut:])
	}

	return tokens
}
