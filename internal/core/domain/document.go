package domain

import "strings"

// Token is an indivisible unit of vertical output: a word or a single
// punctuation character. Tokens never contain whitespace or newlines.
type Token = string

// RawText is the decoded content of exactly one source file.
// It is transient: read once, tokenized once, then discarded.
type RawText struct {
	// URI is the original location of the text (a file path).
	URI string

	// Content is the full decoded text.
	Content string
}

// Document is the tokenized content of one source file.
// Token order is significant and preserved from the source.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path) the document came from.
	URI string

	// Tokens holds the document's tokens in source order.
	Tokens []Token
}

// Corpus is the full ordered collection of Documents produced from one
// conversion run. Document order is the loader's discovery order and is
// 1-based when serialized.
type Corpus struct {
	// Name is the user-facing corpus name.
	Name string

	// Documents holds the corpus content in discovery order.
	Documents []Document
}

// TokenCount returns the total number of tokens across all documents.
func (c Corpus) TokenCount() int {
	total := 0
	for i := range c.Documents {
		total += len(c.Documents[i].Tokens)
	}
	return total
}

// ValidateCorpusName rejects corpus names that cannot form a single path
// element. Called before any filesystem I/O so an invalid name never
// creates partial output.
func ValidateCorpusName(name string) error {
	if name == "" {
		return ErrInvalidCorpusName
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrInvalidCorpusName
	}
	return nil
}
