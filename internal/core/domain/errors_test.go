package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidSource", ErrInvalidSource},
		{"ErrDecode", ErrDecode},
		{"ErrInvalidCorpusName", ErrInvalidCorpusName},
		{"ErrOutputRootNotFound", ErrOutputRootNotFound},
		{"ErrCorpusExists", ErrCorpusExists},
		{"ErrInvalidInput", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Distinct tests that sentinel errors do not match each other
func TestErrors_Distinct(t *testing.T) {
	assert.True(t, errors.Is(ErrCorpusExists, ErrCorpusExists))
	assert.False(t, errors.Is(ErrCorpusExists, ErrOutputRootNotFound))
	assert.False(t, errors.Is(ErrInvalidSource, ErrDecode))
}

// TestErrors_Wrapping tests that wrapped errors keep their sentinel
func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: %s", ErrInvalidSource, "/no/such/path")

	assert.True(t, errors.Is(wrapped, ErrInvalidSource))
	assert.Contains(t, wrapped.Error(), "/no/such/path")
}
