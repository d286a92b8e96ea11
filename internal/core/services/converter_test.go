package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vertify/internal/connectors/filesystem"
	"github.com/custodia-labs/vertify/internal/core/domain"
	"github.com/custodia-labs/vertify/internal/core/ports/driven"
	"github.com/custodia-labs/vertify/internal/core/ports/driving"
	"github.com/custodia-labs/vertify/internal/logger"
	"github.com/custodia-labs/vertify/internal/nosketch"
)

type nosketchFactory struct{}

func (nosketchFactory) Create(root string) driven.Materializer {
	return nosketch.New(root, nosketch.WithLogger(logger.Nop()))
}

func newTestService() *ConvertService {
	loader := filesystem.New(filesystem.WithLogger(logger.Nop()))
	return NewConvertService(loader, loader, nosketchFactory{}, logger.Nop())
}

func writeSourceFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConvertService_Convert(t *testing.T) {
	t.Run("single file end to end", func(t *testing.T) {
		sourceDir := t.TempDir()
		outputRoot := t.TempDir()
		source := writeSourceFile(t, sourceDir, "text.txt", "Hello, world!")

		svc := newTestService()
		result, err := svc.Convert(context.Background(), driving.ConvertRequest{
			SourcePath: source,
			OutputRoot: outputRoot,
			CorpusName: "Greeting",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Documents)
		assert.Equal(t, 4, result.Tokens)

		raw, err := os.ReadFile(filepath.Join(result.VerticalPath, nosketch.SourceFileName))
		require.NoError(t, err)
		assert.Equal(t, "<doc n=\"1\">\nHello\n,\nworld\n!\n</doc>\n", string(raw))

		_, err = os.Stat(filepath.Join(outputRoot, "corpora", "registry", "greeting"))
		assert.NoError(t, err)
	})

	t.Run("directory tree produces one document per file", func(t *testing.T) {
		sourceDir := t.TempDir()
		outputRoot := t.TempDir()
		writeSourceFile(t, sourceDir, "a.txt", "Hi")
		writeSourceFile(t, sourceDir, "b.txt", "Bye !")

		svc := newTestService()
		result, err := svc.Convert(context.Background(), driving.ConvertRequest{
			SourcePath: sourceDir,
			OutputRoot: outputRoot,
			CorpusName: "pair",
		})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Documents)

		raw, err := os.ReadFile(filepath.Join(result.VerticalPath, nosketch.SourceFileName))
		require.NoError(t, err)
		assert.Equal(t, "<doc n=\"1\">\nHi\n</doc>\n<doc n=\"2\">\nBye\n!\n</doc>\n", string(raw))
	})

	t.Run("legacy single-doc mode", func(t *testing.T) {
		sourceDir := t.TempDir()
		outputRoot := t.TempDir()
		source := writeSourceFile(t, sourceDir, "text.txt", "one two")

		svc := newTestService()
		result, err := svc.Convert(context.Background(), driving.ConvertRequest{
			SourcePath: source,
			OutputRoot: outputRoot,
			CorpusName: "legacy",
			SingleDoc:  true,
		})
		require.NoError(t, err)

		raw, err := os.ReadFile(filepath.Join(result.VerticalPath, nosketch.SourceFileName))
		require.NoError(t, err)
		assert.Equal(t, "<doc>\none\ntwo\n</doc>\n", string(raw))
	})

	t.Run("parallel tokenization preserves discovery order", func(t *testing.T) {
		sourceDir := t.TempDir()
		outputRoot := t.TempDir()
		for i := 0; i < 20; i++ {
			writeSourceFile(t, sourceDir, fmt.Sprintf("f%02d.txt", i), fmt.Sprintf("word%02d", i))
		}

		svc := newTestService()
		result, err := svc.Convert(context.Background(), driving.ConvertRequest{
			SourcePath: sourceDir,
			OutputRoot: outputRoot,
			CorpusName: "ordered",
			Jobs:       8,
		})
		require.NoError(t, err)
		assert.Equal(t, 20, result.Documents)

		raw, err := os.ReadFile(filepath.Join(result.VerticalPath, nosketch.SourceFileName))
		require.NoError(t, err)

		want := ""
		for i := 0; i < 20; i++ {
			want += fmt.Sprintf("<doc n=\"%d\">\nword%02d\n</doc>\n", i+1, i)
		}
		assert.Equal(t, want, string(raw))
	})

	t.Run("rejects corpus name with separator before any output", func(t *testing.T) {
		outputRoot := t.TempDir()

		svc := newTestService()
		_, err := svc.Convert(context.Background(), driving.ConvertRequest{
			SourcePath: "/irrelevant",
			OutputRoot: outputRoot,
			CorpusName: "bad/name",
		})

		assert.True(t, errors.Is(err, domain.ErrInvalidCorpusName))

		entries, readErr := os.ReadDir(outputRoot)
		require.NoError(t, readErr)
		assert.Empty(t, entries, "nothing may be written for an invalid name")
	})

	t.Run("invalid source propagates", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.Convert(context.Background(), driving.ConvertRequest{
			SourcePath: "/no/such/source",
			OutputRoot: t.TempDir(),
			CorpusName: "demo",
		})

		assert.True(t, errors.Is(err, domain.ErrInvalidSource))
	})

	t.Run("existing corpus is not overwritten", func(t *testing.T) {
		sourceDir := t.TempDir()
		outputRoot := t.TempDir()
		source := writeSourceFile(t, sourceDir, "text.txt", "text")

		svc := newTestService()
		req := driving.ConvertRequest{
			SourcePath: source,
			OutputRoot: outputRoot,
			CorpusName: "dup",
		}

		_, err := svc.Convert(context.Background(), req)
		require.NoError(t, err)

		_, err = svc.Convert(context.Background(), req)
		assert.True(t, errors.Is(err, domain.ErrCorpusExists))
	})

	t.Run("missing output root propagates", func(t *testing.T) {
		sourceDir := t.TempDir()
		source := writeSourceFile(t, sourceDir, "text.txt", "text")

		svc := newTestService()
		_, err := svc.Convert(context.Background(), driving.ConvertRequest{
			SourcePath: source,
			OutputRoot: "/no/such/root",
			CorpusName: "demo",
		})

		assert.True(t, errors.Is(err, domain.ErrOutputRootNotFound))
	})
}

func TestConvertService_Refresh(t *testing.T) {
	sourceDir := t.TempDir()
	outputRoot := t.TempDir()
	source := writeSourceFile(t, sourceDir, "text.txt", "before")

	svc := newTestService()
	req := driving.ConvertRequest{
		SourcePath: source,
		OutputRoot: outputRoot,
		CorpusName: "fresh",
	}

	result, err := svc.Convert(context.Background(), req)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(source, []byte("after !"), 0644))

	refreshed, err := svc.Refresh(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed.Tokens)

	raw, err := os.ReadFile(filepath.Join(result.VerticalPath, nosketch.SourceFileName))
	require.NoError(t, err)
	assert.Equal(t, "<doc n=\"1\">\nafter\n!\n</doc>\n", string(raw))
}

func TestConvertService_Watch(t *testing.T) {
	t.Run("requires a watcher", func(t *testing.T) {
		loader := filesystem.New(filesystem.WithLogger(logger.Nop()))
		svc := NewConvertService(loader, nil, nosketchFactory{}, logger.Nop())

		err := svc.Watch(context.Background(), driving.ConvertRequest{
			SourcePath: t.TempDir(),
			OutputRoot: t.TempDir(),
			CorpusName: "demo",
		})
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("refreshes on change and stops with context", func(t *testing.T) {
		sourceDir := t.TempDir()
		outputRoot := t.TempDir()
		source := writeSourceFile(t, sourceDir, "text.txt", "first")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		svc := newTestService()
		done := make(chan error, 1)
		go func() {
			done <- svc.Watch(ctx, driving.ConvertRequest{
				SourcePath: sourceDir,
				OutputRoot: outputRoot,
				CorpusName: "watched",
			})
		}()

		verticalFile := filepath.Join(outputRoot, "corpora", "watched", "vertical", nosketch.SourceFileName)

		// Wait for the initial conversion.
		require.Eventually(t, func() bool {
			raw, err := os.ReadFile(verticalFile)
			return err == nil && string(raw) == "<doc n=\"1\">\nfirst\n</doc>\n"
		}, 3*time.Second, 20*time.Millisecond)

		require.NoError(t, os.WriteFile(source, []byte("second"), 0644))

		require.Eventually(t, func() bool {
			raw, err := os.ReadFile(verticalFile)
			return err == nil && string(raw) == "<doc n=\"1\">\nsecond\n</doc>\n"
		}, 3*time.Second, 20*time.Millisecond)

		cancel()
		err := <-done
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestConvertService_List(t *testing.T) {
	sourceDir := t.TempDir()
	outputRoot := t.TempDir()
	source := writeSourceFile(t, sourceDir, "text.txt", "text")

	svc := newTestService()
	for _, name := range []string{"Beta", "alpha"} {
		_, err := svc.Convert(context.Background(), driving.ConvertRequest{
			SourcePath: source,
			OutputRoot: outputRoot,
			CorpusName: name,
		})
		require.NoError(t, err)
	}

	names, err := svc.List(outputRoot)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)
}
