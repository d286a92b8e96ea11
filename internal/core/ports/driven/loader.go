package driven

import (
	"context"

	"github.com/custodia-labs/vertify/internal/core/domain"
)

// Loader resolves a source path into an ordered sequence of decoded
// texts, one per discovered file.
type Loader interface {
	// Load reads every file named by sourcePath: a single file, or all
	// regular files under a directory tree. Discovery order must be
	// stable for an unchanged tree. A path that is neither file nor
	// directory wraps domain.ErrInvalidSource; an undecodable file
	// wraps domain.ErrDecode.
	Load(ctx context.Context, sourcePath string) ([]domain.RawText, error)
}

// Watcher reports changes under a source path.
type Watcher interface {
	// Watch emits changed paths until ctx is done. Both channels are
	// closed when the watch ends.
	Watch(ctx context.Context, sourcePath string) (<-chan string, <-chan error)
}
