package nosketch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/vertify/internal/textcodec"
)

// registryTemplate is the engine's corpus descriptor. The layout, the
// UTF-8 encoding tag and the single word attribute are fixed by the
// downstream engine and reproduced verbatim.
const registryTemplate = `NAME "%[1]s"
PATH %[2]s
ENCODING "UTF-8"
LANGUAGE "English"

PATH   '/corpora/%[2]s/indexed/'
VERTICAL  '/corpora/%[2]s/vertical/source'


ATTRIBUTE  word

STRUCTURE doc {
    LABEL "Corpus Document"
}
`

// RegistryContent renders the descriptor for a corpus name.
func RegistryContent(corpusName string) string {
	return fmt.Sprintf(registryTemplate, corpusName, strings.ToLower(corpusName))
}

// WriteRegistry writes the descriptor to
// <root>/corpora/registry/<lowercased name>, codec-encoded. The registry
// directory is created when absent.
func (m *Materializer) WriteRegistry(corpusName string) error {
	registryDir := filepath.Join(m.root, "corpora", "registry")
	if err := os.MkdirAll(registryDir, 0755); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}

	raw, err := textcodec.Encode(RegistryContent(corpusName))
	if err != nil {
		return fmt.Errorf("encode registry descriptor: %w", err)
	}

	path := filepath.Join(registryDir, strings.ToLower(corpusName))
	m.log.Debug("writing registry descriptor to %s", path)

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("write registry descriptor: %w", err)
	}
	return nil
}
