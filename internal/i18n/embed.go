package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"
)

//go:embed locales/*.yml
var localesFS embed.FS

const localesDir = "locales"

// loadEmbeddedTranslations registers every bundled locale file with the
// bundle. Language is taken from the file name (en.yml).
func loadEmbeddedTranslations() error {
	entries, err := localesFS.ReadDir(localesDir)
	if err != nil {
		return fmt.Errorf("read locales: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localesFS, path.Join(localesDir, entry.Name())); err != nil {
			return fmt.Errorf("load %s: %w", entry.Name(), err)
		}
	}
	return nil
}
