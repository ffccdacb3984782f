package locale

import (
	"context"
	"embed"
	"sync"
)

//go:embed locales/*.yaml
var embeddedCatalogs embed.FS

var defaultTranslator = sync.OnceValue(func() *Translator {
	return MustNew(context.Background(), NewFSSource(embeddedCatalogs, "locales"))
})

// Default returns the translator backed by the embedded English and Spanish
// catalogs. Applications with their own catalogs should build a Translator
// from a Source instead.
func Default() *Translator {
	return defaultTranslator()
}
