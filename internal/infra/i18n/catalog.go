// Package i18n loads the per-language translation catalogs shipped with the
// binary and resolves dot-delimited keys against them.
package i18n

import (
	"embed"
	"strings"

	"saathi/internal/domain/entity"

	"github.com/knadh/koanf/parsers/yaml"
	koanffs "github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog holds one koanf tree per shipped language. Koanf's dot-delimited
// key access is exactly the path-walk the translation lookup needs.
type Catalog struct {
	languages map[entity.Language]*koanf.Koanf
}

// NewCatalog parses every embedded locale file. Languages may be partial;
// only English is required to be present.
func NewCatalog() (*Catalog, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded locales")
	}

	languages := make(map[entity.Language]*koanf.Koanf, len(entries))
	for _, entry := range entries {
		code := entity.Language(strings.TrimSuffix(entry.Name(), ".yaml"))
		if !entity.IsSupportedLanguage(code) {
			return nil, errors.Errorf("locale file %q does not match a supported language", entry.Name())
		}

		k := koanf.New(".")
		if err := k.Load(koanffs.Provider(localeFS, "locales/"+entry.Name()), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to parse locale %q", code)
		}
		languages[code] = k
	}

	if _, ok := languages[entity.LanguageEnglish]; !ok {
		return nil, errors.New("english locale is missing")
	}

	return &Catalog{languages: languages}, nil
}

// Lookup resolves a dot-delimited key in one language's catalog. The second
// return value distinguishes a miss from a value that happens to equal the
// key; only leaf strings count as hits.
func (c *Catalog) Lookup(lang entity.Language, key string) (string, bool) {
	k, ok := c.languages[lang]
	if !ok {
		return "", false
	}
	if !k.Exists(key) {
		return "", false
	}

	value, ok := k.Get(key).(string)
	if !ok {
		return "", false
	}

	return value, true
}

// Languages returns the codes of the shipped catalogs.
func (c *Catalog) Languages() []entity.Language {
	codes := make([]entity.Language, 0, len(c.languages))
	for code := range c.languages {
		codes = append(codes, code)
	}

	return codes
}
