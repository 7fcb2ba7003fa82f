package i18n

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLanguage = "en"

	KeyCopy   = "clipboard.copy"
	KeyCopied = "clipboard.copied"
)

//go:embed catalog/messages.yaml
var catalogYAML []byte

// catalog maps language -> message key -> text.
type catalog map[string]map[string]string

func loadCatalog(data []byte) (catalog, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}
	return c, nil
}

// Translator resolves message keys for one language.
type Translator struct {
	lang      string
	messages  catalog
	overrides map[string]string
}

// New returns a Translator for lang. Overrides take precedence over the
// built-in catalog for every key they define.
func New(lang string, overrides map[string]string) (*Translator, error) {
	c, err := loadCatalog(catalogYAML)
	if err != nil {
		return nil, err
	}
	lang = normalize(lang)
	if lang == "" {
		lang = DefaultLanguage
	}
	return &Translator{lang: lang, messages: c, overrides: overrides}, nil
}

// Language returns the language the translator was created for.
func (t *Translator) Language() string {
	return t.lang
}

// Translate returns the text for key, trying overrides, the exact language,
// its base language and English in that order. Unknown keys come back
// unchanged.
func (t *Translator) Translate(key string) string {
	if v, ok := t.overrides[key]; ok && v != "" {
		return v
	}
	for _, lang := range t.candidates() {
		if v, ok := t.messages[lang][key]; ok {
			return v
		}
	}
	return key
}

func (t *Translator) candidates() []string {
	langs := []string{t.lang}
	if base, _, ok := strings.Cut(t.lang, "-"); ok {
		langs = append(langs, base)
	}
	return append(langs, DefaultLanguage)
}

// Languages lists the languages in the built-in catalog.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.messages))
	for lang := range t.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// normalize turns "pt_BR.UTF-8" style locale names into "pt-br".
func normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ReplaceAll(lang, "_", "-")
	return strings.ToLower(lang)
}
