// Package i18n serves the user facing strings from embedded YAML bundles,
// one file per locale under locales/.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/diegoclair/map-rotation-bot/internal/domain"
	"github.com/diegoclair/map-rotation-bot/internal/domain/contract"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

// Bundle holds every locale's messages flattened to dotted keys
type Bundle struct {
	fallback string
	messages map[string]map[string]string
}

// New loads the embedded bundles. fallback is used for unknown locales and for
// keys missing from a locale.
func New(fallback string) (*Bundle, error) {
	entries, err := localeFiles.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}

	b := &Bundle{messages: make(map[string]map[string]string)}
	for _, e := range entries {
		data, err := localeFiles.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", e.Name(), err)
		}

		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", e.Name(), err)
		}

		msgs := make(map[string]string)
		flatten("", tree, msgs)
		b.messages[strings.TrimSuffix(e.Name(), path.Ext(e.Name()))] = msgs
	}

	norm, ok := b.Supported(fallback)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, fallback)
	}
	b.fallback = norm

	return b, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case map[string]any:
			flatten(key, v, out)
		case string:
			out[key] = v
		default:
			out[key] = fmt.Sprint(v)
		}
	}
}

// Supported reduces a locale tag to its base language ("es-ES" becomes "es")
// and reports whether a bundle exists for it.
func (b *Bundle) Supported(locale string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	norm := base.String()
	_, ok := b.messages[norm]
	return norm, ok
}

// Locales lists the bundled locales in sorted order
func (b *Bundle) Locales() []string {
	locales := make([]string, 0, len(b.messages))
	for l := range b.messages {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

func (b *Bundle) DefaultLocale() string {
	return b.fallback
}

// For returns a translator bound to locale, or to the fallback locale when
// locale is empty or unknown.
func (b *Bundle) For(locale string) contract.Translator {
	norm, ok := b.Supported(locale)
	if !ok {
		norm = b.fallback
	}
	return &translator{bundle: b, locale: norm}
}

type translator struct {
	bundle *Bundle
	locale string
}

func (t *translator) Locale() string {
	return t.locale
}

// T resolves key in the bound locale, then the fallback locale, then returns
// the key itself. {{name}} placeholders are replaced from params.
func (t *translator) T(key string, params map[string]string) string {
	msg, ok := t.bundle.messages[t.locale][key]
	if !ok {
		msg, ok = t.bundle.messages[t.bundle.fallback][key]
	}
	if !ok {
		return key
	}
	if len(params) == 0 {
		return msg
	}

	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
