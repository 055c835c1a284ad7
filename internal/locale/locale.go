package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/romashorodok/room-directory/pkg/protocol"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed lang/*.yaml
var builtinLanguages embed.FS

// Bundle holds the builtin message catalogs (en-GB and fr).
type Bundle struct {
	bundle   *i18n.Bundle
	fallback string
}

// NewBundle loads every builtin catalog. defaultLanguage is used when a
// translator is asked for a language the bundle does not carry.
func NewBundle(defaultLanguage string) (*Bundle, error) {
	tag, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("default language %q: %w", defaultLanguage, err)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.Glob(builtinLanguages, "lang/*.yaml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		data, err := builtinLanguages.ReadFile(file)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(file)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
	}

	return &Bundle{bundle: bundle, fallback: tag.String()}, nil
}

// Languages lists the tags the bundle has catalogs for.
func (b *Bundle) Languages() []string {
	tags := b.bundle.LanguageTags()
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		result = append(result, tag.String())
	}
	return result
}

// Translator returns translate(key) for the preferred languages, given as
// tags or Accept-Language values. Unknown keys translate to themselves.
func (b *Bundle) Translator(langs ...string) protocol.LocalizeFunc {
	localizer := i18n.NewLocalizer(b.bundle, append(slices.Clone(langs), b.fallback)...)
	return func(key string) string {
		msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
		if err != nil || msg == "" {
			return key
		}
		return msg
	}
}
