// Package i18n loads the embedded message catalogs used for labels and
// gallery text.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Translator resolves message IDs in the current language. It is safe for
// concurrent use.
type Translator struct {
	bundle *goi18n.Bundle

	mu        sync.RWMutex
	lang      language.Tag
	localizer *goi18n.Localizer
}

// New loads every embedded catalog and selects lang, falling back to
// English for an empty tag.
func New(lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}
	for _, p := range paths {
		if _, err := bundle.LoadMessageFileFS(locales, p); err != nil {
			return nil, fmt.Errorf("failed to load catalog %s: %w", p, err)
		}
	}

	t := &Translator{bundle: bundle}
	if err := t.SetLanguage(lang); err != nil {
		return nil, err
	}
	return t, nil
}

// SetLanguage switches the language. Tags without a catalog resolve to the
// closest match, ultimately English.
func (t *Translator) SetLanguage(lang string) error {
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("invalid language %q: %w", lang, err)
		}
		tag = parsed
	}
	t.use(tag)
	return nil
}

// use selects the catalog closest to tag.
func (t *Translator) use(tag language.Tag) {
	matcher := language.NewMatcher(t.bundle.LanguageTags())
	_, index, _ := matcher.Match(tag)
	matched := t.bundle.LanguageTags()[index]

	t.mu.Lock()
	t.lang = matched
	t.localizer = goi18n.NewLocalizer(t.bundle, matched.String())
	t.mu.Unlock()
}

// Language returns the selected language.
func (t *Translator) Language() language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// Languages lists the languages with a catalog, English first.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// Next switches to the language after the current one and returns it.
func (t *Translator) Next() language.Tag {
	tags := t.Languages()
	cur := t.Language()
	next := tags[0]
	for i, tag := range tags {
		if tag == cur {
			next = tags[(i+1)%len(tags)]
			break
		}
	}
	t.use(next)
	return next
}

// T returns the message for id, or id itself when no catalog defines it.
func (t *Translator) T(id string) string {
	t.mu.RLock()
	loc := t.localizer
	t.mu.RUnlock()

	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
