package i18n

import (
	"embed"
	"log/slog"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Messages resolves user-facing notices (welcome, warnings, error templates)
// for a UI locale. A thin wrapper around go-i18n's Bundle/Localizer.
type Messages struct {
	bundle          *goi18n.Bundle
	defaultLanguage language.Tag
}

// NewMessages builds a Messages catalog from the embedded active.*.toml
// files, falling back to defaultLocale (e.g. "en").
func NewMessages(defaultLocale string) *Messages {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.es.toml", "active.hi.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			slog.Warn("i18n: failed to load locale file", "file", file, "error", err)
		}
	}

	return &Messages{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// T renders the message identified by key for the given locale, falling back
// to the default locale and finally to the key itself.
func (m *Messages) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, m.defaultLanguage.String())

	localizer := goi18n.NewLocalizer(m.bundle, languages...)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Warn("i18n: localize failed", "key", key, "locales", languages, "error", err)
		return key
	}
	return msg
}
