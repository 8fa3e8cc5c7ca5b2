package domain

import "time"

// Culture identifies a cultural context a joke is written for.
type Culture string

const (
	CultureAmerican Culture = "American"
	CultureBritish  Culture = "British"
	CultureIndian   Culture = "Indian"
	CultureJapanese Culture = "Japanese"
	CultureOther    Culture = "Other"
)

// SourceCultures lists the selectable source cultures in display order.
var SourceCultures = []Culture{
	CultureAmerican,
	CultureBritish,
	CultureIndian,
	CultureJapanese,
	CultureOther,
}

// TargetCultures lists the selectable target cultures in display order.
var TargetCultures = []Culture{
	CultureIndian,
	CultureAmerican,
	CultureBritish,
	CultureJapanese,
	CultureOther,
}

// Language identifies the language the rewritten joke should be in.
type Language string

const (
	LanguageEnglish  Language = "English"
	LanguageHindi    Language = "Hindi"
	LanguageSpanish  Language = "Spanish"
	LanguageFrench   Language = "French"
	LanguageGerman   Language = "German"
	LanguageJapanese Language = "Japanese"
)

// Languages lists the selectable output languages in display order.
var Languages = []Language{
	LanguageEnglish,
	LanguageHindi,
	LanguageSpanish,
	LanguageFrench,
	LanguageGerman,
	LanguageJapanese,
}

// ParseCulture validates a raw form value against the known cultures.
func ParseCulture(raw string) (Culture, error) {
	switch c := Culture(raw); c {
	case CultureAmerican, CultureBritish, CultureIndian, CultureJapanese, CultureOther:
		return c, nil
	default:
		return "", ErrInvalidCulture
	}
}

// ParseLanguage validates a raw form value against the known languages.
func ParseLanguage(raw string) (Language, error) {
	switch l := Language(raw); l {
	case LanguageEnglish, LanguageHindi, LanguageSpanish, LanguageFrench, LanguageGerman, LanguageJapanese:
		return l, nil
	default:
		return "", ErrInvalidLanguage
	}
}

// Session is the per-visitor authentication record. It lives server-side in a
// SessionStore keyed by an opaque token carried in a cookie; a visitor is
// authenticated exactly when a store entry exists for their token.
type Session struct {
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}

// TranslationRequest carries one joke submission. Transient: built from the
// form, consumed by the prompt builder, never persisted.
type TranslationRequest struct {
	SourceCulture  Culture
	TargetCulture  Culture
	TargetLanguage Language
	JokeText       string
}

// TranslationResult is the rewritten joke plus call metadata.
type TranslationResult struct {
	Text      string
	Model     string
	LatencyMS int64
}
