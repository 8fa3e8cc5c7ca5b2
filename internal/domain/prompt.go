package domain

import "fmt"

// BuildPrompt renders the humor-translation instruction for a request.
// Pure string assembly; the caller guarantees JokeText is non-empty.
func BuildPrompt(req TranslationRequest) string {
	return fmt.Sprintf(
		"You are a humor translator. Adapt this %s joke for a %s audience, "+
			"and rewrite it naturally in %s. "+
			"Keep it funny, culturally relevant, and easy to understand.\n\nJoke: %s",
		req.SourceCulture, req.TargetCulture, req.TargetLanguage, req.JokeText,
	)
}
