package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/humor-go/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer serves the embedded page templates through echo.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Notice is a one-shot user-visible message. Kind selects the styling:
// success, info, warning, or error.
type Notice struct {
	Kind string
	Text string
}

// LoginPage is the explicit render input for the unauthenticated state. The
// translator form is never part of this page.
type LoginPage struct {
	Email  string
	Notice *Notice
}

// TranslatorForm echoes the submitted selections back into the page.
type TranslatorForm struct {
	SourceCulture  string
	TargetCulture  string
	TargetLanguage string
	JokeText       string
}

// ResultView is a successfully translated joke ready for display.
type ResultView struct {
	Heading string
	Text    string
	Model   string
}

// TranslatorPage is the explicit render input for the authenticated state:
// session email, selector options, last form values, and the last notice or
// result.
type TranslatorPage struct {
	Email          string
	SourceCultures []domain.Culture
	TargetCultures []domain.Culture
	Languages      []domain.Language
	Form           TranslatorForm
	Notice         *Notice
	Result         *ResultView
}

func defaultForm() TranslatorForm {
	return TranslatorForm{
		SourceCulture:  string(domain.SourceCultures[0]),
		TargetCulture:  string(domain.TargetCultures[0]),
		TargetLanguage: string(domain.Languages[0]),
	}
}
