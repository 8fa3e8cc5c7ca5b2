package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/humor-go/internal/app"
	"github.com/randomtoy/humor-go/internal/domain"
	"github.com/randomtoy/humor-go/internal/i18n"
)

const sessionCookie = "humor_session"

type Handler struct {
	auth       *app.AuthService
	translator *app.TranslationService
	messages   *i18n.Messages
	metrics    *Metrics
}

func NewHandler(auth *app.AuthService, translator *app.TranslationService, messages *i18n.Messages, metrics *Metrics) *Handler {
	return &Handler{
		auth:       auth,
		translator: translator,
		messages:   messages,
		metrics:    metrics,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	e.GET("/", h.Index)
	e.POST("/signup", h.SignUp)
	e.POST("/login", h.LogIn)
	e.POST("/logout", h.LogOut)
	e.POST("/translate", h.Translate)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Index renders the login page or the translator page depending on whether
// the visitor's cookie resolves to a live session.
func (h *Handler) Index(c echo.Context) error {
	sess, ok := h.auth.Resolve(c.Request().Context(), sessionToken(c))
	if !ok {
		return c.Render(http.StatusOK, "login.html", LoginPage{})
	}
	return c.Render(http.StatusOK, "translator.html", h.translatorPage(sess.UserEmail, defaultForm(), nil, nil))
}

func (h *Handler) SignUp(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	locale := localeOf(c)

	if err := h.auth.SignUp(c.Request().Context(), email, password); err != nil {
		h.metrics.AuthAttempt("signup", "failure")
		notice := h.authFailureNotice(locale, "signup_failed", err)
		return c.Render(statusOfAuthErr(err), "login.html", LoginPage{Email: email, Notice: &notice})
	}

	h.metrics.AuthAttempt("signup", "success")
	notice := Notice{Kind: "success", Text: h.messages.T(locale, "account_created", nil)}
	return c.Render(http.StatusOK, "login.html", LoginPage{Email: email, Notice: &notice})
}

func (h *Handler) LogIn(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	locale := localeOf(c)

	token, sess, err := h.auth.SignIn(c.Request().Context(), email, password)
	if err != nil {
		h.metrics.AuthAttempt("login", "failure")
		notice := h.authFailureNotice(locale, "login_failed", err)
		return c.Render(statusOfAuthErr(err), "login.html", LoginPage{Email: email, Notice: &notice})
	}

	h.metrics.AuthAttempt("login", "success")
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	notice := Notice{Kind: "success", Text: h.messages.T(locale, "welcome", map[string]any{"Email": sess.UserEmail})}
	return c.Render(http.StatusOK, "translator.html", h.translatorPage(sess.UserEmail, defaultForm(), &notice, nil))
}

// LogOut deletes the session and expires the cookie. Safe to repeat.
func (h *Handler) LogOut(c echo.Context) error {
	_ = h.auth.SignOut(c.Request().Context(), sessionToken(c))

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	notice := Notice{Kind: "info", Text: h.messages.T(localeOf(c), "logged_out", nil)}
	return c.Render(http.StatusOK, "login.html", LoginPage{Notice: &notice})
}

func (h *Handler) Translate(c echo.Context) error {
	ctx := c.Request().Context()
	locale := localeOf(c)

	sess, ok := h.auth.Resolve(ctx, sessionToken(c))
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	form := TranslatorForm{
		SourceCulture:  c.FormValue("source_culture"),
		TargetCulture:  c.FormValue("target_culture"),
		TargetLanguage: c.FormValue("target_language"),
		JokeText:       c.FormValue("joke"),
	}

	source, srcErr := domain.ParseCulture(form.SourceCulture)
	target, tgtErr := domain.ParseCulture(form.TargetCulture)
	language, langErr := domain.ParseLanguage(form.TargetLanguage)
	if srcErr != nil || tgtErr != nil || langErr != nil {
		notice := Notice{Kind: "warning", Text: h.messages.T(locale, "invalid_selection", nil)}
		return c.Render(http.StatusBadRequest, "translator.html", h.translatorPage(sess.UserEmail, form, &notice, nil))
	}

	req := domain.TranslationRequest{
		SourceCulture:  source,
		TargetCulture:  target,
		TargetLanguage: language,
		JokeText:       form.JokeText,
	}

	res, err := h.translator.Translate(ctx, req)
	if err != nil {
		status, notice := h.translateFailure(locale, err)
		return c.Render(status, "translator.html", h.translatorPage(sess.UserEmail, form, &notice, nil))
	}

	h.metrics.Translation("success")
	result := &ResultView{
		Heading: h.messages.T(locale, "translated_heading", map[string]any{"Language": string(language)}),
		Text:    res.Text,
		Model:   res.Model,
	}
	return c.Render(http.StatusOK, "translator.html", h.translatorPage(sess.UserEmail, form, nil, result))
}

// translateFailure maps the error taxonomy to a status and a distinct notice.
func (h *Handler) translateFailure(locale string, err error) (int, Notice) {
	var svcErr *domain.ServiceError

	switch {
	case errors.Is(err, domain.ErrEmptyJoke):
		h.metrics.Translation("empty")
		return http.StatusOK, Notice{Kind: "warning", Text: h.messages.T(locale, "empty_joke", nil)}
	case errors.Is(err, domain.ErrRateLimited):
		h.metrics.Translation("rate_limited")
		return http.StatusTooManyRequests, Notice{Kind: "error", Text: h.messages.T(locale, "rate_limited", nil)}
	case errors.As(err, &svcErr):
		h.metrics.Translation("service_error")
		return http.StatusBadGateway, Notice{Kind: "error", Text: h.messages.T(locale, "service_error", map[string]any{
			"Status": svcErr.Status,
			"Body":   svcErr.Body,
		})}
	case errors.Is(err, domain.ErrParse):
		h.metrics.Translation("parse_error")
		return http.StatusBadGateway, Notice{Kind: "error", Text: h.messages.T(locale, "parse_error", nil)}
	default:
		h.metrics.Translation("transport_error")
		return http.StatusBadGateway, Notice{Kind: "error", Text: h.messages.T(locale, "transport_error", map[string]any{
			"Reason": err.Error(),
		})}
	}
}

func (h *Handler) authFailureNotice(locale, key string, err error) Notice {
	var authErr *domain.AuthError

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Notice{Kind: "error", Text: h.messages.T(locale, "invalid_credentials", nil)}
	case errors.As(err, &authErr):
		return Notice{Kind: "error", Text: h.messages.T(locale, key, map[string]any{"Reason": authErr.Message})}
	case errors.Is(err, domain.ErrTransport):
		return Notice{Kind: "error", Text: h.messages.T(locale, "transport_error", map[string]any{"Reason": err.Error()})}
	default:
		return Notice{Kind: "error", Text: h.messages.T(locale, key, map[string]any{"Reason": err.Error()})}
	}
}

func statusOfAuthErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}

func (h *Handler) translatorPage(email string, form TranslatorForm, notice *Notice, result *ResultView) TranslatorPage {
	return TranslatorPage{
		Email:          email,
		SourceCultures: domain.SourceCultures,
		TargetCultures: domain.TargetCultures,
		Languages:      domain.Languages,
		Form:           form,
		Notice:         notice,
		Result:         result,
	}
}

func sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// localeOf picks the UI locale: ?lang= first, then the lang cookie.
// This is the language of the page chrome, not of the translated joke.
func localeOf(c echo.Context) string {
	if lang := c.QueryParam("lang"); lang != "" {
		return lang
	}
	if cookie, err := c.Cookie("lang"); err == nil {
		return cookie.Value
	}
	return ""
}
