package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	pageTemplate   = parse("page.html")
	loginTemplate  = parse("login.html")
	signupTemplate = parse("signup.html")
	errorTemplate  = parse("error.html")
)

func parse(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

type pageData struct {
	Wiki     string
	Title    string
	Session  Session
	LoggedIn bool
	Error    string
	Form     formData
	Article  *articleData
}

type formData struct {
	Action string
	Prev   string
}

type articleData struct {
	Kind         string
	Banner       *bannerData
	OldRevision  *oldRevisionData
	Content      template.HTML
	Below        template.HTML
	Message      string
	Printable    bool
	EditAction   string
	DeleteAction string
	CanDelete    bool
}

type bannerData struct {
	Class    string
	Message  string
	Link     string
	LinkText string
}

type oldRevisionData struct {
	ID        int64
	Author    string
	Timestamp string
	Comment   string
	Previous  string
	Next      string
	Current   string
	Diff      string
}

// render executes the template into a buffer first, so that a failing template still produces a clean
// error response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, t *template.Template, data pageData) {
	data.Wiki = h.Config.Name
	data.Session, data.LoggedIn = GetSession(r.Context())

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Error().Err(err).Str("template", t.Name()).Msg("failed to render template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Cache-Control", "no-store")
	h.render(w, r, status, errorTemplate, pageData{
		Title: http.StatusText(status),
		Error: message,
	})
}
