package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(RequestID, Instrument(h), SessionMiddleware(h))

	r.Get(LoginRoute, GetLogin(h))
	r.Post(LoginRoute, Login(h))
	r.Get(SignUpRoute, GetSignup(h))
	r.Post(SignUpRoute, SignUp(h))
	r.Get(LogoutRoute, Logout(h))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, ArticlesPath+"/"+MainPage, http.StatusFound)
	})

	r.Route(ArticlesPath+"/{title}", func(r chi.Router) {
		r.Get("/", ViewPage(h))
		r.With(authenticated).Post("/", PostArticle(h))
		r.With(authenticated).Post("/delete", DeletePage(h))
	})

	if h.Metrics != nil {
		r.Handle(MetricsRoute, h.Metrics.Handler())
	}

	h.MountStaticRoutes(r)
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	wd, _ := os.Getwd()
	wd = filepath.Join(wd, h.Config.StaticDir)
	f := os.DirFS(wd)

	fileServer := http.FileServer(http.FS(f))
	r.Handle("/static/{name}", http.StripPrefix(
		"/static/",
		fileServer,
	))
}
