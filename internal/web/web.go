package web

import (
	"github.com/alexedwards/scs"
	"github.com/sidereusnuntius/pageview/internal/config"
	"github.com/sidereusnuntius/pageview/internal/metrics"
	"github.com/sidereusnuntius/pageview/internal/service"
	"github.com/sidereusnuntius/pageview/internal/view"
)

const (
	LoginRoute   = "/login"
	LogoutRoute  = "/logout"
	SignUpRoute  = "/signup"
	MetricsRoute = "/metrics"
	ArticlesPath = "/" + view.ArticlesPath
	MainPage     = "Main_Page"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
	Controller     *view.Controller
	// Metrics may be nil, in which case nothing is measured and /metrics is not mounted.
	Metrics *metrics.Metrics
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager, controller *view.Controller, metrics *metrics.Metrics) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
		Controller:     controller,
		Metrics:        metrics,
	}
}
