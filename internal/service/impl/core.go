package core

import (
	"github.com/sidereusnuntius/pageview/internal/config"
	"github.com/sidereusnuntius/pageview/internal/db"
	"github.com/sidereusnuntius/pageview/internal/service"
	"github.com/sidereusnuntius/pageview/internal/view"
)

const BcryptCost = 10

type AppService struct {
	Config config.Configuration
	DB     db.DB
	// Purger drops the cached renders of edited pages. It may be nil.
	Purger view.Purger
}

func New(config config.Configuration, db db.DB, purger view.Purger) service.Service {
	return &AppService{
		Config: config,
		DB:     db,
		Purger: purger,
	}
}
