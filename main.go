package main

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/cache/memory"
	"github.com/sidereusnuntius/pageview/internal/cache/rediscache"
	"github.com/sidereusnuntius/pageview/internal/config"
	db "github.com/sidereusnuntius/pageview/internal/db/impl"
	"github.com/sidereusnuntius/pageview/internal/diff"
	"github.com/sidereusnuntius/pageview/internal/initialization"
	"github.com/sidereusnuntius/pageview/internal/metrics"
	"github.com/sidereusnuntius/pageview/internal/queue"
	"github.com/sidereusnuntius/pageview/internal/render"
	service "github.com/sidereusnuntius/pageview/internal/service/impl"
	"github.com/sidereusnuntius/pageview/internal/view"
	"github.com/sidereusnuntius/pageview/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

const devSessionKey = "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4"

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	d, err := initialization.OpenDB(cfg.DbUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	log.Info().Msg("database connection established")

	if err = initialization.SetupDB(d, cfg.MigrationsFolder, "pageview"); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, err := newCache(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up render cache")
	}

	client, err := initialization.InitQueue(&cfg, d)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to set up the job queue")
	}
	purger := queue.New(ctx, client, cache)

	store := db.New(cfg, d)
	svc := service.New(cfg, store, purger)

	if len(os.Args) > 1 {
		if err = runCommand(ctx, svc, os.Args[1], os.Args[2:]); err != nil {
			log.Fatal().Err(err).Str("command", os.Args[1]).Send()
		}
		return
	}

	m := metrics.New()
	collapse := render.NewCollapse(render.New(cfg, store), cache, nil)
	controller := view.New(cfg, view.Collaborators{
		Store:    store,
		Pages:    store,
		Cache:    cache,
		Renderer: collapse,
		Diff:     diff.New(store),
		Purger:   purger,
		Recorder: m,
	})
	collapse.Cacheable = controller.Selector.Storable

	sessionKey := cfg.SessionKey
	if sessionKey == "" {
		log.Warn().Msg("no session key configured; using the development key")
		sessionKey = devSessionKey
	}
	gob.Register(web.Session{})
	manager := scs.NewCookieManager(sessionKey)

	handler := web.New(&cfg, svc, manager, controller, m)
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	handler.Mount(router)

	s := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdown); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	log.Info().Uint16("port", cfg.Port).Str("url", cfg.Url.String()).Msg("started server")
	if err = s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Send()
	}
}

func newCache(cfg config.Configuration) (view.RenderCache, error) {
	if cfg.RedisAddr == "" {
		return memory.New(cfg.CacheEntries, cfg.CacheTTL), nil
	}

	client, err := rediscache.NewClient(cfg.RedisAddr)
	if err != nil {
		return nil, err
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("using redis render cache")
	return rediscache.New(client, cfg.CacheTTL), nil
}
