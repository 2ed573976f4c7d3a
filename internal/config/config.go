package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	Text     = "text/plain"
	Markdown = "text/markdown"
)

type Configuration struct {
	// Name of the wiki.
	Name string
	// Url is the instance's url. Canonical page URLs are built from it.
	Url  *url.URL
	Port uint16
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool
	// DbUrl is the path to the database file.
	DbUrl            string
	MigrationsFolder string
	// StaticDir is the directory on which the wiki's favicon, stylesheet, logo and other static files can be found.
	StaticDir string
	Language  string
	MediaType string
	// SessionKey signs the session cookie. It must be 32 bytes long.
	SessionKey string
	// RedisAddr, when set, makes the render cache shared through Redis instead of kept in memory.
	RedisAddr string
	// CacheTTL is how long a render stays in the render cache.
	CacheTTL time.Duration
	// CacheEntries bounds the in-memory render cache.
	CacheEntries int
	// CachePrintable allows printable renders into the cache.
	CachePrintable bool
	// CacheMaxAge is the Cache-Control max-age sent with ordinary page views.
	CacheMaxAge time.Duration
	// StaleMaxAge replaces CacheMaxAge when the page is served from a stale copy or a degraded render.
	StaleMaxAge time.Duration
	// RenderTimeout bounds a single render; renders that run out of time are reported as degraded.
	RenderTimeout time.Duration
	// DefaultRobotPolicy is the robots policy of current revisions, e.g. "index,follow".
	DefaultRobotPolicy string
	// ReadRequiresLogin makes the whole wiki private to logged in users.
	ReadRequiresLogin bool
	QueueWorkers      int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "Wiki")
	v.SetDefault("url", "http://localhost:8080")
	v.SetDefault("port", 8080)
	v.SetDefault("db_url", "file:wiki.db?_foreign_keys=on")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("static_dir", "static")
	v.SetDefault("language", "en")
	v.SetDefault("media_type", Markdown)
	v.SetDefault("cache_ttl", 24*time.Hour)
	v.SetDefault("cache_entries", 1000)
	v.SetDefault("cache_max_age", 5*time.Minute)
	v.SetDefault("stale_max_age", 30*time.Second)
	v.SetDefault("render_timeout", 5*time.Second)
	v.SetDefault("default_robot_policy", "index,follow")
	v.SetDefault("queue_workers", 2)
}

// ReadConfig loads the configuration from pageview.yaml (or .toml, .json) in the working directory or
// /etc/pageview, overridden by PAGEVIEW_* environment variables. A missing file is not an error.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("pageview")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/pageview")
	v.SetEnvPrefix("pageview")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Configuration, error) {
	u, err := url.Parse(v.GetString("url"))
	if err != nil {
		return Configuration{}, fmt.Errorf("invalid url %q: %w", v.GetString("url"), err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Configuration{}, fmt.Errorf("url %q must be absolute", v.GetString("url"))
	}

	port := v.GetUint("port")
	if port == 0 || port > 65535 {
		return Configuration{}, fmt.Errorf("invalid port %d", port)
	}

	return Configuration{
		Name:               v.GetString("name"),
		Url:                u,
		Port:               uint16(port),
		Debug:              v.GetBool("debug"),
		DbUrl:              v.GetString("db_url"),
		MigrationsFolder:   v.GetString("migrations_folder"),
		StaticDir:          v.GetString("static_dir"),
		Language:           v.GetString("language"),
		MediaType:          v.GetString("media_type"),
		SessionKey:         v.GetString("session_key"),
		RedisAddr:          v.GetString("redis_addr"),
		CacheTTL:           v.GetDuration("cache_ttl"),
		CacheEntries:       v.GetInt("cache_entries"),
		CachePrintable:     v.GetBool("cache_printable"),
		CacheMaxAge:        v.GetDuration("cache_max_age"),
		StaleMaxAge:        v.GetDuration("stale_max_age"),
		RenderTimeout:      v.GetDuration("render_timeout"),
		DefaultRobotPolicy: v.GetString("default_robot_policy"),
		ReadRequiresLogin:  v.GetBool("read_requires_login"),
		QueueWorkers:       v.GetInt("queue_workers"),
	}, nil
}
