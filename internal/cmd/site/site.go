// Package site parses site command flags and launches the site service.
package site

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/voraglobal/internal/content"
	entrypoint "github.com/louisbranch/voraglobal/internal/platform/cmd"
	"github.com/louisbranch/voraglobal/internal/platform/timeouts"
	sitesvc "github.com/louisbranch/voraglobal/internal/services/site"
	"github.com/louisbranch/voraglobal/internal/services/site/carousel"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr            string        `env:"SITE_HTTP_ADDR" envDefault:"localhost:8090"`
	AssetBaseURL        string        `env:"SITE_ASSET_BASE_URL"`
	ImagesDir           string        `env:"SITE_IMAGES_DIR"`
	ContentFile         string        `env:"SITE_CONTENT_FILE"`
	RotationInterval    time.Duration `env:"SITE_ROTATION_INTERVAL"`
	MaxCarouselViews    int           `env:"SITE_MAX_CAROUSEL_VIEWS" envDefault:"1000"`
	CarouselIdleTTL     time.Duration `env:"SITE_CAROUSEL_IDLE_TTL" envDefault:"2m"`
	ContactDelay        time.Duration `env:"SITE_CONTACT_DELAY" envDefault:"2s"`
	TrustForwardedProto bool          `env:"SITE_TRUST_FORWARDED_PROTO"`
	LogLevel            string        `env:"SITE_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for content images")
	fs.StringVar(&cfg.ImagesDir, "images-dir", cfg.ImagesDir, "Directory served under /static/images/")
	fs.StringVar(&cfg.ContentFile, "content-file", cfg.ContentFile, "Content YAML file to load and watch instead of the embedded copy")
	fs.DurationVar(&cfg.RotationInterval, "rotation-interval", cfg.RotationInterval, "Testimonial auto-advance interval; overrides content")
	fs.IntVar(&cfg.MaxCarouselViews, "max-carousel-views", cfg.MaxCarouselViews, "Maximum live carousel views")
	fs.DurationVar(&cfg.CarouselIdleTTL, "carousel-idle-ttl", cfg.CarouselIdleTTL, "How long an unconnected carousel view is kept")
	fs.DurationVar(&cfg.ContactDelay, "contact-delay", cfg.ContactDelay, "Simulated contact submission latency")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto for origin checks")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("http address is required")
	}
	if c.RotationInterval < 0 {
		return fmt.Errorf("rotation interval must not be negative")
	}
	if c.MaxCarouselViews <= 0 {
		return fmt.Errorf("max carousel views must be positive")
	}
	if c.CarouselIdleTTL <= 0 {
		return fmt.Errorf("carousel idle ttl must be positive")
	}
	if c.ContactDelay < 0 {
		return fmt.Errorf("contact delay must not be negative")
	}
	return nil
}

// Run starts the site service and blocks until ctx is cancelled or a
// component fails.
func Run(ctx context.Context, cfg Config) error {
	logger, err := entrypoint.NewLogger(entrypoint.ServiceSite, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSite, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return serve(ctx, cfg, logger)
	})
}

func serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	initial, err := loadContent(cfg.ContentFile)
	if err != nil {
		return err
	}
	store, err := content.NewStore(initial, logger.Named("content"))
	if err != nil {
		return err
	}
	registry, err := carousel.New(carousel.Config{
		Interval: rotationInterval(cfg, initial),
		MaxViews: cfg.MaxCarouselViews,
		IdleTTL:  cfg.CarouselIdleTTL,
		Logger:   logger.Named("carousel"),
	})
	if err != nil {
		return fmt.Errorf("create carousel registry: %w", err)
	}
	defer registry.Close()

	server, err := sitesvc.NewServer(ctx, sitesvc.Config{
		HTTPAddr:            cfg.HTTPAddr,
		AssetBaseURL:        cfg.AssetBaseURL,
		ImagesDir:           cfg.ImagesDir,
		Content:             store.Current,
		Carousels:           registry,
		ContactDelay:        cfg.ContactDelay,
		TrustForwardedProto: cfg.TrustForwardedProto,
		Logger:              logger,
		TracerProvider:      otel.GetTracerProvider(),
	})
	if err != nil {
		return err
	}
	defer server.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.ListenAndServe(gctx) })
	g.Go(func() error { return registry.Run(gctx) })
	if cfg.ContentFile != "" {
		g.Go(func() error {
			return store.Watch(gctx, cfg.ContentFile, func(site *content.Site) {
				if cfg.RotationInterval > 0 {
					return
				}
				if err := registry.SetInterval(site.Carousel.Interval); err != nil {
					logger.Warn("apply reloaded interval", zap.Error(err))
				}
			})
		})
	}
	logger.Info("site started",
		zap.String("addr", cfg.HTTPAddr),
		zap.Duration("rotation_interval", registry.Interval()),
		zap.Bool("content_override", cfg.ContentFile != ""),
		zap.Duration("stream_heartbeat", timeouts.StreamHeartbeat),
	)
	return g.Wait()
}

func loadContent(path string) (*content.Site, error) {
	if strings.TrimSpace(path) == "" {
		return content.LoadEmbedded()
	}
	return content.LoadFile(path)
}

// rotationInterval prefers the configured override over the content file.
func rotationInterval(cfg Config, site *content.Site) time.Duration {
	if cfg.RotationInterval > 0 {
		return cfg.RotationInterval
	}
	return site.Carousel.Interval
}
