// Package site hosts the browser-facing marketing site.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/voraglobal/internal/content"
	"github.com/louisbranch/voraglobal/internal/platform/timeouts"
	siteapp "github.com/louisbranch/voraglobal/internal/services/site/app"
	"github.com/louisbranch/voraglobal/internal/services/site/carousel"
	module "github.com/louisbranch/voraglobal/internal/services/site/module"
	"github.com/louisbranch/voraglobal/internal/services/site/modules"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/httpx"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/observability"
	"github.com/louisbranch/voraglobal/internal/services/site/platform/requestmeta"
	"github.com/louisbranch/voraglobal/internal/services/site/routepath"
	sitestatic "github.com/louisbranch/voraglobal/internal/services/site/static"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr string
	// AssetBaseURL prefixes relative image references.
	AssetBaseURL string
	// ImagesDir, when set, is served under /static/images/.
	ImagesDir           string
	Content             func() *content.Site
	Carousels           *carousel.Registry
	ContactDelay        time.Duration
	TrustForwardedProto bool
	Now                 func() time.Time
	Logger              *zap.Logger
	TracerProvider      trace.TracerProvider
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler from the default modules.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Content == nil {
		return nil, errors.New("content source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	provider := cfg.TracerProvider
	if provider == nil {
		provider = noop.NewTracerProvider()
	}
	deps := module.Dependencies{
		Content:      cfg.Content,
		Carousels:    cfg.Carousels,
		AssetBaseURL: cfg.AssetBaseURL,
		ContactDelay: cfg.ContactDelay,
		Now:          cfg.Now,
		Logger:       logger,
	}
	h, err := siteapp.BuildRootHandler(siteapp.Config{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
		SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	if dir := strings.TrimSpace(cfg.ImagesDir); dir != "" {
		rootMux.Handle(routepath.StaticPrefix+"images/", http.StripPrefix(routepath.StaticPrefix+"images/", http.FileServer(http.Dir(dir))))
	}
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(sitestatic.FS))))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.Tracing(provider),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          zap.NewStdLog(logger),
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("site listening", zap.String("addr", s.httpAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
