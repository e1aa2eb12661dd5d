package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	configvalidator "github.com/doeshing/movierec-go/internal/application/config"
	"github.com/doeshing/movierec-go/internal/application/doctor"
	"github.com/doeshing/movierec-go/internal/application/recommend"
	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/infrastructure/ai"
	"github.com/doeshing/movierec-go/internal/infrastructure/config"
	"github.com/doeshing/movierec-go/internal/infrastructure/history"
	"github.com/doeshing/movierec-go/internal/infrastructure/httpapi"
	"github.com/doeshing/movierec-go/internal/infrastructure/metrics"
	"github.com/doeshing/movierec-go/internal/pkg/logger"
)

// Options are the process-level switches that shape the container.
type Options struct {
	ConfigPath string
	Verbose    bool
	// HTTPClient overrides the client used for generative calls.
	HTTPClient *http.Client
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	Logger        *logger.ZeroLogger
	Metrics       *metrics.Collector
	HistoryStore  *history.SQLiteStore
	Recorder      *history.AsyncRecorder
	Resolver      *recommend.Service
	Prober        *ai.Prober
	DoctorService *doctor.Service
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := configvalidator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgLoader.Path(), err)
	}

	log := logger.New(logger.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: opts.Verbose,
	})
	collector := metrics.New()

	store, err := history.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, err
	}
	recorder := history.NewAsyncRecorder(store, log, history.RecorderOptions{
		QueueSize: cfg.Storage.QueueSize,
		Metrics:   collector,
	})

	fallback := ai.NewCuratedRecommender()
	resolver := &recommend.Service{
		Generative:     ai.NewOpenAIRecommender(cfg.Generative, opts.HTTPClient),
		Fallback:       fallback,
		Recorder:       recorder,
		Metrics:        collector,
		Logger:         log,
		ExpectedTitles: cfg.Generative.Titles(),
	}
	prober := ai.NewProber(cfg.Generative, opts.HTTPClient)

	if !cfg.Generative.HasCredential() {
		log.Warn("generative credential missing, all requests will use the fallback", map[string]interface{}{
			"env": cfg.Generative.AuthEnvVar,
		})
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Logger:       log,
		Metrics:      collector,
		HistoryStore: store,
		Recorder:     recorder,
		Resolver:     resolver,
		Prober:       prober,
		DoctorService: &doctor.Service{
			ConfigProvider: cfgLoader,
			Database:       store,
			Prober:         prober,
			Fallback:       fallback,
		},
	}, nil
}

// HTTPHandler builds the API router.
func (c *Container) HTTPHandler() http.Handler {
	origins := c.Config.Server.CORSOrigins
	if c.Config.Server.AllowsAnyOrigin() {
		origins = []string{"*"}
	}
	handler := httpapi.NewHandler(c.Resolver, c.Prober, c.Logger)
	return httpapi.NewRouter(handler, httpapi.RouterOptions{
		CORSOrigins:    origins,
		MetricsHandler: c.Metrics.Handler(),
		Logger:         c.Logger,
	})
}

// Close drains pending log writes and closes the store. If the drain does
// not finish in time the store stays open, since the worker may still be
// writing to it.
func (c *Container) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if c.Recorder != nil {
		if err := c.Recorder.Close(ctx); err != nil {
			return fmt.Errorf("drain request log: %w", err)
		}
	}
	if c.HistoryStore != nil {
		if err := c.HistoryStore.Close(); err != nil {
			return fmt.Errorf("close request log: %w", err)
		}
	}
	return nil
}
