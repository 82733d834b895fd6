package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ikjoobang/ppt-designer/internal/api"
	questionnaireapi "github.com/ikjoobang/ppt-designer/internal/api/questionnaire"
	recommendationapi "github.com/ikjoobang/ppt-designer/internal/api/recommendation"
	"github.com/ikjoobang/ppt-designer/internal/catalog"
	"github.com/ikjoobang/ppt-designer/internal/config"
	"github.com/ikjoobang/ppt-designer/internal/pkg/formatter"
	"github.com/ikjoobang/ppt-designer/internal/pkg/metrics"
	"github.com/ikjoobang/ppt-designer/internal/store"
	"github.com/ikjoobang/ppt-designer/internal/usecase/advisor"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Load the questionnaire and template catalog
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("Catalog loaded",
		zap.String("path", cfg.CatalogPath),
		zap.Int("questions", len(cat.Questions())),
		zap.Int("templates", len(cat.Templates())),
	)
	if len(cat.Templates()) == 0 {
		logger.Warn("Template catalog is empty, recommendation requests will fail until templates are added")
	}

	// Initialize metrics
	m := metrics.New()

	// Initialize session response store
	responseStore := store.NewMemoryStore(cat, cfg.SessionCfg.TTL, cfg.SessionCfg.CleanupInterval)
	logger.Info("Response store initialized",
		zap.Duration("session_ttl", cfg.SessionCfg.TTL),
		zap.Duration("cleanup_interval", cfg.SessionCfg.CleanupInterval),
	)

	// Initialize use cases
	advisorUC := advisor.NewUsecase(cat, responseStore, formatter.NewFactory(), m)
	logger.Info("Use cases initialized")

	// Setup API handlers
	questionnaireHandler := questionnaireapi.NewHandler(advisorUC)
	recommendationHandler := recommendationapi.NewHandler(advisorUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(questionnaireHandler, recommendationHandler, m, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}
