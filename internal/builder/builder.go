package builder

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dongycare/checker-backend/internal/api"
	analyzeapi "github.com/dongycare/checker-backend/internal/api/analyze"
	"github.com/dongycare/checker-backend/internal/config"
	"github.com/dongycare/checker-backend/internal/integration/gemini"
	"github.com/dongycare/checker-backend/internal/pkg/formatter"
	"github.com/dongycare/checker-backend/internal/pkg/validator"
	"github.com/dongycare/checker-backend/internal/usecase/analyze"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize the AI provider connector (with mock support)
	var provider analyze.GeminiConnector
	if cfg.EnableMocks {
		logger.Info("Using mock Gemini connector")
		provider = gemini.NewMockConnector(logger)
	} else {
		if cfg.GeminiCfg.APIKey == "" {
			logger.Warn("GEMINI_API_KEY is not set, analysis requests will fail")
		}
		provider = gemini.NewConnector(cfg.GeminiCfg, logger)
	}

	analyzeUC := analyze.NewUsecase(provider, logger)
	logger.Info("Use cases initialized")

	handler := analyzeapi.NewHandler(
		analyzeUC,
		validator.NewValidator(cfg.UploadCfg),
		formatter.NewFactory(),
		cfg.SymptomGroups,
	)

	router := api.SetupRouter(cfg, handler, logger)
	logger.Info("HTTP router configured")

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

func setupLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}
