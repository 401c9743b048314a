package common

import (
	"go.uber.org/zap"

	"github.com/dongycare/checker-backend/internal/config"
	pkgHTTP "github.com/dongycare/checker-backend/pkg/http"
)

// NewBaseConnector builds a JSON connector with the shared timeout and
// logging setup. Provider-specific options (auth headers) are appended.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger, extra ...pkgHTTP.Option) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	options := []pkgHTTP.Option{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnTimeout(cfg.ConnTimeout),
		pkgHTTP.WithKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
	}
	options = append(options, extra...)

	return pkgHTTP.NewConnector(connCfg, options...)
}
