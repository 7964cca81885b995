package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-poke-keeper/internal/config"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
)

// appInfoService serves build metadata for GET /version. The version is fixed
// at startup from config.App.Version (APP_VERSION or the JSON config).
type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when the configured
// version is empty or blank; the server refuses to start without one.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("creating app info service")

	return &appInfoService{
		version: version,
		logger:  log,
	}, nil
}

// GetAppVersion never blocks and ignores ctx cancellation.
func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
