package service

import (
	"github.com/MKhiriev/eye-test-server/internal/config"
	"github.com/MKhiriev/eye-test-server/internal/logger"
	"github.com/MKhiriev/eye-test-server/internal/store"
)

// Services aggregates all application services, wired once at startup and
// passed by reference into the transport layer.
type Services struct {
	AuthService   AuthService
	ResultService ResultService
}

// NewServices constructs every service on top of the given repositories and
// configuration.
func NewServices(repositories *store.Repositories, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(repositories.UserRepository, cfg, logger),
		ResultService: NewResultService(repositories.ResultRepository, logger),
	}
}
