package service

import (
	"github.com/MKhiriev/fastm8/internal/config"
	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/MKhiriev/fastm8/internal/store"
)

type Services struct {
	AuthService    AuthService
	FastingService FastingService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		FastingService: NewFastingValidationService().Wrap(NewFastingService(storages.FastingSessionRepository, logger)),
	}
}
