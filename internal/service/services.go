package service

import (
	"github.com/MKhiriev/hero-api/internal/config"
	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/store"
	"github.com/MKhiriev/hero-api/models"
)

type Services struct {
	AuthService   AuthService
	HeroService   HeroService
	TeamService   TeamService
	HealthService HealthService

	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg, logger)),
		HeroService:   NewHeroValidationService().Wrap(NewHeroService(storages.HeroRepository, logger)),
		TeamService:   NewTeamValidationService().Wrap(NewTeamService(storages.TeamRepository, logger)),
		HealthService: NewHealthService(storages.HealthChecker),

		AppInfoService: NewAppInfoService(buildInfo),
	}
}
