package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gymgate/internal/config"
	"gymgate/internal/repositories"
	"gymgate/internal/services"
)

var Module = fx.Provide(
	provideAdminService, provideAdminRepo)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAdminService(adminRepo repositories.AdminRepository, session *config.Session) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo, session)
}
