package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gymgate/internal/config"
	"gymgate/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg config.AppConfig) *gorm.DB {
	return infra.InitSqlite(cfg.SqlitePath)
}
