package config_fx

import (
	"go.uber.org/fx"
	"gymgate/internal/config"
)

var Module = fx.Provide(
	provideAppConfig, provideStore, provideSession)

func provideAppConfig() config.AppConfig {
	return config.LoadApp()
}

func provideStore(cfg config.AppConfig) (*config.Store, error) {
	return config.NewStore(cfg.ConfigPath)
}

func provideSession(store *config.Store) *config.Session {
	return config.NewSession(store)
}
