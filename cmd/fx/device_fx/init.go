package device_fx

import (
	"go.uber.org/fx"
	"gymgate/internal/config"
	"gymgate/internal/device"
)

var Module = fx.Provide(provideDeviceClient)

func provideDeviceClient(cfg config.AppConfig) device.Client {
	return device.NewClient(device.Config{
		BaseURL: cfg.DeviceBaseURL,
		Timeout: cfg.DeviceTimeout,
		Retries: cfg.DeviceRetries,
	})
}
