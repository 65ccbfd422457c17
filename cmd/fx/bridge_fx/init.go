package bridge_fx

import (
	"go.uber.org/fx"
	"gymgate/internal/device"
	"gymgate/internal/services"
)

var Module = fx.Provide(provideBridgeService)

func provideBridgeService(deviceClient device.Client, memberService services.MemberServiceInterface) services.BridgeServiceInterface {
	return services.NewBridgeService(deviceClient, memberService)
}
