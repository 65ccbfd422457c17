package controllers_fx

import (
	"go.uber.org/fx"
	"gymgate/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewBridgeController),
	fx.Provide(controllers.NewMemberController),
	fx.Provide(controllers.NewAdminController))
