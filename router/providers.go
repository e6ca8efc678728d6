package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewRootRouter),
	fx.Provide(NewMSAPIRouter),
)
