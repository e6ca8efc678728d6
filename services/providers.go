package services

import (
	"context"

	"github.com/l3montree-dev/deppkg/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewConfigService, fx.As(new(shared.ConfigService)))),
	fx.Provide(fx.Annotate(NewDatabaseLeaderElector, fx.As(new(shared.LeaderElector)))),
	fx.Provide(fx.Annotate(NewComponentIdentityService, fx.As(new(shared.ComponentIdentityService)))),
	fx.Provide(fx.Annotate(NewVulnScanService, fx.As(new(shared.VulnScanService)))),
	fx.Provide(fx.Annotate(NewSBOMService, fx.As(new(shared.SBOMService)))),
	fx.Invoke(func(lc fx.Lifecycle, leaderElector shared.LeaderElector) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				leaderElector.Start()
				return nil
			},
			OnStop: func(context.Context) error {
				leaderElector.Stop()
				return nil
			},
		})
	}),
)
