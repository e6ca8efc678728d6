package vulndb

import (
	"github.com/l3montree-dev/deppkg/shared"
	"go.uber.org/fx"
)

var Module = fx.Module("vulndb",
	fx.Provide(fx.Annotate(NewOSVService, fx.As(new(shared.OSVService)))),
	fx.Provide(fx.Annotate(NewSafetyDBService, fx.As(new(shared.SafetyDBService)))),
)
