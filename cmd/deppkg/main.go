// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/deppkg/client"
	"github.com/l3montree-dev/deppkg/controllers"
	"github.com/l3montree-dev/deppkg/daemons"
	"github.com/l3montree-dev/deppkg/database"
	"github.com/l3montree-dev/deppkg/database/repositories"
	"github.com/l3montree-dev/deppkg/middlewares"
	"github.com/l3montree-dev/deppkg/monitoring"
	"github.com/l3montree-dev/deppkg/origin"
	"github.com/l3montree-dev/deppkg/router"
	"github.com/l3montree-dev/deppkg/services"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/l3montree-dev/deppkg/utils"
	"github.com/l3montree-dev/deppkg/vulndb"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck

	cfg, err := shared.ReadConfig()
	shared.InitLogger(shared.ParseLogLevel(cfg.LogLevel))
	if err != nil {
		slog.Error("could not read configuration", "err", err)
		os.Exit(1)
	}

	flush, err := monitoring.InitErrorTracking(release)
	if err != nil {
		slog.Error("could not init error tracking", "err", err)
		os.Exit(1)
	}
	defer flush()
	defer func() {
		if err := recover(); err != nil {
			sentry.CurrentHub().Recover(err)
			sentry.Flush(time.Second * 5)
			panic(err)
		}
	}()

	shutdownTracing, err := monitoring.InitTracing(context.Background(), shared.ServiceName)
	if err != nil {
		slog.Error("could not init tracing", "err", err)
		os.Exit(1)
	}
	defer shutdownTracing(context.Background()) // nolint: errcheck

	pool, db, err := database.NewConnection(database.GetPoolConfigFromEnv())
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if !cfg.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(middlewares.Server),
		fx.Provide(middlewares.NewCatalogURLDetector),
		fx.Provide(fx.Annotate(client.NewCatalogClient, fx.As(new(shared.CatalogClient)))),
		fx.Provide(fx.Annotate(client.NewHTTPUserValidator, fx.As(new(shared.UserValidator)))),
		fx.Provide(fx.Annotate(origin.NewResolverFromConfig, fx.As(new(shared.OriginResolver)))),
		fx.Provide(newSynchronizer),
		vulndb.Module,
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,
		daemons.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.RootRouter) {}),
		fx.Invoke(func(router.MSAPIRouter) {}),
		fx.Invoke(startServer),
	).Run()
}

// newSynchronizer bounds the number of concurrently running background scans.
// On shutdown the scans already accepted are awaited.
func newSynchronizer(lc fx.Lifecycle, cfg shared.Config) utils.FireAndForgetSynchronizer {
	synchronizer := utils.NewFireAndForgetSynchronizer(cfg.ScanConcurrency, monitoring.RecoverAndAlert)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			slog.Info("waiting for background scans to finish")
			synchronizer.Wait()
			return nil
		},
	})
	return synchronizer
}

func startServer(lc fx.Lifecycle, server *echo.Echo, cfg shared.Config, pool *pgxpool.Pool) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				slog.Info("starting server", "port", cfg.Port)
				if err := server.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("failed to start server", "err", err)
					os.Exit(1)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer pool.Close()
			return server.Shutdown(ctx)
		},
	})
}
