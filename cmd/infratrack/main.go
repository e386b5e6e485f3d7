// Copyright (C) 2025 infratrack-dev
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/controllers"
	"github.com/infratrack-dev/infratrack/daemons"
	"github.com/infratrack-dev/infratrack/database"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/middlewares"
	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/pubsub"
	"github.com/infratrack-dev/infratrack/router"
	"github.com/infratrack-dev/infratrack/services"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/storage"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

var release string // filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()
	if release != "" {
		shared.Version = release
	}

	if err := monitoring.InitSentry(shared.Version); err != nil {
		slog.Error("could not init error tracking", "err", err)
	}
	defer func() {
		if err := recover(); err != nil {
			sentry.CurrentHub().Recover(err)
			sentry.Flush(5 * time.Second)
			panic(err)
		}
	}()

	shutdownTracing, err := monitoring.InitTracing(context.Background(), shared.Version)
	if err != nil {
		slog.Warn("could not init tracing", "err", err)
	}

	cfg := shared.GetConfig()

	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	db := database.NewGormDB(pool)

	if !cfg.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(pubsub.NewBroker),
		fx.Provide(storage.NewObjectStorage),
		fx.Provide(accesscontrol.NewJWTManagerFromConfig),
		fx.Provide(fx.Annotate(accesscontrol.NewCasbinRBAC, fx.As(new(shared.AccessControl)))),
		fx.Provide(middlewares.Server),
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,
		router.Invoke,
		// hooks stop in reverse order, the server goes down before the pool
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{OnStop: func(ctx context.Context) error {
				pool.Close()
				return shutdownTracing(ctx)
			}})
		}),
		daemons.Module,
		fx.Invoke(serve),
	).Run()
}

func serve(lc fx.Lifecycle, server *echo.Echo, cfg shared.Config) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				slog.Info("starting server", "port", cfg.Port, "version", shared.Version)
				if err := server.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped", "err", err)
					os.Exit(1)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
