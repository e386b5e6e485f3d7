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

package router

import (
	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/middlewares"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIRouter struct {
	*echo.Group
}

func NewAPIRouter(srv *echo.Echo, db shared.DB, pool *pgxpool.Pool) APIRouter {
	apiRouter := srv.Group("/api")

	apiRouter.GET("/health", health(db, pool))
	apiRouter.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return APIRouter{Group: apiRouter}
}

// SessionRouter groups every route that needs a bearer token. It has no
// prefix of its own.
type SessionRouter struct {
	*echo.Group
}

func NewSessionRouter(apiRouter APIRouter, jwtManager *accesscontrol.JWTManager) SessionRouter {
	return SessionRouter{Group: apiRouter.Group.Group("", middlewares.SessionMiddleware(jwtManager))}
}
