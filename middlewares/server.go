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

package middlewares

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

// multipart framing on top of the largest accepted upload
const multipartOverhead = 1 << 20

func registerMiddlewares(e *echo.Echo, cfg shared.Config) {
	e.Use(otelecho.Middleware(monitoring.ServiceName, otelecho.WithSkipper(isHealthCheck)))
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     cfg.CorsOrigins,
			AllowHeaders:     append(middleware.DefaultCORSConfig.AllowHeaders, echo.HeaderAuthorization),
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: !isWildcard(cfg.CorsOrigins),
		},
	))
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", cfg.UploadMaxSize+multipartOverhead)))

	e.Use(logger())
	e.Use(requestDuration())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = ErrorHandler
}

func isWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// ErrorHandler renders every error as a failed envelope. The error is
// logged here once so controllers do not have to.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			message = m
		case error:
			message = m.Error()
		default:
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		monitoring.Alert(fmt.Sprintf("%s %s failed", ctx.Request().Method, ctx.Path()), err)
	} else {
		slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
	}

	if ctx.Request().Method == http.MethodHead {
		if err := ctx.NoContent(code); err != nil {
			slog.Error("could not send error response", "error", err)
		}
		return
	}

	if err := ctx.JSON(code, shared.Fail(message)); err != nil {
		slog.Error("could not send error response", "error", err)
	}
}

func Server(cfg shared.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg)
	return e
}
