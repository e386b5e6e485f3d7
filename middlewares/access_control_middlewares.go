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
	"log/slog"
	"slices"

	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
)

// RoleMiddleware only lets sessions with one of the given roles pass.
func RoleMiddleware(roles ...models.UserRole) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			if !shared.HasSession(ctx) {
				return echo.NewHTTPError(401, "access token required")
			}

			role := shared.GetSession(ctx).GetRole()
			if !slices.Contains(roles, role) {
				slog.Warn("role not allowed", "role", role, "allowed", roles, "path", ctx.Path())
				return echo.NewHTTPError(403, "insufficient permissions")
			}
			return next(ctx)
		}
	}
}

// NeedsPermission checks the role of the current session against the
// permission matrix.
func NeedsPermission(rbac shared.AccessControl) shared.RBACMiddleware {
	return func(obj shared.Object, act shared.Action) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(ctx shared.Context) error {
				if !shared.HasSession(ctx) {
					return echo.NewHTTPError(401, "access token required")
				}
				role := shared.GetSession(ctx).GetRole()

				allowed, err := rbac.IsAllowed(role, obj, act)
				if err != nil {
					return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
				}

				if !allowed {
					slog.Warn("access denied", "role", role, "object", obj, "action", act)
					return echo.NewHTTPError(403, "insufficient permissions")
				}
				return next(ctx)
			}
		}
	}
}
