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
	"strings"

	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
)

type tokenVerifier interface {
	VerifyToken(tokenString string) (*accesscontrol.Claims, error)
}

func bearerToken(ctx shared.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// SessionMiddleware rejects the request unless it carries a valid bearer
// token and stores the resulting session on the context.
func SessionMiddleware(verifier tokenVerifier) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			token := bearerToken(ctx)
			if token == "" {
				return echo.NewHTTPError(401, "access token required")
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				if errors.Is(err, accesscontrol.ErrExpiredToken) {
					return echo.NewHTTPError(401, "token expired").WithInternal(err)
				}
				return echo.NewHTTPError(401, "invalid token").WithInternal(err)
			}

			shared.SetSession(ctx, accesscontrol.SessionFromClaims(claims))
			return next(ctx)
		}
	}
}
