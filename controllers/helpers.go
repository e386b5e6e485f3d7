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

package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
)

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return nil
}

func idParam(ctx shared.Context, name string) (uuid.UUID, error) {
	id, err := shared.GetUUIDParam(ctx, name)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}
	return id, nil
}

func uuidQuery(ctx shared.Context, name string) (*uuid.UUID, error) {
	id, err := shared.GetUUIDQuery(ctx, name)
	if err != nil {
		return nil, echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}
	return id, nil
}

// readError maps a failed single-record read to 404 or 500.
func readError(err error, entity string) error {
	if repositories.IsNotFound(err) {
		return echo.NewHTTPError(404, entity+" not found").WithInternal(err)
	}
	return echo.NewHTTPError(500, "could not fetch "+entity).WithInternal(err)
}

func deleteError(err error, entity string) error {
	switch {
	case repositories.IsNotFound(err):
		return echo.NewHTTPError(404, entity+" not found").WithInternal(err)
	case database.IsForeignKeyError(err):
		return echo.NewHTTPError(409, entity+" is still referenced by other records").WithInternal(err)
	}
	return echo.NewHTTPError(500, "could not delete "+entity).WithInternal(err)
}

// enumQuery returns nil for an absent parameter and a 400 for values
// outside of the allowed set.
func enumQuery[T ~string](ctx shared.Context, name string, allowed []T) (*T, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	for _, a := range allowed {
		if string(a) == raw {
			return &a, nil
		}
	}
	return nil, echo.NewHTTPError(400, fmt.Sprintf("invalid %s: %s", name, raw))
}
