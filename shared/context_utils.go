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

package shared

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/utils"
)

type AuthSession interface {
	GetUserID() uuid.UUID
	GetEmail() string
	GetRole() models.UserRole
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func HasSession(ctx Context) bool {
	_, ok := ctx.Get("session").(AuthSession)
	return ok
}

func GetUUIDParam(ctx Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(SanitizeParam(ctx.Param(name)))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

func GetPageInfo(ctx Context) PageInfo {
	page, err := strconv.Atoi(ctx.QueryParam("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	switch {
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	case limit <= 0:
		limit = DefaultPageLimit
	}

	if page > maxPage(limit) {
		page = maxPage(limit)
	}

	return PageInfo{
		Page:  page,
		Limit: limit,
	}
}

// GetBoolQuery returns nil when the parameter is absent or not a boolean.
func GetBoolQuery(ctx Context, name string) *bool {
	v, err := strconv.ParseBool(ctx.QueryParam(name))
	if err != nil {
		return nil
	}
	return &v
}

func GetUUIDQuery(ctx Context, name string) (*uuid.UUID, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &id, nil
}

// InMemoryFilter holds the filters which are applied to an already fetched page.
type InMemoryFilter struct {
	Search         string
	LGAs           []string
	Specialization []string
}

func (f InMemoryFilter) IsEmpty() bool {
	return f.Search == "" && len(f.LGAs) == 0 && len(f.Specialization) == 0
}

// MatchesSearch reports whether any of the fields contains the search
// term, ignoring case. An empty term matches everything.
func (f InMemoryFilter) MatchesSearch(fields ...string) bool {
	if f.Search == "" {
		return true
	}
	for _, field := range fields {
		if utils.ContainsInsensitive(field, f.Search) {
			return true
		}
	}
	return false
}

func (f InMemoryFilter) MatchesLGA(lgas []string) bool {
	return len(f.LGAs) == 0 || models.ContainsAnyFold(lgas, f.LGAs)
}

func (f InMemoryFilter) MatchesSpecialization(specialization []string) bool {
	return len(f.Specialization) == 0 || models.ContainsAnyFold(specialization, f.Specialization)
}

func GetInMemoryFilter(ctx Context) InMemoryFilter {
	return InMemoryFilter{
		Search:         ctx.QueryParam("search"),
		LGAs:           utils.SplitCommaSeparated(ctx.QueryParam("lga")),
		Specialization: utils.SplitCommaSeparated(ctx.QueryParam("specialization")),
	}
}
