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
	"strconv"

	"github.com/infratrack-dev/infratrack/shared"
)

type DashboardController struct {
	statisticsService shared.StatisticsService
}

func NewDashboardController(statisticsService shared.StatisticsService) *DashboardController {
	return &DashboardController{
		statisticsService: statisticsService,
	}
}

func (c *DashboardController) Stats(ctx shared.Context) error {
	stats, err := c.statisticsService.GetDashboardStats(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(stats))
}

func (c *DashboardController) LGAStats(ctx shared.Context) error {
	stats, err := c.statisticsService.GetLGAStats(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(stats))
}

func (c *DashboardController) RecentActivity(ctx shared.Context) error {
	// invalid values fall back to the default inside the service
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	activity, err := c.statisticsService.GetRecentActivity(limit)
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(activity))
}

func (c *DashboardController) Contractor(ctx shared.Context) error {
	dashboard, err := c.statisticsService.GetContractorDashboard(ctx.Request().Context(), shared.GetSession(ctx).GetUserID())
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(dashboard))
}

func (c *DashboardController) ContractorPerformance(ctx shared.Context) error {
	performance, err := c.statisticsService.GetContractorPerformance(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(performance))
}
