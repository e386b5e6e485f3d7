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
	"github.com/infratrack-dev/infratrack/controllers"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/middlewares"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
)

type DashboardRouter struct {
	*echo.Group
}

func NewDashboardRouter(sessionRouter SessionRouter, rbac shared.AccessControl, dashboardController *controllers.DashboardController) DashboardRouter {
	dashboardRouter := sessionRouter.Group.Group("/dashboard")

	dashboardRouter.GET("/contractor", dashboardController.Contractor, middlewares.RoleMiddleware(models.RoleContractor))

	officeRouter := dashboardRouter.Group("", middlewares.NeedsPermission(rbac)(shared.ObjectDashboard, shared.ActionRead))
	officeRouter.GET("/stats", dashboardController.Stats)
	officeRouter.GET("/lga-stats", dashboardController.LGAStats)
	officeRouter.GET("/recent-activity", dashboardController.RecentActivity)
	officeRouter.GET("/contractor-performance", dashboardController.ContractorPerformance)

	return DashboardRouter{Group: dashboardRouter}
}
