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

type ReportRouter struct {
	*echo.Group
}

func NewReportRouter(sessionRouter SessionRouter, rbac shared.AccessControl, reportController *controllers.ReportController) ReportRouter {
	needs := middlewares.NeedsPermission(rbac)

	reportRouter := sessionRouter.Group.Group("/reports",
		middlewares.RoleMiddleware(models.RoleGovernmentAdmin, models.RoleGovernmentOfficer, models.RoleMEOfficer),
	)
	reportRouter.GET("", reportController.List, needs(shared.ObjectReport, shared.ActionRead))
	reportRouter.POST("/generate", reportController.Generate, needs(shared.ObjectReport, shared.ActionCreate))
	reportRouter.GET("/:id", reportController.Read, needs(shared.ObjectReport, shared.ActionRead))
	reportRouter.DELETE("/:id", reportController.Delete, needs(shared.ObjectReport, shared.ActionDelete))

	return ReportRouter{Group: reportRouter}
}
