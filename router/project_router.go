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
	"github.com/infratrack-dev/infratrack/middlewares"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(sessionRouter SessionRouter, rbac shared.AccessControl, projectController *controllers.ProjectController) ProjectRouter {
	needs := middlewares.NeedsPermission(rbac)

	projectRouter := sessionRouter.Group.Group("/projects")
	projectRouter.GET("", projectController.List, needs(shared.ObjectProject, shared.ActionRead))
	projectRouter.POST("", projectController.Create, needs(shared.ObjectProject, shared.ActionCreate))

	projectScoped := projectRouter.Group("/:id")
	projectScoped.GET("", projectController.Read, needs(shared.ObjectProject, shared.ActionRead))
	projectScoped.PUT("", projectController.Update, needs(shared.ObjectProject, shared.ActionUpdate))
	projectScoped.DELETE("", projectController.Delete, needs(shared.ObjectProject, shared.ActionDelete))
	projectScoped.PUT("/assign-contractor", projectController.AssignContractor, needs(shared.ObjectProject, shared.ActionAssign))

	milestoneRouter := projectScoped.Group("/milestones")
	milestoneRouter.GET("", projectController.ListMilestones, needs(shared.ObjectMilestone, shared.ActionRead))
	milestoneRouter.POST("", projectController.CreateMilestone, needs(shared.ObjectMilestone, shared.ActionCreate))
	milestoneRouter.PUT("/:milestoneId", projectController.UpdateMilestone, needs(shared.ObjectMilestone, shared.ActionUpdate))
	milestoneRouter.DELETE("/:milestoneId", projectController.DeleteMilestone, needs(shared.ObjectMilestone, shared.ActionDelete))

	return ProjectRouter{Group: projectRouter}
}
