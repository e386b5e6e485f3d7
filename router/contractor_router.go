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

type ContractorRouter struct {
	*echo.Group
}

func NewContractorRouter(sessionRouter SessionRouter, rbac shared.AccessControl, contractorController *controllers.ContractorController) ContractorRouter {
	needs := middlewares.NeedsPermission(rbac)
	contractorRouter := sessionRouter.Group.Group("/contractors")

	contractorRouter.GET("", contractorController.List, needs(shared.ObjectContractor, shared.ActionRead))
	contractorRouter.GET("/:id", contractorController.Read, needs(shared.ObjectContractor, shared.ActionRead))
	contractorRouter.GET("/:id/projects", contractorController.Projects, needs(shared.ObjectContractor, shared.ActionRead))

	contractorRouter.POST("", contractorController.Create, needs(shared.ObjectContractor, shared.ActionCreate))
	// owner or admin, the ownership is checked by the controller
	contractorRouter.PUT("/:id", contractorController.Update, needs(shared.ObjectContractor, shared.ActionUpdate))
	contractorRouter.PUT("/:id/verify", contractorController.Verify, needs(shared.ObjectContractor, shared.ActionVerify))
	contractorRouter.DELETE("/:id", contractorController.Delete, needs(shared.ObjectContractor, shared.ActionDelete))

	return ContractorRouter{Group: contractorRouter}
}
