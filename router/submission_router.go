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

type SubmissionRouter struct {
	*echo.Group
}

func NewSubmissionRouter(sessionRouter SessionRouter, rbac shared.AccessControl, submissionController *controllers.SubmissionController) SubmissionRouter {
	needs := middlewares.NeedsPermission(rbac)

	submissionRouter := sessionRouter.Group.Group("/submissions")
	submissionRouter.GET("", submissionController.List, needs(shared.ObjectSubmission, shared.ActionRead))
	submissionRouter.GET("/:id", submissionController.Read, needs(shared.ObjectSubmission, shared.ActionRead))
	submissionRouter.GET("/:id/approvals", submissionController.Approvals, needs(shared.ObjectSubmission, shared.ActionRead))

	submissionRouter.POST("", submissionController.Create, middlewares.RoleMiddleware(models.RoleContractor))
	submissionRouter.PUT("/:id", submissionController.Update, needs(shared.ObjectSubmission, shared.ActionUpdate))
	submissionRouter.DELETE("/:id", submissionController.Delete, needs(shared.ObjectSubmission, shared.ActionDelete))

	submissionRouter.PUT("/:id/review", submissionController.Review,
		middlewares.RoleMiddleware(models.RoleMEOfficer, models.RoleGovernmentAdmin),
		needs(shared.ObjectSubmission, shared.ActionReview),
	)

	return SubmissionRouter{Group: submissionRouter}
}
