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

type FileRouter struct {
	*echo.Group
}

func NewFileRouter(sessionRouter SessionRouter, rbac shared.AccessControl, fileController *controllers.FileController) FileRouter {
	needs := middlewares.NeedsPermission(rbac)

	fileRouter := sessionRouter.Group.Group("/files")
	fileRouter.POST("/upload", fileController.Upload, needs(shared.ObjectDocument, shared.ActionCreate))
	fileRouter.GET("", fileController.List, needs(shared.ObjectDocument, shared.ActionRead))
	fileRouter.GET("/:id", fileController.Read, needs(shared.ObjectDocument, shared.ActionRead))
	fileRouter.GET("/:id/download", fileController.Download, needs(shared.ObjectDocument, shared.ActionRead))
	fileRouter.DELETE("/:id", fileController.Delete, needs(shared.ObjectDocument, shared.ActionDelete))

	return FileRouter{Group: fileRouter}
}
