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
	"github.com/labstack/echo/v4"
)

type PublicRouter struct {
	*echo.Group
}

func NewPublicRouter(apiRouter APIRouter, publicController *controllers.PublicController) PublicRouter {
	publicRouter := apiRouter.Group.Group("/public")

	publicRouter.GET("/projects", publicController.ListProjects)
	publicRouter.GET("/projects/:id", publicController.ReadProject)
	publicRouter.GET("/stats", publicController.Stats)
	publicRouter.GET("/lgas", publicController.LGAs)

	return PublicRouter{Group: publicRouter}
}
