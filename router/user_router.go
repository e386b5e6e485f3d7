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
	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	*echo.Group
}

func NewUserRouter(sessionRouter SessionRouter, userController *controllers.UserController) UserRouter {
	userRouter := sessionRouter.Group.Group("/users", middlewares.RoleMiddleware(models.RoleGovernmentAdmin))

	userRouter.GET("", userController.List)
	userRouter.GET("/:id", userController.Read)
	userRouter.POST("", userController.Create)
	userRouter.PUT("/:id", userController.Update)
	userRouter.PUT("/:id/status", userController.UpdateStatus)
	userRouter.DELETE("/:id", userController.Delete)

	return UserRouter{Group: userRouter}
}
