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
	"time"

	"github.com/infratrack-dev/infratrack/controllers"
	"github.com/infratrack-dev/infratrack/middlewares"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// five login attempts per minute and client with a burst of ten
const (
	loginInterval = 12 * time.Second
	loginBurst    = 10
)

type AuthRouter struct {
	*echo.Group
}

func NewAuthRouter(apiRouter APIRouter, sessionRouter SessionRouter, authController *controllers.AuthController) AuthRouter {
	authRouter := apiRouter.Group.Group("/auth")
	authRouter.POST("/register", authController.Register)
	authRouter.POST("/login", authController.Login, middlewares.RateLimiter(rate.Every(loginInterval), loginBurst))

	sessionAuthRouter := sessionRouter.Group.Group("/auth")
	sessionAuthRouter.GET("/me", authController.Me)
	sessionAuthRouter.PUT("/change-password", authController.ChangePassword)

	return AuthRouter{Group: authRouter}
}
