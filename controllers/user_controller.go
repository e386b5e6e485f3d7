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
	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/database"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/transformer"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	userRepository shared.UserRepository
}

func NewUserController(userRepository shared.UserRepository) *UserController {
	return &UserController{
		userRepository: userRepository,
	}
}

func (c *UserController) List(ctx shared.Context) error {
	role, err := enumQuery(ctx, "role", models.AllUserRoles)
	if err != nil {
		return err
	}

	pageInfo := shared.GetPageInfo(ctx)
	page, err := c.userRepository.ListPaged(pageInfo, shared.UserFilter{
		Role:     role,
		IsActive: shared.GetBoolQuery(ctx, "isActive"),
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch users").WithInternal(err)
	}

	inMemory := shared.GetInMemoryFilter(ctx)
	page = page.Filter(func(u models.User) bool {
		return inMemory.MatchesSearch(u.FirstName, u.LastName, u.Email)
	})

	return ctx.JSON(200, shared.OK(page.Map(func(u models.User) any {
		return transformer.UserToDTO(u)
	})))
}

func (c *UserController) Read(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	user, err := c.userRepository.ReadWithProfile(id)
	if err != nil {
		return readError(err, "user")
	}
	return ctx.JSON(200, shared.OK(transformer.UserToDTO(user)))
}

func (c *UserController) Create(ctx shared.Context) error {
	var req dtos.UserCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	user := transformer.UserCreateRequestToModel(req)
	if _, err := c.userRepository.FindByEmail(user.Email); err == nil {
		return echo.NewHTTPError(409, "user with this email already exists")
	} else if !repositories.IsNotFound(err) {
		return echo.NewHTTPError(500, "could not check email").WithInternal(err)
	}

	hash, err := accesscontrol.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}
	user.PasswordHash = hash

	if err := c.userRepository.Create(nil, &user); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "user with this email already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create user").WithInternal(err)
	}
	return ctx.JSON(201, shared.OKWithMessage("user created successfully", transformer.UserToDTO(user)))
}

func (c *UserController) Update(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dtos.UserPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if id == shared.GetSession(ctx).GetUserID() && ((req.IsActive != nil && !*req.IsActive) || (req.Role != nil && *req.Role != models.RoleGovernmentAdmin)) {
		return echo.NewHTTPError(400, "you cannot demote or deactivate your own account")
	}

	return c.patch(ctx, id, func(user *models.User) bool {
		return transformer.ApplyUserPatchRequestToModel(req, user)
	}, "user updated successfully")
}

func (c *UserController) UpdateStatus(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dtos.UserStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if id == shared.GetSession(ctx).GetUserID() && !*req.IsActive {
		return echo.NewHTTPError(400, "you cannot deactivate your own account")
	}

	message := "user deactivated successfully"
	if *req.IsActive {
		message = "user activated successfully"
	}

	return c.patch(ctx, id, func(user *models.User) bool {
		user.IsActive = *req.IsActive
		return true
	}, message)
}

func (c *UserController) patch(ctx shared.Context, id uuid.UUID, apply func(*models.User) bool, message string) error {
	user, err := c.userRepository.Read(id)
	if err != nil {
		return readError(err, "user")
	}

	if apply(&user) {
		if err := c.userRepository.Save(nil, &user); err != nil {
			return echo.NewHTTPError(500, "could not update user").WithInternal(err)
		}
	}
	return ctx.JSON(200, shared.OKWithMessage(message, transformer.UserToDTO(user)))
}

func (c *UserController) Delete(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if id == shared.GetSession(ctx).GetUserID() {
		return echo.NewHTTPError(400, "you cannot delete your own account")
	}

	if err := c.userRepository.Delete(nil, id); err != nil {
		return deleteError(err, "user")
	}
	return ctx.JSON(200, shared.OKWithMessage("user deleted successfully", nil))
}
