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
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/transformer"
)

type AuthController struct {
	authService    shared.AuthService
	userRepository shared.UserRepository
}

func NewAuthController(authService shared.AuthService, userRepository shared.UserRepository) *AuthController {
	return &AuthController{
		authService:    authService,
		userRepository: userRepository,
	}
}

// @Summary Register a contractor account
// @Param body body dtos.RegisterRequest true "Request body"
// @Success 201 {object} dtos.AuthResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx shared.Context) error {
	var req dtos.RegisterRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	resp, err := c.authService.Register(req)
	if err != nil {
		return err
	}
	return ctx.JSON(201, shared.OKWithMessage("registration successful", resp))
}

// @Summary Login
// @Param body body dtos.LoginRequest true "Request body"
// @Success 200 {object} dtos.AuthResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx shared.Context) error {
	var req dtos.LoginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	resp, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OKWithMessage("login successful", resp))
}

func (c *AuthController) Me(ctx shared.Context) error {
	user, err := c.userRepository.ReadWithProfile(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return readError(err, "user")
	}
	return ctx.JSON(200, shared.OK(transformer.UserToDTO(user)))
}

func (c *AuthController) ChangePassword(ctx shared.Context) error {
	var req dtos.ChangePasswordRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.authService.ChangePassword(shared.GetSession(ctx).GetUserID(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return ctx.JSON(200, shared.OKWithMessage("password changed successfully", nil))
}
