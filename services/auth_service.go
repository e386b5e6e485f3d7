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

package services

import (
	"net/http"
	"time"

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

type authService struct {
	userRepository       shared.UserRepository
	contractorRepository shared.ContractorRepository
	jwtManager           *accesscontrol.JWTManager
	now                  func() time.Time
}

var _ shared.AuthService = &authService{}

func NewAuthService(userRepository shared.UserRepository, contractorRepository shared.ContractorRepository, jwtManager *accesscontrol.JWTManager) *authService {
	return &authService{
		userRepository:       userRepository,
		contractorRepository: contractorRepository,
		jwtManager:           jwtManager,
		now:                  time.Now,
	}
}

// Register creates a contractor account together with its company profile.
// Staff accounts are created by an administrator.
func (s *authService) Register(req dtos.RegisterRequest) (dtos.AuthResponse, error) {
	user, profile := transformer.RegisterRequestToModels(req)

	if _, err := s.userRepository.FindByEmail(user.Email); err == nil {
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusConflict, "user with this email already exists")
	} else if !repositories.IsNotFound(err) {
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusInternalServerError, "could not check email").WithInternal(err)
	}

	if _, err := s.contractorRepository.FindByRegistrationNo(profile.RegistrationNo); err == nil {
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusConflict, "contractor with this registration number already exists")
	} else if !repositories.IsNotFound(err) {
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusInternalServerError, "could not check registration number").WithInternal(err)
	}

	hash, err := accesscontrol.HashPassword(req.Password)
	if err != nil {
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	user.PasswordHash = hash

	err = s.userRepository.Transaction(func(tx shared.DB) error {
		if err := s.userRepository.Create(tx, &user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return s.contractorRepository.Create(tx, &profile)
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusConflict, "user already exists").WithInternal(err)
		}
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusInternalServerError, "could not register user").WithInternal(err)
	}

	user.ContractorProfile = &profile
	return s.authResponse(user)
}

func (s *authService) Login(email, password string) (dtos.AuthResponse, error) {
	user, err := s.userRepository.FindByEmail(transformer.NormalizeEmail(email))
	if err != nil {
		if repositories.IsNotFound(err) {
			return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch user").WithInternal(err)
	}

	if !accesscontrol.CheckPassword(user.PasswordHash, password) {
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	if !user.IsActive {
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusForbidden, "account is deactivated")
	}

	now := s.now()
	user.LastLoginAt = &now
	if err := s.userRepository.Save(nil, &user); err != nil {
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusInternalServerError, "could not update last login").WithInternal(err)
	}

	if user.Role == models.RoleContractor {
		if profile, err := s.contractorRepository.FindByUserID(user.ID); err == nil {
			user.ContractorProfile = &profile
		}
	}

	return s.authResponse(user)
}

func (s *authService) ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.userRepository.Read(userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch user").WithInternal(err)
	}

	if !accesscontrol.CheckPassword(user.PasswordHash, currentPassword) {
		return echo.NewHTTPError(http.StatusBadRequest, "current password is incorrect")
	}

	hash, err := accesscontrol.HashPassword(newPassword)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	user.PasswordHash = hash

	if err := s.userRepository.Save(nil, &user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not update password").WithInternal(err)
	}
	return nil
}

func (s *authService) authResponse(user models.User) (dtos.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(user)
	if err != nil {
		return dtos.AuthResponse{}, echo.NewHTTPError(http.StatusInternalServerError, "could not generate token").WithInternal(err)
	}
	return dtos.AuthResponse{
		Token: token,
		User:  transformer.UserToDTO(user),
	}, nil
}
