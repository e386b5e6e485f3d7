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

package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
)

type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     *string `json:"phone"`

	CompanyName       string        `json:"companyName" validate:"required"`
	RegistrationNo    string        `json:"registrationNo" validate:"required"`
	Address           *string       `json:"address"`
	Specialization    StringOrSlice `json:"specialization"`
	YearsOfExperience int           `json:"yearsOfExperience" validate:"gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	ID                uuid.UUID                 `json:"id"`
	Email             string                    `json:"email"`
	FirstName         string                    `json:"firstName"`
	LastName          string                    `json:"lastName"`
	Phone             *string                   `json:"phone"`
	Role              models.UserRole           `json:"role"`
	IsActive          bool                      `json:"isActive"`
	LastLoginAt       *time.Time                `json:"lastLoginAt"`
	CreatedAt         time.Time                 `json:"createdAt"`
	ContractorProfile *models.ContractorProfile `json:"contractorProfile,omitempty"`
}

type UserCreateRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=8"`
	FirstName string          `json:"firstName" validate:"required"`
	LastName  string          `json:"lastName" validate:"required"`
	Phone     *string         `json:"phone"`
	Role      models.UserRole `json:"role" validate:"required,oneof=GOVERNMENT_ADMIN GOVERNMENT_OFFICER CONTRACTOR ME_OFFICER"`
}

// UserPatchRequest only carries the fields an admin may change.
type UserPatchRequest struct {
	FirstName *string          `json:"firstName"`
	LastName  *string          `json:"lastName"`
	Phone     *string          `json:"phone"`
	Role      *models.UserRole `json:"role" validate:"omitempty,oneof=GOVERNMENT_ADMIN GOVERNMENT_OFFICER CONTRACTOR ME_OFFICER"`
	IsActive  *bool            `json:"isActive"`
}

type UserStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
