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

package transformer

import (
	"strings"

	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
)

func UserToDTO(user models.User) dtos.UserDTO {
	return dtos.UserDTO{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Phone:             user.Phone,
		Role:              user.Role,
		IsActive:          user.IsActive,
		LastLoginAt:       user.LastLoginAt,
		CreatedAt:         user.CreatedAt,
		ContractorProfile: user.ContractorProfile,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserCreateRequestToModel does not set the password hash.
func UserCreateRequestToModel(req dtos.UserCreateRequest) models.User {
	return models.User{
		Email:     NormalizeEmail(req.Email),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     req.Phone,
		Role:      req.Role,
		IsActive:  true,
	}
}

func ApplyUserPatchRequestToModel(patch dtos.UserPatchRequest, user *models.User) bool {
	updated := false
	if patch.FirstName != nil {
		user.FirstName = strings.TrimSpace(*patch.FirstName)
		updated = true
	}
	if patch.LastName != nil {
		user.LastName = strings.TrimSpace(*patch.LastName)
		updated = true
	}
	if patch.Phone != nil {
		user.Phone = patch.Phone
		updated = true
	}
	if patch.Role != nil {
		user.Role = *patch.Role
		updated = true
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
		updated = true
	}
	return updated
}

func RegisterRequestToModels(req dtos.RegisterRequest) (models.User, models.ContractorProfile) {
	user := models.User{
		Email:     NormalizeEmail(req.Email),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     req.Phone,
		Role:      models.RoleContractor,
		IsActive:  true,
	}
	profile := models.ContractorProfile{
		CompanyName:       strings.TrimSpace(req.CompanyName),
		RegistrationNo:    strings.TrimSpace(req.RegistrationNo),
		Address:           req.Address,
		Phone:             req.Phone,
		Specialization:    models.NewStringSet(req.Specialization...),
		YearsOfExperience: req.YearsOfExperience,
	}
	return user, profile
}
