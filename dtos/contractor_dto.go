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

import "github.com/google/uuid"

type ContractorCreateRequest struct {
	UserID            uuid.UUID     `json:"userId" validate:"required"`
	CompanyName       string        `json:"companyName" validate:"required"`
	RegistrationNo    string        `json:"registrationNo" validate:"required"`
	Address           *string       `json:"address"`
	Phone             *string       `json:"phone"`
	Specialization    StringOrSlice `json:"specialization"`
	YearsOfExperience int           `json:"yearsOfExperience" validate:"gte=0"`
}

type ContractorPatchRequest struct {
	CompanyName       *string        `json:"companyName" validate:"omitempty,min=1"`
	Address           *string        `json:"address"`
	Phone             *string        `json:"phone"`
	Specialization    *StringOrSlice `json:"specialization"`
	YearsOfExperience *int           `json:"yearsOfExperience" validate:"omitempty,gte=0"`
	Rating            *float64       `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

type ContractorVerifyRequest struct {
	IsVerified  *bool `json:"isVerified"`
	IsCertified *bool `json:"isCertified"`
}
