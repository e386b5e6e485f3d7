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

package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleGovernmentAdmin   UserRole = "GOVERNMENT_ADMIN"
	RoleGovernmentOfficer UserRole = "GOVERNMENT_OFFICER"
	RoleContractor        UserRole = "CONTRACTOR"
	RoleMEOfficer         UserRole = "ME_OFFICER"
)

var AllUserRoles = []UserRole{RoleGovernmentAdmin, RoleGovernmentOfficer, RoleContractor, RoleMEOfficer}

func (r UserRole) IsValid() bool {
	for _, role := range AllUserRoles {
		if role == r {
			return true
		}
	}
	return false
}

// IsReviewer reports whether the role may review contractor submissions.
func (r UserRole) IsReviewer() bool {
	return r == RoleMEOfficer || r == RoleGovernmentAdmin
}

type User struct {
	Model
	Email        string     `json:"email" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;type:text;not null"`
	FirstName    string     `json:"firstName" gorm:"type:text"`
	LastName     string     `json:"lastName" gorm:"type:text"`
	Phone        *string    `json:"phone" gorm:"type:text"`
	Role         UserRole   `json:"role" gorm:"type:text;not null;default:'CONTRACTOR'"`
	IsActive     bool       `json:"isActive" gorm:"not null;default:true"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`

	ContractorProfile *ContractorProfile `json:"contractorProfile,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (u User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type ContractorProfile struct {
	Model
	UserID            uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	User              *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	CompanyName       string    `json:"companyName" gorm:"type:text;not null"`
	RegistrationNo    string    `json:"registrationNo" gorm:"type:text;uniqueIndex;not null"`
	Address           *string   `json:"address" gorm:"type:text"`
	Phone             *string   `json:"phone" gorm:"type:text"`
	Rating            float64   `json:"rating" gorm:"type:numeric(3,2);not null;default:0"`
	IsVerified        bool      `json:"isVerified" gorm:"not null;default:false"`
	IsCertified       bool      `json:"isCertified" gorm:"not null;default:false"`
	Specialization    StringSet `json:"specialization" gorm:"type:jsonb;not null;default:'[]'"`
	YearsOfExperience int       `json:"yearsOfExperience" gorm:"not null;default:0"`
	Projects          []Project `json:"projects,omitempty" gorm:"foreignKey:ContractorID;references:ID"`
}

func (c ContractorProfile) TableName() string {
	return "contractor_profiles"
}
