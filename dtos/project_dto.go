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
	"github.com/shopspring/decimal"
)

type ProjectCreateRequest struct {
	Name            string                 `json:"name" validate:"required"`
	Description     string                 `json:"description"`
	Category        models.ProjectCategory `json:"category" validate:"required,oneof=ROADS BRIDGES BUILDINGS WATER_SUPPLY ELECTRICITY HEALTHCARE EDUCATION AGRICULTURE HOUSING OTHER"`
	LGA             StringOrSlice          `json:"lga" validate:"required,min=1"`
	Location        *string                `json:"location"`
	Status          models.ProjectStatus   `json:"status" validate:"omitempty,oneof=NOT_STARTED IN_PROGRESS NEAR_COMPLETION COMPLETED DELAYED ON_HOLD CANCELLED"`
	Priority        models.ProjectPriority `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Progress        int                    `json:"progress" validate:"gte=0,lte=100"`
	Budget          decimal.Decimal        `json:"budget" validate:"gte=0"`
	AllocatedBudget decimal.Decimal        `json:"allocatedBudget" validate:"gte=0"`
	SpentBudget     decimal.Decimal        `json:"spentBudget" validate:"gte=0"`
	StartDate       *time.Time             `json:"startDate"`
	EndDate         *time.Time             `json:"endDate"`
	ContractorID    *uuid.UUID             `json:"contractorId"`
	IsPublic        bool                   `json:"isPublic"`
}

// ProjectPatchRequest is the whitelist of updatable project fields.
type ProjectPatchRequest struct {
	Name            *string                 `json:"name" validate:"omitempty,min=1"`
	Description     *string                 `json:"description"`
	Category        *models.ProjectCategory `json:"category" validate:"omitempty,oneof=ROADS BRIDGES BUILDINGS WATER_SUPPLY ELECTRICITY HEALTHCARE EDUCATION AGRICULTURE HOUSING OTHER"`
	LGA             *StringOrSlice          `json:"lga"`
	Location        *string                 `json:"location"`
	Status          *models.ProjectStatus   `json:"status" validate:"omitempty,oneof=NOT_STARTED IN_PROGRESS NEAR_COMPLETION COMPLETED DELAYED ON_HOLD CANCELLED"`
	Priority        *models.ProjectPriority `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Progress        *int                    `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Budget          *decimal.Decimal        `json:"budget" validate:"omitempty,gte=0"`
	AllocatedBudget *decimal.Decimal        `json:"allocatedBudget" validate:"omitempty,gte=0"`
	SpentBudget     *decimal.Decimal        `json:"spentBudget" validate:"omitempty,gte=0"`
	StartDate       *time.Time              `json:"startDate"`
	EndDate         *time.Time              `json:"endDate"`
	IsPublic        *bool                   `json:"isPublic"`
}

type AssignContractorRequest struct {
	ContractorID uuid.UUID `json:"contractorId" validate:"required"`
}

type MilestoneCreateRequest struct {
	Title       string                 `json:"title" validate:"required"`
	Description string                 `json:"description"`
	DueDate     *time.Time             `json:"dueDate"`
	Status      models.MilestoneStatus `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED DELAYED"`
	Progress    int                    `json:"progress" validate:"gte=0,lte=100"`
}

type MilestonePatchRequest struct {
	Title       *string                 `json:"title" validate:"omitempty,min=1"`
	Description *string                 `json:"description"`
	DueDate     *time.Time              `json:"dueDate"`
	Status      *models.MilestoneStatus `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED DELAYED"`
	Progress    *int                    `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

// PublicProjectDTO leaves out internal bookkeeping fields.
type PublicProjectDTO struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Slug        string                 `json:"slug"`
	Description string                 `json:"description"`
	Category    models.ProjectCategory `json:"category"`
	LGA         []string               `json:"lga"`
	Location    *string                `json:"location"`
	Status      models.ProjectStatus   `json:"status"`
	Progress    int                    `json:"progress"`
	Budget      decimal.Decimal        `json:"budget"`
	StartDate   *time.Time             `json:"startDate"`
	EndDate     *time.Time             `json:"endDate"`
	Contractor  *string                `json:"contractor,omitempty"`
	Milestones  []models.Milestone     `json:"milestones,omitempty"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
