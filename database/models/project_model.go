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
	"github.com/shopspring/decimal"
)

type ProjectCategory string

const (
	CategoryRoads       ProjectCategory = "ROADS"
	CategoryBridges     ProjectCategory = "BRIDGES"
	CategoryBuildings   ProjectCategory = "BUILDINGS"
	CategoryWaterSupply ProjectCategory = "WATER_SUPPLY"
	CategoryElectricity ProjectCategory = "ELECTRICITY"
	CategoryHealthcare  ProjectCategory = "HEALTHCARE"
	CategoryEducation   ProjectCategory = "EDUCATION"
	CategoryAgriculture ProjectCategory = "AGRICULTURE"
	CategoryHousing     ProjectCategory = "HOUSING"
	CategoryOther       ProjectCategory = "OTHER"
)

var AllProjectCategories = []ProjectCategory{
	CategoryRoads,
	CategoryBridges,
	CategoryBuildings,
	CategoryWaterSupply,
	CategoryElectricity,
	CategoryHealthcare,
	CategoryEducation,
	CategoryAgriculture,
	CategoryHousing,
	CategoryOther,
}

type ProjectStatus string

const (
	ProjectStatusNotStarted     ProjectStatus = "NOT_STARTED"
	ProjectStatusInProgress     ProjectStatus = "IN_PROGRESS"
	ProjectStatusNearCompletion ProjectStatus = "NEAR_COMPLETION"
	ProjectStatusCompleted      ProjectStatus = "COMPLETED"
	ProjectStatusDelayed        ProjectStatus = "DELAYED"
	ProjectStatusOnHold         ProjectStatus = "ON_HOLD"
	ProjectStatusCancelled      ProjectStatus = "CANCELLED"
)

var AllProjectStatuses = []ProjectStatus{
	ProjectStatusNotStarted,
	ProjectStatusInProgress,
	ProjectStatusNearCompletion,
	ProjectStatusCompleted,
	ProjectStatusDelayed,
	ProjectStatusOnHold,
	ProjectStatusCancelled,
}

type ProjectPriority string

const (
	PriorityLow      ProjectPriority = "LOW"
	PriorityMedium   ProjectPriority = "MEDIUM"
	PriorityHigh     ProjectPriority = "HIGH"
	PriorityCritical ProjectPriority = "CRITICAL"
)

var AllProjectPriorities = []ProjectPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

type Project struct {
	Model
	Name            string             `json:"name" gorm:"type:text;not null"`
	Slug            string             `json:"slug" gorm:"type:text;not null;index"`
	Description     string             `json:"description" gorm:"type:text"`
	Category        ProjectCategory    `json:"category" gorm:"type:text;not null;index"`
	LGA             StringSet          `json:"lga" gorm:"column:lga;type:jsonb;not null;default:'[]'"`
	Location        *string            `json:"location" gorm:"type:text"`
	Status          ProjectStatus      `json:"status" gorm:"type:text;not null;default:'NOT_STARTED';index"`
	Priority        ProjectPriority    `json:"priority" gorm:"type:text;not null;default:'MEDIUM'"`
	Progress        int                `json:"progress" gorm:"not null;default:0"`
	Budget          decimal.Decimal    `json:"budget" gorm:"type:numeric(18,2);not null;default:0"`
	AllocatedBudget decimal.Decimal    `json:"allocatedBudget" gorm:"type:numeric(18,2);not null;default:0"`
	SpentBudget     decimal.Decimal    `json:"spentBudget" gorm:"type:numeric(18,2);not null;default:0"`
	StartDate       *time.Time         `json:"startDate"`
	EndDate         *time.Time         `json:"endDate"`
	ContractorID    *uuid.UUID         `json:"contractorId" gorm:"type:uuid;index"`
	Contractor      *ContractorProfile `json:"contractor,omitempty" gorm:"foreignKey:ContractorID;references:ID;constraint:OnDelete:SET NULL;"`
	IsPublic        bool               `json:"isPublic" gorm:"not null;default:false"`
	CreatedBy       uuid.UUID          `json:"createdBy" gorm:"type:uuid;not null"`
	Milestones      []Milestone        `json:"milestones,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (p Project) TableName() string {
	return "projects"
}

// IsAssignedTo reports whether the contractor profile is the one executing the project.
func (p Project) IsAssignedTo(contractorID uuid.UUID) bool {
	return p.ContractorID != nil && *p.ContractorID == contractorID
}

type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "PENDING"
	MilestoneStatusInProgress MilestoneStatus = "IN_PROGRESS"
	MilestoneStatusCompleted  MilestoneStatus = "COMPLETED"
	MilestoneStatusDelayed    MilestoneStatus = "DELAYED"
)

type Milestone struct {
	Model
	ProjectID   uuid.UUID       `json:"projectId" gorm:"type:uuid;not null;index"`
	Title       string          `json:"title" gorm:"type:text;not null"`
	Description string          `json:"description" gorm:"type:text"`
	DueDate     *time.Time      `json:"dueDate"`
	Status      MilestoneStatus `json:"status" gorm:"type:text;not null;default:'PENDING'"`
	Progress    int             `json:"progress" gorm:"not null;default:0"`
	CompletedAt *time.Time      `json:"completedAt"`
}

func (m Milestone) TableName() string {
	return "milestones"
}
