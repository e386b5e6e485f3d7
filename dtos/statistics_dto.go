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

type ProjectStats struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"byStatus"`
	ByCategory      map[string]int `json:"byCategory"`
	Completed       int            `json:"completed"`
	InProgress      int            `json:"inProgress"`
	Delayed         int            `json:"delayed"`
	AverageProgress float64        `json:"averageProgress"`
}

type BudgetStats struct {
	TotalBudget     decimal.Decimal `json:"totalBudget"`
	AllocatedBudget decimal.Decimal `json:"allocatedBudget"`
	SpentBudget     decimal.Decimal `json:"spentBudget"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
	UtilizationRate float64         `json:"utilizationRate"`
}

type SubmissionStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	Pending  int            `json:"pending"`
	Approved int            `json:"approved"`
	Rejected int            `json:"rejected"`
	Flagged  int            `json:"flagged"`
}

type ContractorStats struct {
	Total     int `json:"total"`
	Verified  int `json:"verified"`
	Certified int `json:"certified"`
}

type DashboardStats struct {
	Projects    ProjectStats    `json:"projects"`
	Budget      BudgetStats     `json:"budget"`
	Submissions SubmissionStats `json:"submissions"`
	Contractors ContractorStats `json:"contractors"`
}

type LGAStats struct {
	LGA             string          `json:"lga"`
	Projects        int             `json:"projects"`
	Completed       int             `json:"completed"`
	InProgress      int             `json:"inProgress"`
	TotalBudget     decimal.Decimal `json:"totalBudget"`
	SpentBudget     decimal.Decimal `json:"spentBudget"`
	AverageProgress float64         `json:"averageProgress"`
}

type ActivityItem struct {
	Kind      string    `json:"kind"`
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	ProjectID uuid.UUID `json:"projectId,omitempty"`
	ActorID   uuid.UUID `json:"actorId"`
	At        time.Time `json:"at"`
}

type RecentActivity struct {
	Submissions []models.Submission `json:"submissions"`
	Approvals   []models.Approval   `json:"approvals"`
	Timeline    []ActivityItem      `json:"timeline"`
}

type ContractorDashboard struct {
	Contractor  models.ContractorProfile `json:"contractor"`
	Projects    ProjectStats             `json:"projects"`
	Budget      BudgetStats              `json:"budget"`
	Submissions SubmissionStats          `json:"submissions"`
	Recent      []models.Submission      `json:"recentSubmissions"`
}

type PublicStats struct {
	TotalProjects     int             `json:"totalProjects"`
	CompletedProjects int             `json:"completedProjects"`
	OngoingProjects   int             `json:"ongoingProjects"`
	TotalBudget       decimal.Decimal `json:"totalBudget"`
	AverageProgress   float64         `json:"averageProgress"`
	ByCategory        map[string]int  `json:"byCategory"`
	LGAs              int             `json:"lgas"`
}
