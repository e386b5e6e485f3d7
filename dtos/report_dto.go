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
	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
)

type ReportGenerateRequest struct {
	Title      string            `json:"title"`
	Type       models.ReportType `json:"type" validate:"required,oneof=PROJECT_SUMMARY FINANCIAL CONTRACTOR_PERFORMANCE LGA_SUMMARY"`
	ProjectID  *uuid.UUID        `json:"projectId"`
	Parameters map[string]any    `json:"parameters"`
}

type ContractorPerformanceDTO struct {
	ContractorID        uuid.UUID `json:"contractorId"`
	CompanyName         string    `json:"companyName"`
	Rating              float64   `json:"rating"`
	IsVerified          bool      `json:"isVerified"`
	Projects            int       `json:"projects"`
	CompletedProjects   int       `json:"completedProjects"`
	AverageProgress     float64   `json:"averageProgress"`
	Submissions         int       `json:"submissions"`
	ApprovedSubmissions int       `json:"approvedSubmissions"`
	RejectedSubmissions int       `json:"rejectedSubmissions"`
	ApprovalRate        float64   `json:"approvalRate"`
}

type UploadResponse struct {
	Document models.Document `json:"document"`
	URL      string          `json:"url"`
}
