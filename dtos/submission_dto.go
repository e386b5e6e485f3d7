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

type SubmissionCreateRequest struct {
	ProjectID        uuid.UUID             `json:"projectId" validate:"required"`
	MilestoneID      *uuid.UUID            `json:"milestoneId"`
	Type             models.SubmissionType `json:"type" validate:"required,oneof=MILESTONE PROGRESS ISSUE SAFETY QUALITY DELAY GENERAL"`
	Title            string                `json:"title" validate:"required"`
	Description      string                `json:"description"`
	Progress         *int                  `json:"progress" validate:"omitempty,gte=0,lte=100"`
	SafetyCompliance *bool                 `json:"safetyCompliance"`
}

type SubmissionPatchRequest struct {
	MilestoneID      *uuid.UUID             `json:"milestoneId"`
	Type             *models.SubmissionType `json:"type" validate:"omitempty,oneof=MILESTONE PROGRESS ISSUE SAFETY QUALITY DELAY GENERAL"`
	Title            *string                `json:"title" validate:"omitempty,min=1"`
	Description      *string                `json:"description"`
	Progress         *int                   `json:"progress" validate:"omitempty,gte=0,lte=100"`
	SafetyCompliance *bool                  `json:"safetyCompliance"`
}

// ReviewRequest carries a reviewer decision. Any action other than
// APPROVED, REJECTED or FLAGGED asks the contractor for clarification.
type ReviewRequest struct {
	Action           string  `json:"action" validate:"required"`
	Comments         *string `json:"comments"`
	QualityScore     *int    `json:"qualityScore" validate:"omitempty,gte=0,lte=100"`
	SafetyCompliance *bool   `json:"safetyCompliance"`
}

type ReviewResponse struct {
	Submission models.Submission `json:"submission"`
	Approval   models.Approval   `json:"approval"`
}
