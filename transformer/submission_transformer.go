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
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
)

func SubmissionCreateRequestToModel(req dtos.SubmissionCreateRequest, contractorID, submittedBy uuid.UUID, now time.Time) models.Submission {
	return models.Submission{
		ProjectID:        req.ProjectID,
		ContractorID:     contractorID,
		SubmittedBy:      submittedBy,
		MilestoneID:      req.MilestoneID,
		Type:             req.Type,
		Status:           models.SubmissionStatusPending,
		Title:            req.Title,
		Description:      req.Description,
		Progress:         req.Progress,
		SafetyCompliance: req.SafetyCompliance,
		SubmittedAt:      now,
	}
}

// ApplySubmissionPatchRequestToModel never touches status or review fields.
func ApplySubmissionPatchRequestToModel(patch dtos.SubmissionPatchRequest, submission *models.Submission) bool {
	updated := false
	if patch.MilestoneID != nil {
		submission.MilestoneID = patch.MilestoneID
		updated = true
	}
	if patch.Type != nil {
		submission.Type = *patch.Type
		updated = true
	}
	if patch.Title != nil {
		submission.Title = *patch.Title
		updated = true
	}
	if patch.Description != nil {
		submission.Description = *patch.Description
		updated = true
	}
	if patch.Progress != nil {
		submission.Progress = patch.Progress
		updated = true
	}
	if patch.SafetyCompliance != nil {
		submission.SafetyCompliance = patch.SafetyCompliance
		updated = true
	}
	return updated
}
