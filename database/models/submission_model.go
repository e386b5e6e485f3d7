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
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionType string

const (
	SubmissionTypeMilestone SubmissionType = "MILESTONE"
	SubmissionTypeProgress  SubmissionType = "PROGRESS"
	SubmissionTypeIssue     SubmissionType = "ISSUE"
	SubmissionTypeSafety    SubmissionType = "SAFETY"
	SubmissionTypeQuality   SubmissionType = "QUALITY"
	SubmissionTypeDelay     SubmissionType = "DELAY"
	SubmissionTypeGeneral   SubmissionType = "GENERAL"
)

var AllSubmissionTypes = []SubmissionType{
	SubmissionTypeMilestone,
	SubmissionTypeProgress,
	SubmissionTypeIssue,
	SubmissionTypeSafety,
	SubmissionTypeQuality,
	SubmissionTypeDelay,
	SubmissionTypeGeneral,
}

type SubmissionStatus string

const (
	SubmissionStatusPending               SubmissionStatus = "PENDING"
	SubmissionStatusUnderReview           SubmissionStatus = "UNDER_REVIEW"
	SubmissionStatusApproved              SubmissionStatus = "APPROVED"
	SubmissionStatusRejected              SubmissionStatus = "REJECTED"
	SubmissionStatusFlagged               SubmissionStatus = "FLAGGED"
	SubmissionStatusRequiresClarification SubmissionStatus = "REQUIRES_CLARIFICATION"
)

var AllSubmissionStatuses = []SubmissionStatus{
	SubmissionStatusPending,
	SubmissionStatusUnderReview,
	SubmissionStatusApproved,
	SubmissionStatusRejected,
	SubmissionStatusFlagged,
	SubmissionStatusRequiresClarification,
}

type Submission struct {
	Model
	ProjectID        uuid.UUID          `json:"projectId" gorm:"type:uuid;not null;index"`
	Project          *Project           `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:RESTRICT;"`
	ContractorID     uuid.UUID          `json:"contractorId" gorm:"type:uuid;not null;index"`
	Contractor       *ContractorProfile `json:"contractor,omitempty" gorm:"foreignKey:ContractorID;references:ID;constraint:OnDelete:RESTRICT;"`
	SubmittedBy      uuid.UUID          `json:"submittedBy" gorm:"type:uuid;not null"`
	MilestoneID      *uuid.UUID         `json:"milestoneId" gorm:"type:uuid"`
	Type             SubmissionType     `json:"type" gorm:"type:text;not null"`
	Status           SubmissionStatus   `json:"status" gorm:"type:text;not null;default:'PENDING';index"`
	Title            string             `json:"title" gorm:"type:text;not null"`
	Description      string             `json:"description" gorm:"type:text"`
	Progress         *int               `json:"progress"`
	QualityScore     *int               `json:"qualityScore"`
	SafetyCompliance *bool              `json:"safetyCompliance"`
	SubmittedAt      time.Time          `json:"submittedAt" gorm:"not null"`
	ReviewedAt       *time.Time         `json:"reviewedAt"`
	ReviewedBy       *uuid.UUID         `json:"reviewedBy" gorm:"type:uuid"`
	ReviewComments   *string            `json:"reviewComments" gorm:"type:text"`
	Approvals        []Approval         `json:"approvals,omitempty" gorm:"foreignKey:SubmissionID;references:ID"`
}

func (s Submission) TableName() string {
	return "submissions"
}

// ErrApprovalImmutable is returned when anything tries to change or remove
// a recorded review decision.
var ErrApprovalImmutable = errors.New("approval records are append-only")

// Approval is the audit trail entry written for every review decision.
type Approval struct {
	ID           uuid.UUID        `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	SubmissionID uuid.UUID        `json:"submissionId" gorm:"type:uuid;not null;index"`
	ReviewerID   uuid.UUID        `json:"reviewerId" gorm:"type:uuid;not null"`
	Reviewer     *User            `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID;references:ID;constraint:OnDelete:RESTRICT;"`
	Action       string           `json:"action" gorm:"type:text;not null"`
	Status       SubmissionStatus `json:"status" gorm:"type:text;not null"`
	Comments     *string          `json:"comments" gorm:"type:text"`
	QualityScore *int             `json:"qualityScore"`
	CreatedAt    time.Time        `json:"createdAt"`
}

func (a Approval) TableName() string {
	return "approvals"
}

func (a *Approval) BeforeUpdate(tx *gorm.DB) error {
	return ErrApprovalImmutable
}

func (a *Approval) BeforeDelete(tx *gorm.DB) error {
	return ErrApprovalImmutable
}
