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
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Document struct {
	Model
	ProjectID    *uuid.UUID `json:"projectId" gorm:"type:uuid;index"`
	SubmissionID *uuid.UUID `json:"submissionId" gorm:"type:uuid;index"`
	FileName     string     `json:"fileName" gorm:"type:text;not null"`
	FilePath     string     `json:"filePath" gorm:"type:text;not null"`
	MimeType     string     `json:"mimeType" gorm:"type:text"`
	Size         int64      `json:"size" gorm:"not null;default:0"`
	Category     string     `json:"category" gorm:"type:text;not null;default:'GENERAL'"`
	UploadedBy   uuid.UUID  `json:"uploadedBy" gorm:"type:uuid;not null"`
}

func (d Document) TableName() string {
	return "documents"
}

type ReportType string

const (
	ReportTypeProjectSummary        ReportType = "PROJECT_SUMMARY"
	ReportTypeFinancial             ReportType = "FINANCIAL"
	ReportTypeContractorPerformance ReportType = "CONTRACTOR_PERFORMANCE"
	ReportTypeLGASummary            ReportType = "LGA_SUMMARY"
)

var AllReportTypes = []ReportType{
	ReportTypeProjectSummary,
	ReportTypeFinancial,
	ReportTypeContractorPerformance,
	ReportTypeLGASummary,
}

type Report struct {
	Model
	Title       string         `json:"title" gorm:"type:text;not null"`
	Type        ReportType     `json:"type" gorm:"type:text;not null"`
	ProjectID   *uuid.UUID     `json:"projectId" gorm:"type:uuid"`
	GeneratedBy uuid.UUID      `json:"generatedBy" gorm:"type:uuid;not null"`
	Parameters  datatypes.JSON `json:"parameters" gorm:"type:jsonb"`
	Data        datatypes.JSON `json:"data" gorm:"type:jsonb"`
}

func (r Report) TableName() string {
	return "reports"
}

type NotificationType string

const (
	NotificationSubmissionCreated  NotificationType = "SUBMISSION_CREATED"
	NotificationSubmissionReviewed NotificationType = "SUBMISSION_REVIEWED"
	NotificationProjectAssigned    NotificationType = "PROJECT_ASSIGNED"
	NotificationGeneral            NotificationType = "GENERAL"
)

type Notification struct {
	Model
	UserID  uuid.UUID        `json:"userId" gorm:"type:uuid;not null;index"`
	Title   string           `json:"title" gorm:"type:text;not null"`
	Message string           `json:"message" gorm:"type:text"`
	Type    NotificationType `json:"type" gorm:"type:text;not null;default:'GENERAL'"`
	Link    *string          `json:"link" gorm:"type:text"`
	IsRead  bool             `json:"isRead" gorm:"not null;default:false"`
}

func (n Notification) TableName() string {
	return "notifications"
}
