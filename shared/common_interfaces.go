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

package shared

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/utils"
	"github.com/labstack/echo/v4"
)

type UserFilter struct {
	Role     *models.UserRole
	IsActive *bool
}

type ContractorFilter struct {
	IsVerified  *bool
	IsCertified *bool
}

type ProjectFilter struct {
	Status       *models.ProjectStatus
	Category     *models.ProjectCategory
	Priority     *models.ProjectPriority
	ContractorID *uuid.UUID
	IsPublic     *bool
}

type SubmissionFilter struct {
	Status       *models.SubmissionStatus
	Type         *models.SubmissionType
	ProjectID    *uuid.UUID
	ContractorID *uuid.UUID
}

type DocumentFilter struct {
	ProjectID    *uuid.UUID
	SubmissionID *uuid.UUID
	Category     *string
	UploadedBy   *uuid.UUID
}

type ReportFilter struct {
	Type        *models.ReportType
	ProjectID   *uuid.UUID
	GeneratedBy *uuid.UUID
}

type UserRepository interface {
	utils.Repository[uuid.UUID, models.User, DB]
	FindByEmail(email string) (models.User, error)
	ReadWithProfile(id uuid.UUID) (models.User, error)
	ListPaged(pageInfo PageInfo, filter UserFilter) (Paged[models.User], error)
	ListByRoles(roles []models.UserRole) ([]models.User, error)
}

type ContractorRepository interface {
	utils.Repository[uuid.UUID, models.ContractorProfile, DB]
	ReadWithUser(id uuid.UUID) (models.ContractorProfile, error)
	FindByUserID(userID uuid.UUID) (models.ContractorProfile, error)
	FindByRegistrationNo(registrationNo string) (models.ContractorProfile, error)
	ListPaged(pageInfo PageInfo, filter ContractorFilter) (Paged[models.ContractorProfile], error)
}

type ProjectRepository interface {
	utils.Repository[uuid.UUID, models.Project, DB]
	ReadWithRelations(id uuid.UUID) (models.Project, error)
	ListPaged(pageInfo PageInfo, filter ProjectFilter) (Paged[models.Project], error)
	ListPublic() ([]models.Project, error)
	ListByContractor(contractorID uuid.UUID) ([]models.Project, error)
}

type MilestoneRepository interface {
	utils.Repository[uuid.UUID, models.Milestone, DB]
	ListByProject(projectID uuid.UUID) ([]models.Milestone, error)
	// ListDueBetween returns the open milestones with a due date in [from, to).
	ListDueBetween(from, to time.Time) ([]models.Milestone, error)
}

type SubmissionRepository interface {
	utils.Repository[uuid.UUID, models.Submission, DB]
	ReadWithApprovals(id uuid.UUID) (models.Submission, error)
	ListPaged(pageInfo PageInfo, filter SubmissionFilter) (Paged[models.Submission], error)
	ListByContractor(contractorID uuid.UUID) ([]models.Submission, error)
	ListByProject(projectID uuid.UUID) ([]models.Submission, error)
	Recent(limit int) ([]models.Submission, error)
	UpdateReview(tx DB, submission *models.Submission) error
}

// ApprovalRepository is append-only. There is deliberately no way to
// update or delete an approval.
type ApprovalRepository interface {
	Create(tx DB, approval *models.Approval) error
	ListBySubmission(submissionID uuid.UUID) ([]models.Approval, error)
	Recent(limit int) ([]models.Approval, error)
}

type DocumentRepository interface {
	utils.Repository[uuid.UUID, models.Document, DB]
	ListPaged(pageInfo PageInfo, filter DocumentFilter) (Paged[models.Document], error)
}

type ReportRepository interface {
	utils.Repository[uuid.UUID, models.Report, DB]
	ListPaged(pageInfo PageInfo, filter ReportFilter) (Paged[models.Report], error)
}

type NotificationRepository interface {
	CreateBatch(tx DB, notifications []models.Notification) error
	ListByUser(userID uuid.UUID, pageInfo PageInfo, unreadOnly bool) (Paged[models.Notification], error)
	MarkRead(userID uuid.UUID, id uuid.UUID) (bool, error)
	MarkAllRead(userID uuid.UUID) (int64, error)
	UnreadCount(userID uuid.UUID) (int64, error)
	DeleteReadBefore(before time.Time) (int64, error)
}

type AuthService interface {
	Register(req dtos.RegisterRequest) (dtos.AuthResponse, error)
	Login(email, password string) (dtos.AuthResponse, error)
	ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error
}

type ProjectService interface {
	ListPaged(pageInfo PageInfo, filter ProjectFilter, inMemory InMemoryFilter) (Paged[models.Project], error)
	Create(ctx context.Context, creator uuid.UUID, req dtos.ProjectCreateRequest) (models.Project, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.ProjectPatchRequest) (models.Project, error)
	AssignContractor(ctx context.Context, projectID, contractorID uuid.UUID) (models.Project, error)
}

type SubmissionService interface {
	ListPaged(pageInfo PageInfo, filter SubmissionFilter, inMemory InMemoryFilter) (Paged[models.Submission], error)
	Create(ctx context.Context, actor AuthSession, req dtos.SubmissionCreateRequest) (models.Submission, error)
	Update(actor AuthSession, id uuid.UUID, req dtos.SubmissionPatchRequest) (models.Submission, error)
	Delete(actor AuthSession, id uuid.UUID) error
	Review(ctx context.Context, id uuid.UUID, reviewer AuthSession, req dtos.ReviewRequest) (dtos.ReviewResponse, error)
}

type StatisticsService interface {
	GetDashboardStats(ctx context.Context) (dtos.DashboardStats, error)
	GetLGAStats(ctx context.Context) ([]dtos.LGAStats, error)
	GetRecentActivity(limit int) (dtos.RecentActivity, error)
	GetContractorDashboard(ctx context.Context, userID uuid.UUID) (dtos.ContractorDashboard, error)
	GetContractorPerformance(ctx context.Context) ([]dtos.ContractorPerformanceDTO, error)
}

type PublicService interface {
	ListProjects(pageInfo PageInfo, filter ProjectFilter, inMemory InMemoryFilter) (Paged[dtos.PublicProjectDTO], error)
	GetProject(id uuid.UUID) (dtos.PublicProjectDTO, error)
	GetStats() (dtos.PublicStats, error)
	ListLGAs() ([]dtos.LGAStats, error)
}

type NotificationService interface {
	Notify(ctx context.Context, notifications []models.Notification) error
	NotifyRoles(ctx context.Context, roles []models.UserRole, template models.Notification) error
	Stream(ctx context.Context, userID uuid.UUID) (<-chan map[string]any, error)
}

type FileService interface {
	Upload(ctx context.Context, uploader AuthSession, file UploadedFile) (models.Document, error)
	Open(ctx context.Context, document models.Document) (io.ReadCloser, error)
	Delete(ctx context.Context, actor AuthSession, id uuid.UUID) error
}

type ReportService interface {
	Generate(ctx context.Context, actor AuthSession, req dtos.ReportGenerateRequest) (models.Report, error)
}

// UploadedFile describes a file received through a multipart request.
type UploadedFile struct {
	FileName     string
	MimeType     string
	Size         int64
	Category     string
	ProjectID    *uuid.UUID
	SubmissionID *uuid.UUID
	Content      io.Reader
}

// ObjectStorage persists uploaded files under an opaque key.
type ObjectStorage interface {
	Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type AccessControl interface {
	IsAllowed(role models.UserRole, object Object, action Action) (bool, error)
	AllowRole(role models.UserRole, object Object, actions []Action) error
	GetAllowedActions(role models.UserRole, object Object) ([]Action, error)
}

type RBACMiddleware = func(obj Object, act Action) echo.MiddlewareFunc

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionReview Action = "review"
	ActionVerify Action = "verify"
	ActionAssign Action = "assign"
)

type Object string

const (
	ObjectUser       Object = "user"
	ObjectContractor Object = "contractor"
	ObjectProject    Object = "project"
	ObjectMilestone  Object = "milestone"
	ObjectSubmission Object = "submission"
	ObjectDashboard  Object = "dashboard"
	ObjectDocument   Object = "document"
	ObjectReport     Object = "report"
)
