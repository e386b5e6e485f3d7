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

package services

import (
	"context"
	"net/http"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/utils"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const DefaultRecentActivityLimit = 10

type statisticsService struct {
	projectRepository    shared.ProjectRepository
	submissionRepository shared.SubmissionRepository
	contractorRepository shared.ContractorRepository
	approvalRepository   shared.ApprovalRepository
}

var _ shared.StatisticsService = &statisticsService{}

func NewStatisticsService(projectRepository shared.ProjectRepository, submissionRepository shared.SubmissionRepository, contractorRepository shared.ContractorRepository, approvalRepository shared.ApprovalRepository) *statisticsService {
	return &statisticsService{
		projectRepository:    projectRepository,
		submissionRepository: submissionRepository,
		contractorRepository: contractorRepository,
		approvalRepository:   approvalRepository,
	}
}

func isOngoing(status models.ProjectStatus) bool {
	return status == models.ProjectStatusInProgress || status == models.ProjectStatusNearCompletion
}

func averageProgress(projects []models.Project) float64 {
	if len(projects) == 0 {
		return 0
	}
	sum := utils.SumBy(projects, func(p models.Project) float64 {
		return float64(p.Progress)
	})
	return utils.RoundTwoDecimals(sum / float64(len(projects)))
}

func ComputeProjectStats(projects []models.Project) dtos.ProjectStats {
	stats := dtos.ProjectStats{
		Total:      len(projects),
		ByStatus:   make(map[string]int, len(models.AllProjectStatuses)),
		ByCategory: make(map[string]int, len(models.AllProjectCategories)),
	}
	for _, status := range models.AllProjectStatuses {
		stats.ByStatus[string(status)] = 0
	}
	for _, category := range models.AllProjectCategories {
		stats.ByCategory[string(category)] = 0
	}

	for _, p := range projects {
		stats.ByStatus[string(p.Status)]++
		stats.ByCategory[string(p.Category)]++
		switch {
		case p.Status == models.ProjectStatusCompleted:
			stats.Completed++
		case p.Status == models.ProjectStatusDelayed:
			stats.Delayed++
		case isOngoing(p.Status):
			stats.InProgress++
		}
	}
	stats.AverageProgress = averageProgress(projects)
	return stats
}

func ComputeBudgetStats(projects []models.Project) dtos.BudgetStats {
	stats := dtos.BudgetStats{}
	for _, p := range projects {
		stats.TotalBudget = stats.TotalBudget.Add(p.Budget)
		stats.AllocatedBudget = stats.AllocatedBudget.Add(p.AllocatedBudget)
		stats.SpentBudget = stats.SpentBudget.Add(p.SpentBudget)
	}
	stats.RemainingBudget = stats.TotalBudget.Sub(stats.SpentBudget)
	if stats.TotalBudget.IsPositive() {
		stats.UtilizationRate = stats.SpentBudget.Mul(decimal.NewFromInt(100)).Div(stats.TotalBudget).Round(2).InexactFloat64()
	}
	return stats
}

func ComputeSubmissionStats(submissions []models.Submission) dtos.SubmissionStats {
	stats := dtos.SubmissionStats{
		Total:    len(submissions),
		ByStatus: make(map[string]int, len(models.AllSubmissionStatuses)),
	}
	for _, status := range models.AllSubmissionStatuses {
		stats.ByStatus[string(status)] = 0
	}
	for _, s := range submissions {
		stats.ByStatus[string(s.Status)]++
	}
	stats.Pending = stats.ByStatus[string(models.SubmissionStatusPending)]
	stats.Approved = stats.ByStatus[string(models.SubmissionStatusApproved)]
	stats.Rejected = stats.ByStatus[string(models.SubmissionStatusRejected)]
	stats.Flagged = stats.ByStatus[string(models.SubmissionStatusFlagged)]
	return stats
}

func ComputeContractorStats(contractors []models.ContractorProfile) dtos.ContractorStats {
	stats := dtos.ContractorStats{Total: len(contractors)}
	for _, c := range contractors {
		if c.IsVerified {
			stats.Verified++
		}
		if c.IsCertified {
			stats.Certified++
		}
	}
	return stats
}

// ComputeLGAStats groups projects by local government area. A project
// spanning several areas is counted in each of them. The result is
// sorted by area name.
func ComputeLGAStats(projects []models.Project) []dtos.LGAStats {
	byLGA := make(map[string][]models.Project)
	for _, p := range projects {
		for _, lga := range p.LGA {
			byLGA[lga] = append(byLGA[lga], p)
		}
	}

	res := make([]dtos.LGAStats, 0, len(byLGA))
	for lga, group := range byLGA {
		stats := dtos.LGAStats{
			LGA:             lga,
			Projects:        len(group),
			AverageProgress: averageProgress(group),
		}
		for _, p := range group {
			if p.Status == models.ProjectStatusCompleted {
				stats.Completed++
			} else if isOngoing(p.Status) {
				stats.InProgress++
			}
			stats.TotalBudget = stats.TotalBudget.Add(p.Budget)
			stats.SpentBudget = stats.SpentBudget.Add(p.SpentBudget)
		}
		res = append(res, stats)
	}
	sort.Slice(res, func(i, j int) bool {
		return strings.ToLower(res[i].LGA) < strings.ToLower(res[j].LGA)
	})
	return res
}

func ComputeContractorPerformance(contractors []models.ContractorProfile, projects []models.Project, submissions []models.Submission) []dtos.ContractorPerformanceDTO {
	projectsByContractor := make(map[uuid.UUID][]models.Project)
	for _, p := range projects {
		if p.ContractorID != nil {
			projectsByContractor[*p.ContractorID] = append(projectsByContractor[*p.ContractorID], p)
		}
	}
	submissionsByContractor := make(map[uuid.UUID][]models.Submission)
	for _, s := range submissions {
		submissionsByContractor[s.ContractorID] = append(submissionsByContractor[s.ContractorID], s)
	}

	res := make([]dtos.ContractorPerformanceDTO, 0, len(contractors))
	for _, c := range contractors {
		own := projectsByContractor[c.ID]
		subs := ComputeSubmissionStats(submissionsByContractor[c.ID])
		perf := dtos.ContractorPerformanceDTO{
			ContractorID:        c.ID,
			CompanyName:         c.CompanyName,
			Rating:              c.Rating,
			IsVerified:          c.IsVerified,
			Projects:            len(own),
			CompletedProjects:   ComputeProjectStats(own).Completed,
			AverageProgress:     averageProgress(own),
			Submissions:         subs.Total,
			ApprovedSubmissions: subs.Approved,
			RejectedSubmissions: subs.Rejected,
		}
		if reviewed := subs.Approved + subs.Rejected; reviewed > 0 {
			perf.ApprovalRate = utils.RoundTwoDecimals(float64(subs.Approved) / float64(reviewed) * 100)
		}
		res = append(res, perf)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].AverageProgress > res[j].AverageProgress
	})
	return res
}

// BuildTimeline merges submissions and review decisions, newest first.
func BuildTimeline(submissions []models.Submission, approvals []models.Approval, limit int) []dtos.ActivityItem {
	items := make([]dtos.ActivityItem, 0, len(submissions)+len(approvals))
	for _, s := range submissions {
		items = append(items, dtos.ActivityItem{
			Kind:      "submission",
			ID:        s.ID,
			Title:     s.Title,
			Status:    string(s.Status),
			ProjectID: s.ProjectID,
			ActorID:   s.SubmittedBy,
			At:        s.SubmittedAt,
		})
	}
	for _, a := range approvals {
		items = append(items, dtos.ActivityItem{
			Kind:    "approval",
			ID:      a.ID,
			Title:   a.Action,
			Status:  string(a.Status),
			ActorID: a.ReviewerID,
			At:      a.CreatedAt,
		})
	}
	slices.SortStableFunc(items, func(a, b dtos.ActivityItem) int {
		return b.At.Compare(a.At)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (s *statisticsService) fetchAll(ctx context.Context) ([]models.Project, []models.Submission, []models.ContractorProfile, error) {
	var (
		projects    []models.Project
		submissions []models.Submission
		contractors []models.ContractorProfile
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = s.projectRepository.All()
		return err
	})
	g.Go(func() (err error) {
		submissions, err = s.submissionRepository.All()
		return err
	})
	g.Go(func() (err error) {
		contractors, err = s.contractorRepository.All()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch dashboard data").WithInternal(err)
	}
	return projects, submissions, contractors, nil
}

func (s *statisticsService) GetDashboardStats(ctx context.Context) (dtos.DashboardStats, error) {
	start := time.Now()
	defer func() {
		monitoring.DashboardComputationDuration.WithLabelValues("overview").Observe(time.Since(start).Seconds())
	}()

	projects, submissions, contractors, err := s.fetchAll(ctx)
	if err != nil {
		return dtos.DashboardStats{}, err
	}
	monitoring.DashboardProjectsAggregated.Set(float64(len(projects)))

	return dtos.DashboardStats{
		Projects:    ComputeProjectStats(projects),
		Budget:      ComputeBudgetStats(projects),
		Submissions: ComputeSubmissionStats(submissions),
		Contractors: ComputeContractorStats(contractors),
	}, nil
}

func (s *statisticsService) GetLGAStats(ctx context.Context) ([]dtos.LGAStats, error) {
	start := time.Now()
	defer func() {
		monitoring.DashboardComputationDuration.WithLabelValues("lga").Observe(time.Since(start).Seconds())
	}()

	projects, err := s.projectRepository.All()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch projects").WithInternal(err)
	}
	return ComputeLGAStats(projects), nil
}

func (s *statisticsService) GetRecentActivity(limit int) (dtos.RecentActivity, error) {
	if limit <= 0 || limit > shared.MaxPageLimit {
		limit = DefaultRecentActivityLimit
	}

	submissions, err := s.submissionRepository.Recent(limit)
	if err != nil {
		return dtos.RecentActivity{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch recent submissions").WithInternal(err)
	}
	approvals, err := s.approvalRepository.Recent(limit)
	if err != nil {
		return dtos.RecentActivity{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch recent approvals").WithInternal(err)
	}

	return dtos.RecentActivity{
		Submissions: submissions,
		Approvals:   approvals,
		Timeline:    BuildTimeline(submissions, approvals, limit),
	}, nil
}

func (s *statisticsService) GetContractorDashboard(ctx context.Context, userID uuid.UUID) (dtos.ContractorDashboard, error) {
	start := time.Now()
	defer func() {
		monitoring.DashboardComputationDuration.WithLabelValues("contractor").Observe(time.Since(start).Seconds())
	}()

	contractor, err := s.contractorRepository.FindByUserID(userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return dtos.ContractorDashboard{}, echo.NewHTTPError(http.StatusNotFound, "contractor profile not found")
		}
		return dtos.ContractorDashboard{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch contractor profile").WithInternal(err)
	}

	var (
		projects    []models.Project
		submissions []models.Submission
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = s.projectRepository.ListByContractor(contractor.ID)
		return err
	})
	g.Go(func() (err error) {
		submissions, err = s.submissionRepository.ListByContractor(contractor.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return dtos.ContractorDashboard{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch contractor data").WithInternal(err)
	}

	recent := submissions
	if recent == nil {
		recent = []models.Submission{}
	}
	if len(recent) > DefaultRecentActivityLimit {
		recent = recent[:DefaultRecentActivityLimit]
	}

	return dtos.ContractorDashboard{
		Contractor:  contractor,
		Projects:    ComputeProjectStats(projects),
		Budget:      ComputeBudgetStats(projects),
		Submissions: ComputeSubmissionStats(submissions),
		Recent:      recent,
	}, nil
}

func (s *statisticsService) GetContractorPerformance(ctx context.Context) ([]dtos.ContractorPerformanceDTO, error) {
	projects, submissions, contractors, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeContractorPerformance(contractors, projects, submissions), nil
}
