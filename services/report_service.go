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
	"encoding/json"
	"net/http"
	"time"

	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type reportService struct {
	reportRepository     shared.ReportRepository
	projectRepository    shared.ProjectRepository
	submissionRepository shared.SubmissionRepository
	statisticsService    shared.StatisticsService
	now                  func() time.Time
}

var _ shared.ReportService = &reportService{}

func NewReportService(reportRepository shared.ReportRepository, projectRepository shared.ProjectRepository, submissionRepository shared.SubmissionRepository, statisticsService shared.StatisticsService) *reportService {
	return &reportService{
		reportRepository:     reportRepository,
		projectRepository:    projectRepository,
		submissionRepository: submissionRepository,
		statisticsService:    statisticsService,
		now:                  time.Now,
	}
}

type projectSummary struct {
	Project     models.Project       `json:"project"`
	Submissions dtos.SubmissionStats `json:"submissions"`
	Budget      dtos.BudgetStats     `json:"budget"`
}

type budgetLine struct {
	ProjectID       string          `json:"projectId"`
	Name            string          `json:"name"`
	Budget          decimal.Decimal `json:"budget"`
	AllocatedBudget decimal.Decimal `json:"allocatedBudget"`
	SpentBudget     decimal.Decimal `json:"spentBudget"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
}

type financialReport struct {
	Totals   dtos.BudgetStats `json:"totals"`
	Projects []budgetLine     `json:"projects"`
}

// Generate computes a snapshot of the requested figures and stores it.
// Reports are never recomputed afterwards.
func (s *reportService) Generate(ctx context.Context, actor shared.AuthSession, req dtos.ReportGenerateRequest) (models.Report, error) {
	data, err := s.collect(ctx, req)
	if err != nil {
		return models.Report{}, err
	}

	dataJSON, err := json.Marshal(data)
	if err != nil {
		return models.Report{}, echo.NewHTTPError(http.StatusInternalServerError, "could not encode report").WithInternal(err)
	}
	parameters := req.Parameters
	if parameters == nil {
		parameters = map[string]any{}
	}
	paramsJSON, err := json.Marshal(parameters)
	if err != nil {
		return models.Report{}, echo.NewHTTPError(http.StatusBadRequest, "invalid report parameters").WithInternal(err)
	}

	title := req.Title
	if title == "" {
		title = string(req.Type) + " " + s.now().Format(time.DateOnly)
	}

	report := models.Report{
		Title:       title,
		Type:        req.Type,
		ProjectID:   req.ProjectID,
		GeneratedBy: actor.GetUserID(),
		Parameters:  datatypes.JSON(paramsJSON),
		Data:        datatypes.JSON(dataJSON),
	}
	if err := s.reportRepository.Create(nil, &report); err != nil {
		return models.Report{}, echo.NewHTTPError(http.StatusInternalServerError, "could not save report").WithInternal(err)
	}

	monitoring.ReportGeneratedAmount.WithLabelValues(string(req.Type)).Inc()
	return report, nil
}

func (s *reportService) collect(ctx context.Context, req dtos.ReportGenerateRequest) (any, error) {
	switch req.Type {
	case models.ReportTypeProjectSummary:
		if req.ProjectID == nil {
			return s.statisticsService.GetDashboardStats(ctx)
		}
		return s.projectSummary(req)
	case models.ReportTypeFinancial:
		return s.financial()
	case models.ReportTypeContractorPerformance:
		return s.statisticsService.GetContractorPerformance(ctx)
	case models.ReportTypeLGASummary:
		return s.statisticsService.GetLGAStats(ctx)
	default:
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unknown report type")
	}
}

func (s *reportService) projectSummary(req dtos.ReportGenerateRequest) (projectSummary, error) {
	project, err := s.projectRepository.ReadWithRelations(*req.ProjectID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return projectSummary{}, echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return projectSummary{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch project").WithInternal(err)
	}

	submissions, err := s.submissionRepository.ListByProject(project.ID)
	if err != nil {
		return projectSummary{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch submissions").WithInternal(err)
	}

	return projectSummary{
		Project:     project,
		Submissions: ComputeSubmissionStats(submissions),
		Budget:      ComputeBudgetStats([]models.Project{project}),
	}, nil
}

func (s *reportService) financial() (financialReport, error) {
	projects, err := s.projectRepository.All()
	if err != nil {
		return financialReport{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch projects").WithInternal(err)
	}

	lines := make([]budgetLine, 0, len(projects))
	for _, p := range projects {
		lines = append(lines, budgetLine{
			ProjectID:       p.ID.String(),
			Name:            p.Name,
			Budget:          p.Budget,
			AllocatedBudget: p.AllocatedBudget,
			SpentBudget:     p.SpentBudget,
			RemainingBudget: p.Budget.Sub(p.SpentBudget),
		})
	}
	return financialReport{
		Totals:   ComputeBudgetStats(projects),
		Projects: lines,
	}, nil
}
