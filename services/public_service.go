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
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/transformer"
	"github.com/labstack/echo/v4"
)

const (
	publicStatsKey = "stats"
	publicLGAsKey  = "lgas"
)

type publicService struct {
	projectRepository shared.ProjectRepository
	cache             *expirable.LRU[string, any]
}

var _ shared.PublicService = &publicService{}

func NewPublicService(projectRepository shared.ProjectRepository, cfg shared.Config) *publicService {
	return newPublicService(projectRepository, cfg.PublicStatsTTL)
}

func newPublicService(projectRepository shared.ProjectRepository, ttl time.Duration) *publicService {
	return &publicService{
		projectRepository: projectRepository,
		cache:             expirable.NewLRU[string, any](8, nil, ttl),
	}
}

func (s *publicService) ListProjects(pageInfo shared.PageInfo, filter shared.ProjectFilter, inMemory shared.InMemoryFilter) (shared.Paged[dtos.PublicProjectDTO], error) {
	isPublic := true
	filter.IsPublic = &isPublic
	filter.ContractorID = nil

	page, err := s.projectRepository.ListPaged(pageInfo, filter)
	if err != nil {
		return shared.Paged[dtos.PublicProjectDTO]{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch projects").WithInternal(err)
	}
	if !inMemory.IsEmpty() {
		page = page.Filter(func(p models.Project) bool {
			return MatchesProject(p, inMemory)
		})
	}

	items := make([]dtos.PublicProjectDTO, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, transformer.ProjectToPublicDTO(p))
	}
	return shared.Paged[dtos.PublicProjectDTO]{
		Items:      items,
		Pagination: page.Pagination,
	}, nil
}

// GetProject returns 404 for projects which are not public so their
// existence is not revealed.
func (s *publicService) GetProject(id uuid.UUID) (dtos.PublicProjectDTO, error) {
	project, err := s.projectRepository.ReadWithRelations(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return dtos.PublicProjectDTO{}, echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return dtos.PublicProjectDTO{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch project").WithInternal(err)
	}
	if !project.IsPublic {
		return dtos.PublicProjectDTO{}, echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	return transformer.ProjectToPublicDTO(project), nil
}

func (s *publicService) GetStats() (dtos.PublicStats, error) {
	if cached, ok := s.cache.Get(publicStatsKey); ok {
		monitoring.PublicStatsCacheHit.Inc()
		return cached.(dtos.PublicStats), nil
	}
	monitoring.PublicStatsCacheMiss.Inc()

	projects, err := s.projectRepository.ListPublic()
	if err != nil {
		return dtos.PublicStats{}, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch projects").WithInternal(err)
	}

	projectStats := ComputeProjectStats(projects)
	stats := dtos.PublicStats{
		TotalProjects:     projectStats.Total,
		CompletedProjects: projectStats.Completed,
		OngoingProjects:   projectStats.InProgress,
		TotalBudget:       ComputeBudgetStats(projects).TotalBudget,
		AverageProgress:   projectStats.AverageProgress,
		ByCategory:        projectStats.ByCategory,
		LGAs:              len(ComputeLGAStats(projects)),
	}
	s.cache.Add(publicStatsKey, stats)
	return stats, nil
}

func (s *publicService) ListLGAs() ([]dtos.LGAStats, error) {
	if cached, ok := s.cache.Get(publicLGAsKey); ok {
		monitoring.PublicStatsCacheHit.Inc()
		return cached.([]dtos.LGAStats), nil
	}
	monitoring.PublicStatsCacheMiss.Inc()

	projects, err := s.projectRepository.ListPublic()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "could not fetch projects").WithInternal(err)
	}
	lgas := ComputeLGAStats(projects)
	s.cache.Add(publicLGAsKey, lgas)
	return lgas, nil
}
