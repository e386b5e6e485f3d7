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

package repositories

import (
	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/utils"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Report, *gorm.DB]
}

func NewReportRepository(db *gorm.DB) *reportRepository {
	return &reportRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Report](db),
	}
}

// ListPaged leaves out the report data, which can get large.
func (r *reportRepository) ListPaged(pageInfo shared.PageInfo, filter shared.ReportFilter) (shared.Paged[models.Report], error) {
	return paginate[models.Report](r.db, pageInfo, func(q *gorm.DB) *gorm.DB {
		q = q.Omit("data")
		if filter.Type != nil {
			q = q.Where("type = ?", *filter.Type)
		}
		if filter.ProjectID != nil {
			q = q.Where("project_id = ?", *filter.ProjectID)
		}
		if filter.GeneratedBy != nil {
			q = q.Where("generated_by = ?", *filter.GeneratedBy)
		}
		return q
	}, "created_at DESC")
}
