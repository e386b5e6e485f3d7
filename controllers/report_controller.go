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

package controllers

import (
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
)

type ReportController struct {
	reportService    shared.ReportService
	reportRepository shared.ReportRepository
}

func NewReportController(reportService shared.ReportService, reportRepository shared.ReportRepository) *ReportController {
	return &ReportController{
		reportService:    reportService,
		reportRepository: reportRepository,
	}
}

func (c *ReportController) List(ctx shared.Context) error {
	reportType, err := enumQuery(ctx, "type", models.AllReportTypes)
	if err != nil {
		return err
	}
	projectID, err := uuidQuery(ctx, "projectId")
	if err != nil {
		return err
	}
	generatedBy, err := uuidQuery(ctx, "generatedBy")
	if err != nil {
		return err
	}

	page, err := c.reportRepository.ListPaged(shared.GetPageInfo(ctx), shared.ReportFilter{
		Type:        reportType,
		ProjectID:   projectID,
		GeneratedBy: generatedBy,
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch reports").WithInternal(err)
	}
	return ctx.JSON(200, shared.OK(page))
}

// @Summary Generate a report snapshot
// @Param body body dtos.ReportGenerateRequest true "Request body"
// @Success 201 {object} models.Report
// @Router /reports/generate [post]
func (c *ReportController) Generate(ctx shared.Context) error {
	var req dtos.ReportGenerateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	report, err := c.reportService.Generate(ctx.Request().Context(), shared.GetSession(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(201, shared.OKWithMessage("report generated successfully", report))
}

func (c *ReportController) Read(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	report, err := c.reportRepository.Read(id)
	if err != nil {
		return readError(err, "report")
	}
	return ctx.JSON(200, shared.OK(report))
}

func (c *ReportController) Delete(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.reportRepository.Delete(nil, id); err != nil {
		return deleteError(err, "report")
	}
	return ctx.JSON(200, shared.OKWithMessage("report deleted successfully", nil))
}
