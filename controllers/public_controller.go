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
	"github.com/infratrack-dev/infratrack/shared"
)

// PublicController serves the unauthenticated transparency portal.
type PublicController struct {
	publicService shared.PublicService
}

func NewPublicController(publicService shared.PublicService) *PublicController {
	return &PublicController{
		publicService: publicService,
	}
}

func (c *PublicController) ListProjects(ctx shared.Context) error {
	status, err := enumQuery(ctx, "status", models.AllProjectStatuses)
	if err != nil {
		return err
	}
	category, err := enumQuery(ctx, "category", models.AllProjectCategories)
	if err != nil {
		return err
	}

	page, err := c.publicService.ListProjects(shared.GetPageInfo(ctx), shared.ProjectFilter{
		Status:   status,
		Category: category,
	}, shared.GetInMemoryFilter(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(page))
}

func (c *PublicController) ReadProject(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	project, err := c.publicService.GetProject(id)
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(project))
}

func (c *PublicController) Stats(ctx shared.Context) error {
	stats, err := c.publicService.GetStats()
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(stats))
}

func (c *PublicController) LGAs(ctx shared.Context) error {
	lgas, err := c.publicService.ListLGAs()
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(lgas))
}
