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
	"github.com/infratrack-dev/infratrack/database"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/transformer"
	"github.com/labstack/echo/v4"
)

type ContractorController struct {
	contractorRepository shared.ContractorRepository
	userRepository       shared.UserRepository
	projectRepository    shared.ProjectRepository
}

func NewContractorController(contractorRepository shared.ContractorRepository, userRepository shared.UserRepository, projectRepository shared.ProjectRepository) *ContractorController {
	return &ContractorController{
		contractorRepository: contractorRepository,
		userRepository:       userRepository,
		projectRepository:    projectRepository,
	}
}

func (c *ContractorController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx)
	page, err := c.contractorRepository.ListPaged(pageInfo, shared.ContractorFilter{
		IsVerified:  shared.GetBoolQuery(ctx, "isVerified"),
		IsCertified: shared.GetBoolQuery(ctx, "isCertified"),
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch contractors").WithInternal(err)
	}

	// narrows the current page only, the pagination keeps the database count
	inMemory := shared.GetInMemoryFilter(ctx)
	page = page.Filter(func(contractor models.ContractorProfile) bool {
		return inMemory.MatchesSearch(contractor.CompanyName, contractor.RegistrationNo) &&
			inMemory.MatchesSpecialization(contractor.Specialization)
	})

	return ctx.JSON(200, shared.OK(page))
}

func (c *ContractorController) Read(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	contractor, err := c.contractorRepository.ReadWithUser(id)
	if err != nil {
		return readError(err, "contractor")
	}
	return ctx.JSON(200, shared.OK(contractor))
}

func (c *ContractorController) Projects(ctx shared.Context) error {
	contractor, err := c.readOwned(ctx)
	if err != nil {
		return err
	}

	projects, err := c.projectRepository.ListByContractor(contractor.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch projects").WithInternal(err)
	}
	return ctx.JSON(200, shared.OK(projects))
}

func (c *ContractorController) Create(ctx shared.Context) error {
	var req dtos.ContractorCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	user, err := c.userRepository.Read(req.UserID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(400, "user does not exist").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not fetch user").WithInternal(err)
	}
	if user.Role != models.RoleContractor {
		return echo.NewHTTPError(400, "user is not a contractor")
	}

	if _, err := c.contractorRepository.FindByUserID(user.ID); err == nil {
		return echo.NewHTTPError(409, "user already has a contractor profile")
	} else if !repositories.IsNotFound(err) {
		return echo.NewHTTPError(500, "could not check contractor profile").WithInternal(err)
	}

	contractor := transformer.ContractorCreateRequestToModel(req)
	if err := c.contractorRepository.Create(nil, &contractor); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "contractor with this registration number already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create contractor").WithInternal(err)
	}
	return ctx.JSON(201, shared.OKWithMessage("contractor created successfully", contractor))
}

// Update is open to administrators and the contractor owning the profile.
// Only administrators may set the rating.
func (c *ContractorController) Update(ctx shared.Context) error {
	contractor, err := c.readOwned(ctx)
	if err != nil {
		return err
	}

	var req dtos.ContractorPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	isAdmin := shared.GetSession(ctx).GetRole() == models.RoleGovernmentAdmin
	if transformer.ApplyContractorPatchRequestToModel(req, &contractor, isAdmin) {
		if err := c.contractorRepository.Save(nil, &contractor); err != nil {
			return echo.NewHTTPError(500, "could not update contractor").WithInternal(err)
		}
	}
	return ctx.JSON(200, shared.OKWithMessage("contractor updated successfully", contractor))
}

func (c *ContractorController) Verify(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dtos.ContractorVerifyRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	contractor, err := c.contractorRepository.Read(id)
	if err != nil {
		return readError(err, "contractor")
	}

	if transformer.ApplyContractorVerifyRequestToModel(req, &contractor) {
		if err := c.contractorRepository.Save(nil, &contractor); err != nil {
			return echo.NewHTTPError(500, "could not update contractor").WithInternal(err)
		}
	}
	return ctx.JSON(200, shared.OKWithMessage("contractor verification updated", contractor))
}

func (c *ContractorController) Delete(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.contractorRepository.Delete(nil, id); err != nil {
		return deleteError(err, "contractor")
	}
	return ctx.JSON(200, shared.OKWithMessage("contractor deleted successfully", nil))
}

// readOwned loads the contractor from the path. Contractors may only
// access their own profile.
func (c *ContractorController) readOwned(ctx shared.Context) (models.ContractorProfile, error) {
	id, err := idParam(ctx, "id")
	if err != nil {
		return models.ContractorProfile{}, err
	}

	contractor, err := c.contractorRepository.Read(id)
	if err != nil {
		return models.ContractorProfile{}, readError(err, "contractor")
	}

	session := shared.GetSession(ctx)
	if session.GetRole() == models.RoleContractor && contractor.UserID != session.GetUserID() {
		return models.ContractorProfile{}, echo.NewHTTPError(403, "you can only access your own contractor profile")
	}
	return contractor, nil
}
