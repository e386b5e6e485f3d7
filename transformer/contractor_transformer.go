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

package transformer

import (
	"strings"

	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
)

func ContractorCreateRequestToModel(req dtos.ContractorCreateRequest) models.ContractorProfile {
	return models.ContractorProfile{
		UserID:            req.UserID,
		CompanyName:       strings.TrimSpace(req.CompanyName),
		RegistrationNo:    strings.TrimSpace(req.RegistrationNo),
		Address:           req.Address,
		Phone:             req.Phone,
		Specialization:    models.NewStringSet(req.Specialization...),
		YearsOfExperience: req.YearsOfExperience,
	}
}

// ApplyContractorPatchRequestToModel applies owner editable fields.
// Rating is only applied when allowRating is set.
func ApplyContractorPatchRequestToModel(patch dtos.ContractorPatchRequest, contractor *models.ContractorProfile, allowRating bool) bool {
	updated := false
	if patch.CompanyName != nil {
		contractor.CompanyName = strings.TrimSpace(*patch.CompanyName)
		updated = true
	}
	if patch.Address != nil {
		contractor.Address = patch.Address
		updated = true
	}
	if patch.Phone != nil {
		contractor.Phone = patch.Phone
		updated = true
	}
	if patch.Specialization != nil {
		contractor.Specialization = models.NewStringSet(*patch.Specialization...)
		updated = true
	}
	if patch.YearsOfExperience != nil {
		contractor.YearsOfExperience = *patch.YearsOfExperience
		updated = true
	}
	if allowRating && patch.Rating != nil {
		contractor.Rating = *patch.Rating
		updated = true
	}
	return updated
}

func ApplyContractorVerifyRequestToModel(req dtos.ContractorVerifyRequest, contractor *models.ContractorProfile) bool {
	updated := false
	if req.IsVerified != nil {
		contractor.IsVerified = *req.IsVerified
		updated = true
	}
	if req.IsCertified != nil {
		contractor.IsCertified = *req.IsCertified
		updated = true
	}
	return updated
}
