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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStringSet(t *testing.T) {
	t.Run("should drop blanks and duplicates while keeping the order", func(t *testing.T) {
		set := NewStringSet("Ikeja", " ", "Epe", "Ikeja", " Badagry ")
		assert.Equal(t, StringSet{"Ikeja", "Epe", "Badagry"}, set)
	})
}

func TestContainsAnyFold(t *testing.T) {
	set := NewStringSet("Ikeja", "Epe")
	assert.True(t, ContainsAnyFold(set, []string{"ikeja"}))
	assert.True(t, ContainsAnyFold(set, []string{"Surulere", "EPE"}))
	assert.False(t, ContainsAnyFold(set, []string{"Surulere"}))
	assert.False(t, ContainsAnyFold(StringSet{}, []string{"Epe"}))
}

func TestUserRole(t *testing.T) {
	assert.True(t, RoleMEOfficer.IsReviewer())
	assert.True(t, RoleGovernmentAdmin.IsReviewer())
	assert.False(t, RoleGovernmentOfficer.IsReviewer())
	assert.False(t, RoleContractor.IsReviewer())

	assert.True(t, UserRole("CONTRACTOR").IsValid())
	assert.False(t, UserRole("SUPERUSER").IsValid())
}

func TestApprovalHooksRejectMutation(t *testing.T) {
	a := &Approval{}
	assert.ErrorIs(t, a.BeforeUpdate(nil), ErrApprovalImmutable)
	assert.ErrorIs(t, a.BeforeDelete(nil), ErrApprovalImmutable)
}
