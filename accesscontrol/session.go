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

package accesscontrol

import (
	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/shared"
)

type session struct {
	userID uuid.UUID
	email  string
	role   models.UserRole
}

var _ shared.AuthSession = session{}

func NewSession(userID uuid.UUID, email string, role models.UserRole) shared.AuthSession {
	return session{
		userID: userID,
		email:  email,
		role:   role,
	}
}

func SessionFromClaims(claims *Claims) shared.AuthSession {
	// claims are validated by VerifyToken
	return NewSession(uuid.MustParse(claims.UserID), claims.Email, claims.Role)
}

func (s session) GetUserID() uuid.UUID {
	return s.userID
}

func (s session) GetEmail() string {
	return s.email
}

func (s session) GetRole() models.UserRole {
	return s.role
}
