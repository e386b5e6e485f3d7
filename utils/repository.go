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

package utils

import "gorm.io/gorm/clause"

type Tabler interface {
	TableName() string
}

type Repository[ID any, T Tabler, Tx any] interface {
	All() ([]T, error)
	Create(tx Tx, t *T) error
	Save(tx Tx, t *T) error
	Read(id ID) (T, error)
	Delete(tx Tx, id ID) error
	List(ids []ID) ([]T, error)
	Upsert(t *[]*T, conflictingColumns []clause.Column, updateOnly []string) error
	Transaction(func(tx Tx) error) error
	GetDB(tx Tx) Tx
}
