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

package shared

import "math"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	// MaxOffset bounds (page-1)*limit. Postgres takes a bigint offset, the
	// bound keeps the product from overflowing int.
	MaxOffset = math.MaxInt32
)

type PageInfo struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p PageInfo) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > MaxOffset/p.Limit {
		return MaxOffset
	}
	return (p.Page - 1) * p.Limit
}

// maxPage is the last page whose offset stays within MaxOffset.
func maxPage(limit int) int {
	return MaxOffset/limit + 1
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset(p.Offset()).Limit(p.Limit)
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type Paged[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func NewPaged[T any](pageInfo PageInfo, total int64, items []T) Paged[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if pageInfo.Limit > 0 {
		pages = int((total + int64(pageInfo.Limit) - 1) / int64(pageInfo.Limit))
	}
	return Paged[T]{
		Items: items,
		Pagination: Pagination{
			Page:  pageInfo.Page,
			Limit: pageInfo.Limit,
			Total: total,
			Pages: pages,
		},
	}
}

// Filter narrows the current page only. Total and pages keep the values
// counted by the database.
func (p Paged[T]) Filter(keep func(T) bool) Paged[T] {
	items := make([]T, 0, len(p.Items))
	for _, item := range p.Items {
		if keep(item) {
			items = append(items, item)
		}
	}
	return Paged[T]{
		Items:      items,
		Pagination: p.Pagination,
	}
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	items := make([]any, len(p.Items))
	for i, item := range p.Items {
		items[i] = f(item)
	}
	return Paged[any]{
		Items:      items,
		Pagination: p.Pagination,
	}
}
