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

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newQueryContext(query string) Context {
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetPageInfo(t *testing.T) {
	t.Run("should default to the first page with ten items", func(t *testing.T) {
		assert.Equal(t, PageInfo{Page: 1, Limit: 10}, GetPageInfo(newQueryContext("")))
	})

	t.Run("should cap the limit", func(t *testing.T) {
		assert.Equal(t, PageInfo{Page: 3, Limit: 100}, GetPageInfo(newQueryContext("page=3&limit=500")))
	})

	t.Run("should fall back to defaults on garbage", func(t *testing.T) {
		assert.Equal(t, PageInfo{Page: 1, Limit: 10}, GetPageInfo(newQueryContext("page=-2&limit=abc")))
	})

	t.Run("should compute the offset", func(t *testing.T) {
		assert.Equal(t, 40, PageInfo{Page: 3, Limit: 20}.Offset())
	})

	t.Run("should clamp huge pages so the offset cannot overflow", func(t *testing.T) {
		pageInfo := GetPageInfo(newQueryContext("page=922337203685477590&limit=10"))

		assert.Equal(t, MaxOffset/10+1, pageInfo.Page)
		assert.GreaterOrEqual(t, pageInfo.Offset(), 0)
		assert.LessOrEqual(t, pageInfo.Offset(), MaxOffset)
	})

	t.Run("should fall back to the first page if the number does not fit into an int", func(t *testing.T) {
		assert.Equal(t, PageInfo{Page: 1, Limit: 10}, GetPageInfo(newQueryContext("page=99999999999999999999999")))
	})

	t.Run("should saturate the offset of a page built by hand", func(t *testing.T) {
		assert.Equal(t, MaxOffset, PageInfo{Page: math.MaxInt, Limit: 100}.Offset())
		assert.Equal(t, 0, PageInfo{Page: 0, Limit: 10}.Offset())
	})
}

func TestPaged(t *testing.T) {
	t.Run("should round pages up", func(t *testing.T) {
		paged := NewPaged(PageInfo{Page: 1, Limit: 10}, 21, []int{1})
		assert.Equal(t, 3, paged.Pagination.Pages)
	})

	t.Run("should never serialize nil items", func(t *testing.T) {
		paged := NewPaged[int](PageInfo{Page: 1, Limit: 10}, 0, nil)
		assert.NotNil(t, paged.Items)
		assert.Equal(t, 0, paged.Pagination.Pages)
	})

	t.Run("should keep the database count when filtering the page", func(t *testing.T) {
		paged := NewPaged(PageInfo{Page: 1, Limit: 4}, 12, []int{1, 2, 3, 4})

		filtered := paged.Filter(func(i int) bool { return i%2 == 0 })

		assert.Equal(t, []int{2, 4}, filtered.Items)
		assert.Equal(t, int64(12), filtered.Pagination.Total)
		assert.Equal(t, 3, filtered.Pagination.Pages)
	})
}

func TestInMemoryFilter(t *testing.T) {
	t.Run("should parse the comma separated lga list", func(t *testing.T) {
		filter := GetInMemoryFilter(newQueryContext("search=road&lga=Ikeja,%20Epe&specialization="))

		assert.Equal(t, "road", filter.Search)
		assert.Equal(t, []string{"Ikeja", "Epe"}, filter.LGAs)
		assert.Nil(t, filter.Specialization)
		assert.False(t, filter.IsEmpty())
	})

	t.Run("should match search case insensitively over all fields", func(t *testing.T) {
		filter := InMemoryFilter{Search: "BRIDGE"}

		assert.True(t, filter.MatchesSearch("Ring Road", "new bridge over the lagoon"))
		assert.False(t, filter.MatchesSearch("Ring Road", "asphalt"))
	})

	t.Run("should match any of the requested lgas", func(t *testing.T) {
		filter := InMemoryFilter{LGAs: []string{"epe", "Badagry"}}

		assert.True(t, filter.MatchesLGA([]string{"Ikeja", "Epe"}))
		assert.False(t, filter.MatchesLGA([]string{"Ikeja"}))
		assert.True(t, InMemoryFilter{}.MatchesLGA(nil))
	})
}

func TestGetBoolQuery(t *testing.T) {
	ctx := newQueryContext("isActive=false&isVerified=maybe")

	assert.Equal(t, false, *GetBoolQuery(ctx, "isActive"))
	assert.Nil(t, GetBoolQuery(ctx, "isVerified"))
	assert.Nil(t, GetBoolQuery(ctx, "isCertified"))
}
