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
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func init() {
	// amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// StringSet is persisted as a jsonb array. Use NewStringSet to drop
// duplicates and blanks.
type StringSet = datatypes.JSONSlice[string]

func NewStringSet(values ...string) StringSet {
	seen := make(map[string]struct{}, len(values))
	res := make(StringSet, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

// ContainsAnyFold reports whether the set shares at least one element with
// the candidates, ignoring case.
func ContainsAnyFold(set StringSet, candidates []string) bool {
	for _, s := range set {
		for _, c := range candidates {
			if strings.EqualFold(s, c) {
				return true
			}
		}
	}
	return false
}
