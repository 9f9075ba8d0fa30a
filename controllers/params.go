// Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package controllers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// parsePagination reads page and limit. Non-integer values are rejected;
// out-of-range values are clamped into [1, maxLimit].
func parsePagination(query url.Values) (page, limit int, err error) {
	page = defaultPage
	limit = defaultLimit

	if raw := query.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("page must be an integer, got %q", raw)
		}
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("limit must be an integer, got %q", raw)
		}
	}

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit, nil
}

// parseSort validates sortBy against the per-resource allow-list and
// sortOrder against {asc, desc}. Validation happens before any query runs.
func parseSort(query url.Values, allowed map[string]bool, defaultSortBy string) (sortBy, sortOrder string, err error) {
	sortBy = query.Get("sortBy")
	if sortBy == "" {
		sortBy = defaultSortBy
	} else if !allowed[sortBy] {
		return "", "", fmt.Errorf("sortBy must be one of the allowed fields, got %q", sortBy)
	}

	sortOrder = query.Get("sortOrder")
	switch sortOrder {
	case "":
		sortOrder = "desc"
	case "asc", "desc":
	default:
		return "", "", fmt.Errorf("sortOrder must be asc or desc, got %q", sortOrder)
	}
	return sortBy, sortOrder, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(raw string) (time.Time, bool, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, layout == "2006-01-02", nil
		}
	}
	return time.Time{}, false, fmt.Errorf("invalid date %q", raw)
}

// parseDateRange reads the optional startDate/endDate pair. Either both are
// present and valid, or neither. The range is inclusive; a date-only end is
// extended to the end of that day.
func parseDateRange(query url.Values) (*time.Time, *time.Time, error) {
	rawStart := query.Get("startDate")
	rawEnd := query.Get("endDate")
	if rawStart == "" && rawEnd == "" {
		return nil, nil, nil
	}
	if rawStart == "" || rawEnd == "" {
		return nil, nil, fmt.Errorf("startDate and endDate must be supplied together")
	}

	start, _, err := parseDate(rawStart)
	if err != nil {
		return nil, nil, err
	}
	end, dateOnly, err := parseDate(rawEnd)
	if err != nil {
		return nil, nil, err
	}
	if dateOnly {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	if end.Before(start) {
		return nil, nil, fmt.Errorf("endDate must not be before startDate")
	}
	return &start, &end, nil
}
