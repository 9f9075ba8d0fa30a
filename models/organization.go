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

package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the database model for organizations. The API key is the
// sole authentication credential and is returned in cleartext exactly once,
// at creation time. IsAdmin is set at creation and never mutated.
type Organization struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	APIKey    string    `gorm:"column:api_key;uniqueIndex;not null"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:NOW()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:NOW()"`
}

// TableName returns the table name for GORM
func (Organization) TableName() string {
	return "organizations"
}

// ListOrganizationsParams carries validated list-query parameters from the
// controller into the store. SortBy holds an API field name; the store maps
// it to a column.
type ListOrganizationsParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}
