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

package dbmigrations

import (
	"gorm.io/gorm"
)

// Create organizations table. Name and API key uniqueness is enforced by the
// database, not re-checked in process.
var migration001 = migration{
	ID: 1,
	Migrate: func(db *gorm.DB) error {
		createOrganizationsSQL := `
			CREATE TABLE organizations (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(100) NOT NULL UNIQUE,
				api_key VARCHAR(64) NOT NULL UNIQUE,
				is_admin BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW()
			);

			CREATE INDEX idx_organizations_api_key ON organizations(api_key);
			CREATE INDEX idx_organizations_name ON organizations(name);
		`
		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createOrganizationsSQL)
		})
	},
}
