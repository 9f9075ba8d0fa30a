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

// Create transactions table. Amounts use numeric(12,2) to keep currency
// values exact end to end.
var migration002 = migration{
	ID: 2,
	Migrate: func(db *gorm.DB) error {
		createTransactionsSQL := `
			CREATE TABLE transactions (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				organization_id UUID NOT NULL REFERENCES organizations(id),
				original_amount NUMERIC(12,2) NOT NULL CHECK (original_amount > 0),
				rounded_amount NUMERIC(12,2) NOT NULL,
				donation_amount NUMERIC(12,2) NOT NULL,
				metadata JSONB NOT NULL DEFAULT '{}',
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW()
			);

			CREATE INDEX idx_transactions_organization_id ON transactions(organization_id);
			CREATE INDEX idx_transactions_created_at ON transactions(created_at);
		`
		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createTransactionsSQL)
		})
	},
}
