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
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Transaction is the database model for purchase transactions. The three
// amount fields are computed at creation and immutable thereafter; only
// Metadata may change.
type Transaction struct {
	ID             uuid.UUID         `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID uuid.UUID         `gorm:"column:organization_id;type:uuid;not null;index"`
	OriginalAmount decimal.Decimal   `gorm:"column:original_amount;type:numeric(12,2);not null"`
	RoundedAmount  decimal.Decimal   `gorm:"column:rounded_amount;type:numeric(12,2);not null"`
	DonationAmount decimal.Decimal   `gorm:"column:donation_amount;type:numeric(12,2);not null"`
	Metadata       datatypes.JSONMap `gorm:"column:metadata;type:jsonb;not null;default:'{}'"`
	CreatedAt      time.Time         `gorm:"column:created_at;not null;default:NOW();index"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;not null;default:NOW()"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// ListTransactionsParams carries validated list-query parameters into the
// store. OrganizationID nil means unscoped (admin callers only).
type ListTransactionsParams struct {
	OrganizationID *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	Page           int
	Limit          int
	SortBy         string
	SortOrder      string
}

// ReportParams scopes the aggregation query.
type ReportParams struct {
	OrganizationID *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
}

// TransactionReport is the aggregation result over the scoped transactions.
type TransactionReport struct {
	TotalTransactions int64
	TotalDonations    decimal.Decimal
}
