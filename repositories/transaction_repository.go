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

package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/utils"
)

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, params models.ListTransactionsParams) ([]*models.Transaction, int64, error)
	ReportTransactions(ctx context.Context, params models.ReportParams) (*models.TransactionReport, error)
	UpdateTransactionMetadata(ctx context.Context, id uuid.UUID, metadata datatypes.JSONMap) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

var transactionSortColumns = map[string]string{
	"createdAt":      "created_at",
	"originalAmount": "original_amount",
	"roundedAmount":  "rounded_amount",
	"donationAmount": "donation_amount",
}

// TransactionRepo implements TransactionRepository using GORM
type TransactionRepo struct {
	db *gorm.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &TransactionRepo{db: db}
}

// CreateTransaction inserts a new transaction
func (r *TransactionRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now
	return r.db.WithContext(ctx).Create(txn).Error
}

// GetTransactionByID retrieves a transaction by ID
func (r *TransactionRepo) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func applyTransactionScope(query *gorm.DB, orgID *uuid.UUID, start, end *time.Time) *gorm.DB {
	if orgID != nil {
		query = query.Where("organization_id = ?", *orgID)
	}
	if start != nil && end != nil {
		query = query.Where("created_at >= ? AND created_at <= ?", *start, *end)
	}
	return query
}

// ListTransactions retrieves one page of transactions with the total count
// for the same filter
func (r *TransactionRepo) ListTransactions(ctx context.Context, params models.ListTransactionsParams) ([]*models.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Transaction{})
	query = applyTransactionScope(query, params.OrganizationID, params.StartDate, params.EndDate)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := transactionSortColumns[params.SortBy]
	if !ok {
		column = "created_at"
	}
	order := "DESC"
	if params.SortOrder == "asc" {
		order = "ASC"
	}

	var transactions []*models.Transaction
	err := query.Order(column + " " + order).
		Limit(params.Limit).
		Offset((params.Page - 1) * params.Limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

// ReportTransactions aggregates count and donation sum over the scoped set.
// The sum is coalesced to zero so an empty scope never yields NULL.
func (r *TransactionRepo) ReportTransactions(ctx context.Context, params models.ReportParams) (*models.TransactionReport, error) {
	query := r.db.WithContext(ctx).Model(&models.Transaction{})
	query = applyTransactionScope(query, params.OrganizationID, params.StartDate, params.EndDate)

	var result struct {
		Count int64
		Total decimal.Decimal
	}
	err := query.
		Select("COUNT(*) AS count, COALESCE(SUM(donation_amount), 0) AS total").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &models.TransactionReport{
		TotalTransactions: result.Count,
		TotalDonations:    result.Total,
	}, nil
}

// UpdateTransactionMetadata replaces the metadata of a transaction. The
// amount columns are never touched here.
func (r *TransactionRepo) UpdateTransactionMetadata(ctx context.Context, id uuid.UUID, metadata datatypes.JSONMap) (*models.Transaction, error) {
	res := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"metadata":   metadata,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrTransactionNotFound
	}

	var txn models.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// DeleteTransaction removes a transaction
func (r *TransactionRepo) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrTransactionNotFound
	}
	return nil
}
