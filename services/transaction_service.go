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

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/repositories"
	"github.com/wso2/roundup-donation-platform/roundup-service/utils"
)

// TransactionService defines the interface for transaction operations. List
// and report queries are implicitly scoped to the caller's organization
// unless the principal is admin.
type TransactionService interface {
	CreateTransaction(ctx context.Context, principal *models.Organization, originalAmount decimal.Decimal, metadata map[string]any) (*models.Transaction, error)
	GetTransaction(ctx context.Context, principal *models.Organization, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, principal *models.Organization, params models.ListTransactionsParams) ([]*models.Transaction, int64, error)
	ReportTransactions(ctx context.Context, principal *models.Organization, params models.ReportParams) (*models.TransactionReport, decimal.Decimal, error)
	UpdateTransactionMetadata(ctx context.Context, principal *models.Organization, id uuid.UUID, metadata map[string]any) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type transactionService struct {
	logger  *slog.Logger
	txnRepo repositories.TransactionRepository
}

// NewTransactionService creates a new transaction service instance
func NewTransactionService(logger *slog.Logger, txnRepo repositories.TransactionRepository) TransactionService {
	return &transactionService{
		logger:  logger,
		txnRepo: txnRepo,
	}
}

// CreateTransaction computes the round-up amounts and persists the
// transaction bound to the caller's own organization. The organization id is
// never caller-supplied.
func (s *transactionService) CreateTransaction(ctx context.Context, principal *models.Organization, originalAmount decimal.Decimal, metadata map[string]any) (*models.Transaction, error) {
	if !originalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: originalAmount must be a positive number", utils.ErrInvalidInput)
	}
	// Sub-cent amounts would round up to a full unit and push the donation
	// outside [0, 1).
	if !originalAmount.Equal(originalAmount.Truncate(2)) {
		return nil, fmt.Errorf("%w: originalAmount must have at most two decimal places", utils.ErrInvalidInput)
	}

	rounded, donation := RoundUp(originalAmount)
	if metadata == nil {
		metadata = map[string]any{}
	}
	txn := &models.Transaction{
		ID:             uuid.New(),
		OrganizationID: principal.ID,
		OriginalAmount: originalAmount,
		RoundedAmount:  rounded,
		DonationAmount: donation,
		Metadata:       datatypes.JSONMap(metadata),
	}
	if err := s.txnRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	s.logger.Info("Created transaction",
		"id", txn.ID,
		"organizationId", txn.OrganizationID,
		"donationAmount", txn.DonationAmount,
	)
	return txn, nil
}

// GetTransaction fetches a transaction by id. For non-admin callers the
// lookup behaves as if scoped to their organization: a transaction owned by
// someone else is indistinguishable from one that does not exist.
func (s *transactionService) GetTransaction(ctx context.Context, principal *models.Organization, id uuid.UUID) (*models.Transaction, error) {
	txn, err := s.txnRepo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	if !principal.IsAdmin && txn.OrganizationID != principal.ID {
		return nil, utils.ErrTransactionNotFound
	}
	return txn, nil
}

func scopeToPrincipal(principal *models.Organization, orgID *uuid.UUID) *uuid.UUID {
	if principal.IsAdmin {
		return orgID
	}
	id := principal.ID
	return &id
}

// ListTransactions returns one page of transactions within the caller's scope
func (s *transactionService) ListTransactions(ctx context.Context, principal *models.Organization, params models.ListTransactionsParams) ([]*models.Transaction, int64, error) {
	params.OrganizationID = scopeToPrincipal(principal, params.OrganizationID)
	return s.txnRepo.ListTransactions(ctx, params)
}

// ReportTransactions aggregates the caller's scope and derives the average
// donation, defined as zero when there are no transactions.
func (s *transactionService) ReportTransactions(ctx context.Context, principal *models.Organization, params models.ReportParams) (*models.TransactionReport, decimal.Decimal, error) {
	params.OrganizationID = scopeToPrincipal(principal, params.OrganizationID)
	report, err := s.txnRepo.ReportTransactions(ctx, params)
	if err != nil {
		return nil, decimal.Zero, err
	}
	average := decimal.Zero
	if report.TotalTransactions > 0 {
		average = report.TotalDonations.DivRound(decimal.NewFromInt(report.TotalTransactions), 2)
	}
	return report, average, nil
}

// UpdateTransactionMetadata replaces the metadata of a transaction the caller
// owns (or any transaction, for admins). Unlike GetTransaction, a foreign
// transaction is reported as forbidden rather than missing.
func (s *transactionService) UpdateTransactionMetadata(ctx context.Context, principal *models.Organization, id uuid.UUID, metadata map[string]any) (*models.Transaction, error) {
	txn, err := s.txnRepo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	if !principal.IsAdmin && txn.OrganizationID != principal.ID {
		return nil, utils.ErrForbidden
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	return s.txnRepo.UpdateTransactionMetadata(ctx, id, datatypes.JSONMap(metadata))
}

// DeleteTransaction removes a transaction (admin-gated at the routing layer)
func (s *transactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if err := s.txnRepo.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Deleted transaction", "id", id)
	return nil
}
