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
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wso2/roundup-donation-platform/roundup-service/middleware/apikeyauth"
	"github.com/wso2/roundup-donation-platform/roundup-service/middleware/logger"
	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/services"
	"github.com/wso2/roundup-donation-platform/roundup-service/spec"
	"github.com/wso2/roundup-donation-platform/roundup-service/utils"
)

// TransactionController defines the interface for transaction HTTP handlers
type TransactionController interface {
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	ReportTransactions(w http.ResponseWriter, r *http.Request)
	UpdateTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
}

var transactionSortFields = map[string]bool{
	"createdAt":      true,
	"originalAmount": true,
	"roundedAmount":  true,
	"donationAmount": true,
}

type transactionController struct {
	txnService services.TransactionService
}

// NewTransactionController creates a new transaction controller instance
func NewTransactionController(txnService services.TransactionService) TransactionController {
	return &transactionController{txnService: txnService}
}

// CreateTransaction handles POST /transactions. The server computes the
// rounded and donation amounts; the request only carries the original amount
// and optional metadata.
func (c *transactionController) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req spec.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to parse request body", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OriginalAmount == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "originalAmount is required")
		return
	}

	principal := apikeyauth.GetOrganization(ctx)
	txn, err := c.txnService.CreateTransaction(ctx, principal, *req.OriginalAmount, req.Metadata)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("Failed to create transaction", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusCreated, spec.TransactionData{
		Transaction: utils.ConvertToTransactionResponse(txn),
	})
}

// GetTransaction handles GET /transactions/{id}
func (c *transactionController) GetTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	principal := apikeyauth.GetOrganization(ctx)
	txn, err := c.txnService.GetTransaction(ctx, principal, id)
	if err != nil {
		if errors.Is(err, utils.ErrTransactionNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Error("Failed to get transaction", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get transaction")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.TransactionData{
		Transaction: utils.ConvertToTransactionResponse(txn),
	})
}

// parseOrganizationFilter reads the optional organizationId query parameter.
// Non-admin callers are scoped at the service layer regardless of its value.
func parseOrganizationFilter(query string) (*uuid.UUID, error) {
	if query == "" {
		return nil, nil
	}
	id, err := uuid.Parse(query)
	if err != nil {
		return nil, errors.New("invalid organizationId filter")
	}
	return &id, nil
}

// ListTransactions handles GET /transactions with pagination, sorting and an
// optional date range.
func (c *transactionController) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	query := r.URL.Query()

	page, limit, err := parsePagination(query)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	sortBy, sortOrder, err := parseSort(query, transactionSortFields, "createdAt")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	start, end, err := parseDateRange(query)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	orgID, err := parseOrganizationFilter(query.Get("organizationId"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	principal := apikeyauth.GetOrganization(ctx)
	txns, total, err := c.txnService.ListTransactions(ctx, principal, models.ListTransactionsParams{
		OrganizationID: orgID,
		StartDate:      start,
		EndDate:        end,
		Page:           page,
		Limit:          limit,
		SortBy:         sortBy,
		SortOrder:      sortOrder,
	})
	if err != nil {
		log.Error("Failed to list transactions", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.TransactionListData{
		Transactions: utils.ConvertToTransactionListResponse(txns),
		Pagination:   utils.MakePagination(page, limit, total),
	})
}

// ReportTransactions handles GET /transactions/report
func (c *transactionController) ReportTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	query := r.URL.Query()

	start, end, err := parseDateRange(query)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	orgID, err := parseOrganizationFilter(query.Get("organizationId"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	principal := apikeyauth.GetOrganization(ctx)
	report, average, err := c.txnService.ReportTransactions(ctx, principal, models.ReportParams{
		OrganizationID: orgID,
		StartDate:      start,
		EndDate:        end,
	})
	if err != nil {
		log.Error("Failed to build transaction report", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to build transaction report")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.TransactionReportData{
		TotalTransactions: report.TotalTransactions,
		TotalDonations:    report.TotalDonations,
		AverageDonation:   average,
	})
}

// UpdateTransaction handles PUT /transactions/{id}. Only metadata is mutable;
// a request naming any financial field is rejected wholesale.
func (c *transactionController) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req spec.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to parse request body", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// A raw message is non-empty whenever the key was present, including an
	// explicit null.
	if len(req.OriginalAmount) > 0 || len(req.RoundedAmount) > 0 || len(req.DonationAmount) > 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Financial fields cannot be modified")
		return
	}

	principal := apikeyauth.GetOrganization(ctx)
	txn, err := c.txnService.UpdateTransactionMetadata(ctx, principal, id, req.Metadata)
	if err != nil {
		if errors.Is(err, utils.ErrForbidden) {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Not authorized to update this transaction")
			return
		}
		if errors.Is(err, utils.ErrTransactionNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Error("Failed to update transaction", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.TransactionData{
		Transaction: utils.ConvertToTransactionResponse(txn),
	})
}

// DeleteTransaction handles DELETE /transactions/{id}. Admin-gated at the
// routing layer.
func (c *transactionController) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	if err := c.txnService.DeleteTransaction(ctx, id); err != nil {
		if errors.Is(err, utils.ErrTransactionNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Error("Failed to delete transaction", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.MessageData{
		Message: "Transaction deleted",
	})
}
