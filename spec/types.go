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

// Package spec defines the wire-level request and response types of the
// public API. Amounts are shopspring decimals, which serialize as JSON
// strings so currency values never pass through binary floats.
package spec

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// StatusSuccess, StatusFail and StatusError are the envelope status values.
// "fail" denotes a 4xx client error, "error" a 5xx server error.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the shared success-response wrapper.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// ErrorResponse is the shared error-response wrapper.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RegisterOrganizationRequest is the body of POST /organizations/register.
type RegisterOrganizationRequest struct {
	Name string `json:"name"`
}

// InitAdminRequest is the body of POST /organizations/init-admin.
type InitAdminRequest struct {
	InitKey string `json:"initKey"`
}

// UpdateOrganizationRequest is the body of PUT /organizations/{id}. Only the
// name can change.
type UpdateOrganizationRequest struct {
	Name string `json:"name"`
}

// OrganizationResponse is the public view of an organization. The API key is
// deliberately absent; it is only ever returned at creation time.
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatedOrganizationResponse additionally carries the plaintext API key.
type CreatedOrganizationResponse struct {
	OrganizationResponse
	APIKey string `json:"apiKey"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// OrganizationData wraps a single organization for the response envelope.
type OrganizationData struct {
	Organization OrganizationResponse `json:"organization"`
}

// CreatedOrganizationData wraps a freshly created organization, API key
// included.
type CreatedOrganizationData struct {
	Organization CreatedOrganizationResponse `json:"organization"`
}

// OrganizationListData is the data payload of GET /organizations.
type OrganizationListData struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Pagination    Pagination             `json:"pagination"`
}

// CreateTransactionRequest is the body of POST /transactions. OriginalAmount
// accepts either a JSON number or a numeric string.
type CreateTransactionRequest struct {
	OriginalAmount *decimal.Decimal `json:"originalAmount"`
	Metadata       map[string]any   `json:"metadata"`
}

// UpdateTransactionRequest is the body of PUT /transactions/{id}. The three
// amount fields are raw JSON so their presence can be rejected even when the
// value is an explicit null: financial fields are immutable after creation.
type UpdateTransactionRequest struct {
	Metadata       map[string]any  `json:"metadata"`
	OriginalAmount json.RawMessage `json:"originalAmount"`
	RoundedAmount  json.RawMessage `json:"roundedAmount"`
	DonationAmount json.RawMessage `json:"donationAmount"`
}

// TransactionResponse is the public view of a transaction.
type TransactionResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationId"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	RoundedAmount  decimal.Decimal `json:"roundedAmount"`
	DonationAmount decimal.Decimal `json:"donationAmount"`
	Metadata       map[string]any  `json:"metadata"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// TransactionData wraps a single transaction for the response envelope.
type TransactionData struct {
	Transaction TransactionResponse `json:"transaction"`
}

// TransactionListData is the data payload of GET /transactions.
type TransactionListData struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// TransactionReportData is the data payload of GET /transactions/report.
type TransactionReportData struct {
	TotalTransactions int64           `json:"totalTransactions"`
	TotalDonations    decimal.Decimal `json:"totalDonations"`
	AverageDonation   decimal.Decimal `json:"averageDonation"`
}

// MessageData carries a human-readable confirmation for delete responses.
type MessageData struct {
	Message string `json:"message"`
}
