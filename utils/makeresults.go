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

package utils

import (
	"math"

	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/spec"
)

func ConvertToOrganizationResponse(org *models.Organization) spec.OrganizationResponse {
	if org == nil {
		return spec.OrganizationResponse{}
	}
	return spec.OrganizationResponse{
		ID:        org.ID.String(),
		Name:      org.Name,
		IsAdmin:   org.IsAdmin,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}

// ConvertToCreatedOrganizationResponse includes the plaintext API key. Used
// only for register and init-admin responses.
func ConvertToCreatedOrganizationResponse(org *models.Organization) spec.CreatedOrganizationResponse {
	return spec.CreatedOrganizationResponse{
		OrganizationResponse: ConvertToOrganizationResponse(org),
		APIKey:               org.APIKey,
	}
}

func ConvertToOrganizationListResponse(orgs []*models.Organization) []spec.OrganizationResponse {
	responses := make([]spec.OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = ConvertToOrganizationResponse(org)
	}
	return responses
}

func ConvertToTransactionResponse(txn *models.Transaction) spec.TransactionResponse {
	if txn == nil {
		return spec.TransactionResponse{}
	}
	metadata := map[string]any(txn.Metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}
	return spec.TransactionResponse{
		ID:             txn.ID.String(),
		OrganizationID: txn.OrganizationID.String(),
		OriginalAmount: txn.OriginalAmount,
		RoundedAmount:  txn.RoundedAmount,
		DonationAmount: txn.DonationAmount,
		Metadata:       metadata,
		CreatedAt:      txn.CreatedAt,
		UpdatedAt:      txn.UpdatedAt,
	}
}

func ConvertToTransactionListResponse(txns []*models.Transaction) []spec.TransactionResponse {
	responses := make([]spec.TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ConvertToTransactionResponse(txn)
	}
	return responses
}

// MakePagination builds the pagination block of a list response.
func MakePagination(page, limit int, total int64) spec.Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return spec.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
