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
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/wso2/roundup-donation-platform/roundup-service/models"
)

func TestListTransactionsDescendingWithEqualAmounts(t *testing.T) {
	store := NewInMemoryStore()
	orgID := uuid.New()

	// Several equal keys mixed with distinct ones exercise the comparator's
	// handling of ties on both sides.
	for _, amount := range []string{"5.00", "5.00", "2.50", "5.00", "9.75", "2.50"} {
		original := decimal.RequireFromString(amount)
		err := store.CreateTransaction(t.Context(), &models.Transaction{
			OrganizationID: orgID,
			OriginalAmount: original,
			RoundedAmount:  original.Ceil(),
			DonationAmount: original.Ceil().Sub(original),
		})
		require.NoError(t, err)
	}

	txns, total, err := store.ListTransactions(t.Context(), models.ListTransactionsParams{
		OrganizationID: &orgID,
		Page:           1,
		Limit:          100,
		SortBy:         "originalAmount",
		SortOrder:      "desc",
	})
	require.NoError(t, err)
	require.EqualValues(t, 6, total)
	require.Len(t, txns, 6)
	for i := 1; i < len(txns); i++ {
		require.False(t, txns[i-1].OriginalAmount.LessThan(txns[i].OriginalAmount),
			"amounts must be non-increasing at index %d", i)
	}
}

func TestListOrganizationsDescendingByName(t *testing.T) {
	store := NewInMemoryStore()
	for _, name := range []string{"beta", "alpha", "gamma"} {
		err := store.CreateOrganization(t.Context(), &models.Organization{
			Name:   name,
			APIKey: name + "-key",
		})
		require.NoError(t, err)
	}

	orgs, total, err := store.ListOrganizations(t.Context(), models.ListOrganizationsParams{
		Page:      1,
		Limit:     100,
		SortBy:    "name",
		SortOrder: "desc",
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, orgs, 3)
	require.Equal(t, "gamma", orgs[0].Name)
	require.Equal(t, "beta", orgs[1].Name)
	require.Equal(t, "alpha", orgs[2].Name)
}
