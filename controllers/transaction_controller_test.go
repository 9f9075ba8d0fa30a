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

package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/roundup-donation-platform/roundup-service/spec"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("Creating a transaction should compute the rounded and donation amounts", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{
			"originalAmount": 15.75,
			"metadata":       map[string]any{"channel": "pos"},
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var data spec.TransactionData
		decodeData(t, rec, &data)
		assert.Equal(t, org.ID.String(), data.Transaction.OrganizationID)
		assert.Equal(t, "15.75", data.Transaction.OriginalAmount.String())
		assert.Equal(t, "16", data.Transaction.RoundedAmount.String())
		assert.Equal(t, "0.25", data.Transaction.DonationAmount.String())
		assert.Equal(t, "pos", data.Transaction.Metadata["channel"])
	})

	t.Run("A whole-number amount should produce a zero donation", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{
			"originalAmount": 10,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var data spec.TransactionData
		decodeData(t, rec, &data)
		assert.True(t, data.Transaction.DonationAmount.IsZero())
		assert.Equal(t, "10", data.Transaction.RoundedAmount.String())
	})

	t.Run("A string amount should be accepted", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{
			"originalAmount": "3.10",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var data spec.TransactionData
		decodeData(t, rec, &data)
		assert.Equal(t, "0.9", data.Transaction.DonationAmount.String())
	})

	t.Run("A missing originalAmount should return 400", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{
			"metadata": map[string]any{"channel": "pos"},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("A non-positive originalAmount should return 400", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		for _, amount := range []any{0, -4.2} {
			rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{
				"originalAmount": amount,
			})
			require.Equal(t, http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("An originalAmount below cent precision should return 400", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		// 0.005 would round up to a full-unit donation of 1.00.
		for _, amount := range []any{"0.005", 12.345} {
			rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{
				"originalAmount": amount,
			})
			require.Equal(t, http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("Creating without an API key should return 401", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.doRequest(t, http.MethodPost, "/transactions", "", map[string]any{
			"originalAmount": 5.25,
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetTransaction(t *testing.T) {
	t.Run("An organization can fetch its own transaction", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{"originalAmount": 5.25})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created spec.TransactionData
		decodeData(t, rec, &created)

		rec = app.doRequest(t, http.MethodGet, "/transactions/"+created.Transaction.ID, org.APIKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Another organization's transaction should look like a missing one", func(t *testing.T) {
		app := newTestApp(t)
		first := app.seedOrg(t, "acme-books")
		second := app.seedOrg(t, "beta-cafe")

		rec := app.doRequest(t, http.MethodPost, "/transactions", first.APIKey, map[string]any{"originalAmount": 5.25})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created spec.TransactionData
		decodeData(t, rec, &created)

		rec = app.doRequest(t, http.MethodGet, "/transactions/"+created.Transaction.ID, second.APIKey, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("An admin can fetch any transaction", func(t *testing.T) {
		app := newTestApp(t)
		app.seedAdmin(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{"originalAmount": 5.25})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created spec.TransactionData
		decodeData(t, rec, &created)

		rec = app.doRequest(t, http.MethodGet, "/transactions/"+created.Transaction.ID, testAdminOrgKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("Listing should be scoped to the caller's organization", func(t *testing.T) {
		app := newTestApp(t)
		first := app.seedOrg(t, "acme-books")
		second := app.seedOrg(t, "beta-cafe")

		for _, amount := range []float64{1.10, 2.20, 3.30} {
			rec := app.doRequest(t, http.MethodPost, "/transactions", first.APIKey, map[string]any{"originalAmount": amount})
			require.Equal(t, http.StatusCreated, rec.Code)
		}
		rec := app.doRequest(t, http.MethodPost, "/transactions", second.APIKey, map[string]any{"originalAmount": 9.90})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = app.doRequest(t, http.MethodGet, "/transactions", first.APIKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data spec.TransactionListData
		decodeData(t, rec, &data)
		assert.Len(t, data.Transactions, 3)
		assert.Equal(t, int64(3), data.Pagination.Total)
		for _, txn := range data.Transactions {
			assert.Equal(t, first.ID.String(), txn.OrganizationID)
		}
	})

	t.Run("A non-admin cannot widen the scope with an organizationId filter", func(t *testing.T) {
		app := newTestApp(t)
		first := app.seedOrg(t, "acme-books")
		second := app.seedOrg(t, "beta-cafe")

		rec := app.doRequest(t, http.MethodPost, "/transactions", second.APIKey, map[string]any{"originalAmount": 9.90})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = app.doRequest(t, http.MethodGet, "/transactions?organizationId="+second.ID.String(), first.APIKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data spec.TransactionListData
		decodeData(t, rec, &data)
		assert.Empty(t, data.Transactions)
	})

	t.Run("An admin sees all transactions and can filter by organization", func(t *testing.T) {
		app := newTestApp(t)
		app.seedAdmin(t)
		first := app.seedOrg(t, "acme-books")
		second := app.seedOrg(t, "beta-cafe")

		rec := app.doRequest(t, http.MethodPost, "/transactions", first.APIKey, map[string]any{"originalAmount": 1.10})
		require.Equal(t, http.StatusCreated, rec.Code)
		rec = app.doRequest(t, http.MethodPost, "/transactions", second.APIKey, map[string]any{"originalAmount": 9.90})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = app.doRequest(t, http.MethodGet, "/transactions", testAdminOrgKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var all spec.TransactionListData
		decodeData(t, rec, &all)
		assert.Len(t, all.Transactions, 2)

		rec = app.doRequest(t, http.MethodGet, "/transactions?organizationId="+first.ID.String(), testAdminOrgKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var filtered spec.TransactionListData
		decodeData(t, rec, &filtered)
		require.Len(t, filtered.Transactions, 1)
		assert.Equal(t, first.ID.String(), filtered.Transactions[0].OrganizationID)
	})

	t.Run("Sorting by amount ascending should order the page", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		for _, amount := range []float64{3.30, 1.10, 2.20} {
			rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{"originalAmount": amount})
			require.Equal(t, http.StatusCreated, rec.Code)
		}

		rec := app.doRequest(t, http.MethodGet, "/transactions?sortBy=originalAmount&sortOrder=asc", org.APIKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data spec.TransactionListData
		decodeData(t, rec, &data)
		require.Len(t, data.Transactions, 3)
		assert.Equal(t, "1.1", data.Transactions[0].OriginalAmount.String())
		assert.Equal(t, "3.3", data.Transactions[2].OriginalAmount.String())
	})

	t.Run("A date filter missing its other half should return 400", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodGet, "/transactions?startDate=2026-01-01", org.APIKey, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("A date-only range covering today should include today's transactions", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{"originalAmount": 5.25})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = app.doRequest(t, http.MethodGet, "/transactions?startDate=2020-01-01&endDate=2099-12-31", org.APIKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data spec.TransactionListData
		decodeData(t, rec, &data)
		assert.Len(t, data.Transactions, 1)
	})

	t.Run("An end date before the start date should return 400", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodGet, "/transactions?startDate=2026-02-01&endDate=2026-01-01", org.APIKey, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("An unknown sortBy field should return 400", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodGet, "/transactions?sortBy=metadata", org.APIKey, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReportTransactions(t *testing.T) {
	t.Run("The report should total and average the caller's donations", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		// Donations: 0.25, 0.90, 0.50
		for _, amount := range []any{15.75, "3.10", 2.50} {
			rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{"originalAmount": amount})
			require.Equal(t, http.StatusCreated, rec.Code)
		}

		rec := app.doRequest(t, http.MethodGet, "/transactions/report", org.APIKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var data spec.TransactionReportData
		decodeData(t, rec, &data)
		assert.Equal(t, int64(3), data.TotalTransactions)
		assert.Equal(t, "1.65", data.TotalDonations.String())
		assert.Equal(t, "0.55", data.AverageDonation.String())
	})

	t.Run("An empty report should return zeros, not an error", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodGet, "/transactions/report", org.APIKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var data spec.TransactionReportData
		decodeData(t, rec, &data)
		assert.Equal(t, int64(0), data.TotalTransactions)
		assert.True(t, data.TotalDonations.IsZero())
		assert.True(t, data.AverageDonation.IsZero())
	})

	t.Run("The report should not include other organizations", func(t *testing.T) {
		app := newTestApp(t)
		first := app.seedOrg(t, "acme-books")
		second := app.seedOrg(t, "beta-cafe")

		rec := app.doRequest(t, http.MethodPost, "/transactions", first.APIKey, map[string]any{"originalAmount": 15.75})
		require.Equal(t, http.StatusCreated, rec.Code)
		rec = app.doRequest(t, http.MethodPost, "/transactions", second.APIKey, map[string]any{"originalAmount": 3.10})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = app.doRequest(t, http.MethodGet, "/transactions/report", first.APIKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data spec.TransactionReportData
		decodeData(t, rec, &data)
		assert.Equal(t, int64(1), data.TotalTransactions)
		assert.Equal(t, "0.25", data.TotalDonations.String())
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("Updating metadata should succeed and leave amounts unchanged", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{"originalAmount": 15.75})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created spec.TransactionData
		decodeData(t, rec, &created)

		rec = app.doRequest(t, http.MethodPut, "/transactions/"+created.Transaction.ID, org.APIKey, map[string]any{
			"metadata": map[string]any{"note": "refund follow-up"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated spec.TransactionData
		decodeData(t, rec, &updated)
		assert.Equal(t, "refund follow-up", updated.Transaction.Metadata["note"])
		assert.Equal(t, "15.75", updated.Transaction.OriginalAmount.String())
		assert.Equal(t, "0.25", updated.Transaction.DonationAmount.String())
	})

	t.Run("Naming any financial field should reject the whole update", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{"originalAmount": 15.75})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created spec.TransactionData
		decodeData(t, rec, &created)

		for _, body := range []map[string]any{
			{"originalAmount": 20.00, "metadata": map[string]any{"note": "x"}},
			{"originalAmount": nil},
			{"roundedAmount": 20.00},
			{"donationAmount": 0.99},
		} {
			rec = app.doRequest(t, http.MethodPut, "/transactions/"+created.Transaction.ID, org.APIKey, body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		}

		// Metadata from the rejected update must not have been applied
		rec = app.doRequest(t, http.MethodGet, "/transactions/"+created.Transaction.ID, org.APIKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var current spec.TransactionData
		decodeData(t, rec, &current)
		assert.NotContains(t, current.Transaction.Metadata, "note")
	})

	t.Run("Updating another organization's transaction should return 403", func(t *testing.T) {
		app := newTestApp(t)
		first := app.seedOrg(t, "acme-books")
		second := app.seedOrg(t, "beta-cafe")

		rec := app.doRequest(t, http.MethodPost, "/transactions", first.APIKey, map[string]any{"originalAmount": 5.25})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created spec.TransactionData
		decodeData(t, rec, &created)

		rec = app.doRequest(t, http.MethodPut, "/transactions/"+created.Transaction.ID, second.APIKey, map[string]any{
			"metadata": map[string]any{"note": "x"},
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("An admin can delete any transaction", func(t *testing.T) {
		app := newTestApp(t)
		app.seedAdmin(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{"originalAmount": 5.25})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created spec.TransactionData
		decodeData(t, rec, &created)

		rec = app.doRequest(t, http.MethodDelete, "/transactions/"+created.Transaction.ID, testAdminOrgKey, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = app.doRequest(t, http.MethodGet, "/transactions/"+created.Transaction.ID, org.APIKey, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("A non-admin cannot delete its own transaction", func(t *testing.T) {
		app := newTestApp(t)
		org := app.seedOrg(t, "acme-books")

		rec := app.doRequest(t, http.MethodPost, "/transactions", org.APIKey, map[string]any{"originalAmount": 5.25})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created spec.TransactionData
		decodeData(t, rec, &created)

		rec = app.doRequest(t, http.MethodDelete, "/transactions/"+created.Transaction.ID, org.APIKey, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Deleting a missing transaction should return 404", func(t *testing.T) {
		app := newTestApp(t)
		app.seedAdmin(t)

		rec := app.doRequest(t, http.MethodDelete, "/transactions/b7a1f6e2-0000-4000-8000-000000000000", testAdminOrgKey, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
