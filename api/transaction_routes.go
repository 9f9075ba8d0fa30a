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

package api

import (
	"net/http"

	"github.com/wso2/roundup-donation-platform/roundup-service/controllers"
	"github.com/wso2/roundup-donation-platform/roundup-service/middleware/apikeyauth"
)

func registerTransactionRoutes(mux *http.ServeMux, controller controllers.TransactionController, auth, adminAuth apikeyauth.Middleware) {
	// POST /transactions - Record a transaction for the caller's organization
	mux.Handle("POST /transactions", auth(http.HandlerFunc(controller.CreateTransaction)))

	// GET /transactions - List transactions within the caller's scope
	mux.Handle("GET /transactions", auth(http.HandlerFunc(controller.ListTransactions)))

	// GET /transactions/report - Aggregate donation totals within the caller's scope
	mux.Handle("GET /transactions/report", auth(http.HandlerFunc(controller.ReportTransactions)))

	// GET /transactions/{id} - Get a transaction (owner or admin)
	mux.Handle("GET /transactions/{id}", auth(http.HandlerFunc(controller.GetTransaction)))

	// PUT /transactions/{id} - Update transaction metadata (owner or admin)
	mux.Handle("PUT /transactions/{id}", auth(http.HandlerFunc(controller.UpdateTransaction)))

	// DELETE /transactions/{id} - Delete a transaction (admin only)
	mux.Handle("DELETE /transactions/{id}", adminAuth(http.HandlerFunc(controller.DeleteTransaction)))
}
