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

	"github.com/wso2/roundup-donation-platform/roundup-service/config"
	"github.com/wso2/roundup-donation-platform/roundup-service/middleware"
	"github.com/wso2/roundup-donation-platform/roundup-service/middleware/apikeyauth"
	"github.com/wso2/roundup-donation-platform/roundup-service/middleware/logger"
	"github.com/wso2/roundup-donation-platform/roundup-service/wiring"
)

// MakeHTTPHandler creates a new HTTP handler with middleware and routes
func MakeHTTPHandler(params *wiring.AppParams) http.Handler {
	mux := http.NewServeMux()

	// Register health check
	registerHealthCheck(mux)

	// Create a sub-mux for API v1 routes. Authentication is applied per route
	// because admin-only and organization-scoped endpoints are interleaved,
	// and the admin bootstrap endpoint takes no API key at all.
	apiMux := http.NewServeMux()
	auth := apikeyauth.Middleware(params.CombinedAuth)
	adminAuth := apikeyauth.Middleware(params.AdminAuth)
	registerOrganizationRoutes(apiMux, params.OrganizationController, auth, adminAuth)
	registerTransactionRoutes(apiMux, params.TransactionController, auth, adminAuth)

	// Apply middleware in reverse order (last middleware is applied first)
	apiHandler := http.Handler(apiMux)
	apiHandler = middleware.AddCorrelationID()(apiHandler)
	apiHandler = logger.RequestLogger()(apiHandler)
	apiHandler = middleware.CORS(config.GetConfig().CORSAllowedOrigin)(apiHandler)
	apiHandler = middleware.RecovererOnPanic()(apiHandler)

	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiHandler))

	return mux
}

func registerHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
}
