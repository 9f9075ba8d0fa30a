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

// Package apikeyauth authenticates requests with the organization API key
// carried in a single configurable header. Two variants exist: the combined
// middleware accepts any valid organization, the admin middleware
// additionally requires the admin flag.
package apikeyauth

import (
	"context"
	"net/http"

	"github.com/wso2/roundup-donation-platform/roundup-service/middleware/logger"
	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/utils"
)

// Directory resolves a presented API key to an organization. It returns
// (nil, nil) when no organization matches.
type Directory interface {
	GetOrganizationByAPIKey(ctx context.Context, apiKey string) (*models.Organization, error)
}

type Middleware func(http.Handler) http.Handler

type principalCtxKey struct{}

var principalKey principalCtxKey

// APIKeyAuthMiddleware authenticates any valid organization and attaches it
// to the request context as the principal.
func APIKeyAuthMiddleware(header string, directory Directory) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			org, ok := authenticate(w, r, header, directory)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), org)))
		})
	}
}

// AdminAuthMiddleware authenticates only the admin organization. A valid
// non-admin key resolves but is rejected as forbidden.
func AdminAuthMiddleware(header string, directory Directory) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			org, ok := authenticate(w, r, header, directory)
			if !ok {
				return
			}
			if !org.IsAdmin {
				utils.WriteErrorResponse(w, http.StatusForbidden, "Admin privileges required")
				return
			}
			next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), org)))
		})
	}
}

func authenticate(w http.ResponseWriter, r *http.Request, header string, directory Directory) (*models.Organization, bool) {
	apiKey := r.Header.Get(header)
	if apiKey == "" {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "API key is required")
		return nil, false
	}
	org, err := directory.GetOrganizationByAPIKey(r.Context(), apiKey)
	if err != nil {
		logger.GetLogger(r.Context()).Error("Failed to look up API key", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to authenticate request")
		return nil, false
	}
	if org == nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
		return nil, false
	}
	return org, true
}

func withPrincipal(ctx context.Context, org *models.Organization) context.Context {
	return context.WithValue(ctx, principalKey, org)
}

// GetOrganization returns the authenticated principal attached by the
// middleware, or nil outside an authenticated request.
func GetOrganization(ctx context.Context) *models.Organization {
	org, ok := ctx.Value(principalKey).(*models.Organization)
	if !ok {
		return nil
	}
	return org
}
