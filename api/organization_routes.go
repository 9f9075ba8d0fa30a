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

func registerOrganizationRoutes(mux *http.ServeMux, controller controllers.OrganizationController, auth, adminAuth apikeyauth.Middleware) {
	// POST /organizations/init-admin - Bootstrap the admin organization (init key, no API key)
	mux.HandleFunc("POST /organizations/init-admin", controller.InitializeAdmin)

	// POST /organizations/register - Register a new organization (admin only)
	mux.Handle("POST /organizations/register", adminAuth(http.HandlerFunc(controller.RegisterOrganization)))

	// GET /organizations - List organizations (admin only)
	mux.Handle("GET /organizations", adminAuth(http.HandlerFunc(controller.ListOrganizations)))

	// GET /organizations/{id} - Get an organization (self or admin)
	mux.Handle("GET /organizations/{id}", auth(http.HandlerFunc(controller.GetOrganization)))

	// PUT /organizations/{id} - Rename an organization (self or admin)
	mux.Handle("PUT /organizations/{id}", auth(http.HandlerFunc(controller.UpdateOrganization)))

	// DELETE /organizations/{id} - Delete an organization and its transactions (admin only)
	mux.Handle("DELETE /organizations/{id}", adminAuth(http.HandlerFunc(controller.DeleteOrganization)))
}
