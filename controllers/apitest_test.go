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
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wso2/roundup-donation-platform/roundup-service/clients/secretstore"
	"github.com/wso2/roundup-donation-platform/roundup-service/config"
	"github.com/wso2/roundup-donation-platform/roundup-service/controllers"
	"github.com/wso2/roundup-donation-platform/roundup-service/middleware/apikeyauth"
	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/repositories"
	"github.com/wso2/roundup-donation-platform/roundup-service/services"
	"github.com/wso2/roundup-donation-platform/roundup-service/utils"
)

const (
	testAuthHeader  = "x-api-key"
	testInitSecret  = "roundup-service/admin-init-key"
	testBackupName  = "roundup-service/admin-api-key"
	testInitKeyVal  = "correct-horse-battery-staple"
	testAdminOrgKey = "admin-api-key-for-tests"
)

type testApp struct {
	store   *repositories.InMemoryStore
	secrets *secretstore.InMemoryStore
	handler http.Handler
}

// newTestApp assembles the full request path against in-memory stores: the
// same route table as production, real auth middleware, real services.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	store := repositories.NewInMemoryStore()
	secrets := secretstore.NewInMemoryStore(map[string]string{
		testInitSecret: testInitKeyVal,
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	orgService := services.NewOrganizationService(logger, store, secrets, config.AdminBootstrapConfig{
		InitSecretName:      testInitSecret,
		KeyBackupSecretName: testBackupName,
		OrgName:             "admin",
	})
	txnService := services.NewTransactionService(logger, store)

	orgController := controllers.NewOrganizationController(orgService)
	txnController := controllers.NewTransactionController(txnService)

	auth := apikeyauth.APIKeyAuthMiddleware(testAuthHeader, store)
	adminAuth := apikeyauth.AdminAuthMiddleware(testAuthHeader, store)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /organizations/init-admin", orgController.InitializeAdmin)
	mux.Handle("POST /organizations/register", adminAuth(http.HandlerFunc(orgController.RegisterOrganization)))
	mux.Handle("GET /organizations", adminAuth(http.HandlerFunc(orgController.ListOrganizations)))
	mux.Handle("GET /organizations/{id}", auth(http.HandlerFunc(orgController.GetOrganization)))
	mux.Handle("PUT /organizations/{id}", auth(http.HandlerFunc(orgController.UpdateOrganization)))
	mux.Handle("DELETE /organizations/{id}", adminAuth(http.HandlerFunc(orgController.DeleteOrganization)))

	mux.Handle("POST /transactions", auth(http.HandlerFunc(txnController.CreateTransaction)))
	mux.Handle("GET /transactions", auth(http.HandlerFunc(txnController.ListTransactions)))
	mux.Handle("GET /transactions/report", auth(http.HandlerFunc(txnController.ReportTransactions)))
	mux.Handle("GET /transactions/{id}", auth(http.HandlerFunc(txnController.GetTransaction)))
	mux.Handle("PUT /transactions/{id}", auth(http.HandlerFunc(txnController.UpdateTransaction)))
	mux.Handle("DELETE /transactions/{id}", adminAuth(http.HandlerFunc(txnController.DeleteTransaction)))

	return &testApp{
		store:   store,
		secrets: secrets,
		handler: mux,
	}
}

// seedAdmin inserts the admin organization directly into the store and
// returns it. Its API key is testAdminOrgKey.
func (a *testApp) seedAdmin(t *testing.T) *models.Organization {
	t.Helper()
	org := &models.Organization{
		ID:      uuid.New(),
		Name:    "admin",
		APIKey:  testAdminOrgKey,
		IsAdmin: true,
	}
	require.NoError(t, a.store.CreateOrganization(t.Context(), org))
	return org
}

// seedOrg inserts a regular organization with a fresh API key.
func (a *testApp) seedOrg(t *testing.T, name string) *models.Organization {
	t.Helper()
	apiKey, err := utils.GenerateAPIKey()
	require.NoError(t, err)
	org := &models.Organization{
		ID:      uuid.New(),
		Name:    name,
		APIKey:  apiKey,
		IsAdmin: false,
	}
	require.NoError(t, a.store.CreateOrganization(t.Context(), org))
	return org
}

// doRequest performs a request against the app. A nil body sends no payload;
// anything else is JSON-encoded. An empty apiKey omits the auth header.
func (a *testApp) doRequest(t *testing.T, method, path, apiKey string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		require.NoError(t, json.NewEncoder(buf).Encode(body))
		reader = buf
	}
	req := httptest.NewRequest(method, path, reader)
	if apiKey != "" {
		req.Header.Set(testAuthHeader, apiKey)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the "data" field of a success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "success", envelope.Status)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// decodeError unmarshals a fail/error envelope and returns its status and message.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (status, message string) {
	t.Helper()
	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Status, envelope.Message
}
