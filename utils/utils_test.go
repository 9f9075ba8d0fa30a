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
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/spec"
)

func TestGenerateAPIKey(t *testing.T) {
	first, err := GenerateAPIKey()
	require.NoError(t, err)
	second, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.Len(t, first, APIKeyLength*2)
	assert.NotEqual(t, first, second)

	_, err = hex.DecodeString(first)
	assert.NoError(t, err)
}

func TestMakePagination(t *testing.T) {
	p := MakePagination(2, 10, 31)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(31), p.Total)
	assert.Equal(t, 4, p.Pages)

	p = MakePagination(1, 10, 0)
	assert.Equal(t, 0, p.Pages)

	p = MakePagination(1, 10, 10)
	assert.Equal(t, 1, p.Pages)
}

func TestConvertToTransactionResponseNormalizesNilMetadata(t *testing.T) {
	resp := ConvertToTransactionResponse(&models.Transaction{})
	require.NotNil(t, resp.Metadata)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"metadata":{}`)
}

func TestWriteErrorResponseStatusField(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorResponse(rec, http.StatusNotFound, "Organization not found")

	var body spec.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, spec.StatusFail, body.Status)

	rec = httptest.NewRecorder()
	WriteErrorResponse(rec, http.StatusInternalServerError, "boom")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, spec.StatusError, body.Status)
}
