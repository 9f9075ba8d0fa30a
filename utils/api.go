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
	"encoding/json"
	"net/http"

	"github.com/wso2/roundup-donation-platform/roundup-service/spec"
)

// WriteSuccessResponse writes a successful API response wrapped in the shared
// {"status":"success","data":...} envelope.
func WriteSuccessResponse[T any](w http.ResponseWriter, statusCode int, data T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if statusCode == http.StatusNoContent {
		return
	}
	payload := spec.Envelope{
		Status: spec.StatusSuccess,
		Data:   data,
	}
	_ = json.NewEncoder(w).Encode(payload) // Ignore encoding errors for response
}

// WriteErrorResponse writes an error API response. Status "fail" marks client
// errors, "error" marks server errors.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	status := spec.StatusFail
	if statusCode >= http.StatusInternalServerError {
		status = spec.StatusError
	}
	errPayload := &spec.ErrorResponse{
		Status:  status,
		Message: message,
	}
	_ = json.NewEncoder(w).Encode(errPayload) // Ignore encoding errors for response
}
