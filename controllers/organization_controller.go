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

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/wso2/roundup-donation-platform/roundup-service/middleware/apikeyauth"
	"github.com/wso2/roundup-donation-platform/roundup-service/middleware/logger"
	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/services"
	"github.com/wso2/roundup-donation-platform/roundup-service/spec"
	"github.com/wso2/roundup-donation-platform/roundup-service/utils"
)

// OrganizationController defines the interface for organization HTTP handlers
type OrganizationController interface {
	RegisterOrganization(w http.ResponseWriter, r *http.Request)
	InitializeAdmin(w http.ResponseWriter, r *http.Request)
	GetOrganization(w http.ResponseWriter, r *http.Request)
	UpdateOrganization(w http.ResponseWriter, r *http.Request)
	ListOrganizations(w http.ResponseWriter, r *http.Request)
	DeleteOrganization(w http.ResponseWriter, r *http.Request)
}

var organizationSortFields = map[string]bool{
	"name":      true,
	"createdAt": true,
	"updatedAt": true,
}

type organizationController struct {
	orgService services.OrganizationService
}

// NewOrganizationController creates a new organization controller instance
func NewOrganizationController(orgService services.OrganizationService) OrganizationController {
	return &organizationController{orgService: orgService}
}

// RegisterOrganization handles POST /organizations/register. Admin-gated at
// the routing layer. The response is the only place the new API key appears
// in cleartext.
func (c *organizationController) RegisterOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req spec.RegisterOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to parse request body", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Organization name is required")
		return
	}

	org, err := c.orgService.RegisterOrganization(ctx, req.Name)
	if err != nil {
		if errors.Is(err, utils.ErrOrganizationAlreadyExists) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Organization name already exists")
			return
		}
		log.Error("Failed to register organization", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to register organization")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusCreated, spec.CreatedOrganizationData{
		Organization: utils.ConvertToCreatedOrganizationResponse(org),
	})
}

// InitializeAdmin handles POST /organizations/init-admin. No standing auth:
// the caller proves possession of the out-of-band init key instead.
func (c *organizationController) InitializeAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req spec.InitAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to parse request body", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := c.orgService.InitializeAdmin(ctx, req.InitKey)
	if err != nil {
		if errors.Is(err, utils.ErrUnauthorized) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid initialization key")
			return
		}
		if errors.Is(err, utils.ErrAdminAlreadyExists) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Admin organization already exists")
			return
		}
		log.Error("Failed to initialize admin organization", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to initialize admin organization")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusCreated, spec.CreatedOrganizationData{
		Organization: utils.ConvertToCreatedOrganizationResponse(org),
	})
}

// GetOrganization handles GET /organizations/{id}
func (c *organizationController) GetOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid organization id")
		return
	}
	principal := apikeyauth.GetOrganization(ctx)

	org, err := c.orgService.GetOrganization(ctx, principal, id)
	if err != nil {
		if errors.Is(err, utils.ErrForbidden) {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Not authorized to access this organization")
			return
		}
		if errors.Is(err, utils.ErrOrganizationNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Organization not found")
			return
		}
		log.Error("Failed to get organization", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get organization")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.OrganizationData{
		Organization: utils.ConvertToOrganizationResponse(org),
	})
}

// UpdateOrganization handles PUT /organizations/{id}. Only the name is
// mutable.
func (c *organizationController) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid organization id")
		return
	}

	var req spec.UpdateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to parse request body", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Organization name is required")
		return
	}

	principal := apikeyauth.GetOrganization(ctx)
	org, err := c.orgService.UpdateOrganization(ctx, principal, id, req.Name)
	if err != nil {
		if errors.Is(err, utils.ErrForbidden) {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Not authorized to update this organization")
			return
		}
		if errors.Is(err, utils.ErrOrganizationNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Organization not found")
			return
		}
		if errors.Is(err, utils.ErrOrganizationAlreadyExists) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Organization name already exists")
			return
		}
		log.Error("Failed to update organization", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update organization")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.OrganizationData{
		Organization: utils.ConvertToOrganizationResponse(org),
	})
}

// ListOrganizations handles GET /organizations. Admin-gated at the routing
// layer; invalid sort parameters fail before any query executes.
func (c *organizationController) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	query := r.URL.Query()

	page, limit, err := parsePagination(query)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	sortBy, sortOrder, err := parseSort(query, organizationSortFields, "createdAt")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	orgs, total, err := c.orgService.ListOrganizations(ctx, models.ListOrganizationsParams{
		Page:      page,
		Limit:     limit,
		Search:    query.Get("search"),
		SortBy:    sortBy,
		SortOrder: sortOrder,
	})
	if err != nil {
		log.Error("Failed to list organizations", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list organizations")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.OrganizationListData{
		Organizations: utils.ConvertToOrganizationListResponse(orgs),
		Pagination:    utils.MakePagination(page, limit, total),
	})
}

// DeleteOrganization handles DELETE /organizations/{id}. Deletes the
// organization and all of its transactions atomically.
func (c *organizationController) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid organization id")
		return
	}

	if err := c.orgService.DeleteOrganization(ctx, id); err != nil {
		if errors.Is(err, utils.ErrOrganizationNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Organization not found")
			return
		}
		log.Error("Failed to delete organization", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete organization")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.MessageData{
		Message: "Organization and its transactions deleted",
	})
}
