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

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wso2/roundup-donation-platform/roundup-service/clients/secretstore"
	"github.com/wso2/roundup-donation-platform/roundup-service/config"
	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/repositories"
	"github.com/wso2/roundup-donation-platform/roundup-service/utils"
)

// OrganizationService defines the interface for organization operations.
// Admin gating of register/list/delete happens at the routing layer; the
// per-resource admin-or-self rule lives here and is always evaluated against
// the requested id before the row is fetched.
type OrganizationService interface {
	RegisterOrganization(ctx context.Context, name string) (*models.Organization, error)
	InitializeAdmin(ctx context.Context, initKey string) (*models.Organization, error)
	GetOrganization(ctx context.Context, principal *models.Organization, id uuid.UUID) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, principal *models.Organization, id uuid.UUID, name string) (*models.Organization, error)
	ListOrganizations(ctx context.Context, params models.ListOrganizationsParams) ([]*models.Organization, int64, error)
	DeleteOrganization(ctx context.Context, id uuid.UUID) error
}

type organizationService struct {
	logger    *slog.Logger
	orgRepo   repositories.OrganizationRepository
	secrets   secretstore.Store
	bootstrap config.AdminBootstrapConfig
}

// NewOrganizationService creates a new organization service instance
func NewOrganizationService(
	logger *slog.Logger,
	orgRepo repositories.OrganizationRepository,
	secrets secretstore.Store,
	bootstrap config.AdminBootstrapConfig,
) OrganizationService {
	return &organizationService{
		logger:    logger,
		orgRepo:   orgRepo,
		secrets:   secrets,
		bootstrap: bootstrap,
	}
}

// RegisterOrganization creates a non-admin organization with a fresh API key.
// Clients can never self-elevate: IsAdmin is always false here.
func (s *organizationService) RegisterOrganization(ctx context.Context, name string) (*models.Organization, error) {
	apiKey, err := utils.GenerateAPIKey()
	if err != nil {
		return nil, err
	}
	org := &models.Organization{
		ID:      uuid.New(),
		Name:    name,
		APIKey:  apiKey,
		IsAdmin: false,
	}
	if err := s.orgRepo.CreateOrganization(ctx, org); err != nil {
		return nil, err
	}
	s.logger.Info("Registered organization", "id", org.ID, "name", org.Name)
	return org, nil
}

// InitializeAdmin performs the one-time admin bootstrap. The presented init
// key must match the secrets-store value; only one admin organization can
// ever exist. The generated admin API key is backed up to the secrets store
// best-effort: a backup failure is logged, not rolled back.
func (s *organizationService) InitializeAdmin(ctx context.Context, initKey string) (*models.Organization, error) {
	expected, err := s.secrets.GetSecret(ctx, s.bootstrap.InitSecretName)
	if err != nil {
		return nil, fmt.Errorf("failed to read init secret: %w", err)
	}
	if initKey == "" || initKey != expected {
		return nil, utils.ErrUnauthorized
	}

	exists, err := s.orgRepo.AdminOrganizationExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ErrAdminAlreadyExists
	}

	apiKey, err := utils.GenerateAPIKey()
	if err != nil {
		return nil, err
	}
	org := &models.Organization{
		ID:      uuid.New(),
		Name:    s.bootstrap.OrgName,
		APIKey:  apiKey,
		IsAdmin: true,
	}
	if err := s.orgRepo.CreateOrganization(ctx, org); err != nil {
		return nil, err
	}

	if err := s.secrets.PutSecret(ctx, s.bootstrap.KeyBackupSecretName, org.APIKey); err != nil {
		s.logger.Warn("Failed to back up admin API key to secrets store", "error", err)
	}

	s.logger.Info("Initialized admin organization", "id", org.ID)
	return org, nil
}

// GetOrganization returns the organization if the caller is admin or the
// organization itself. Authorization is resolved against the requested id
// before the fetch, so an unauthorized caller learns nothing about existence.
func (s *organizationService) GetOrganization(ctx context.Context, principal *models.Organization, id uuid.UUID) (*models.Organization, error) {
	if !principal.IsAdmin && principal.ID != id {
		return nil, utils.ErrForbidden
	}
	org, err := s.orgRepo.GetOrganizationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, utils.ErrOrganizationNotFound
	}
	return org, nil
}

// UpdateOrganization renames an organization, subject to the same
// admin-or-self rule as GetOrganization.
func (s *organizationService) UpdateOrganization(ctx context.Context, principal *models.Organization, id uuid.UUID, name string) (*models.Organization, error) {
	if !principal.IsAdmin && principal.ID != id {
		return nil, utils.ErrForbidden
	}
	if err := s.orgRepo.UpdateOrganizationName(ctx, id, name); err != nil {
		return nil, err
	}
	org, err := s.orgRepo.GetOrganizationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, utils.ErrOrganizationNotFound
	}
	return org, nil
}

// ListOrganizations returns one page of organizations with the total count
func (s *organizationService) ListOrganizations(ctx context.Context, params models.ListOrganizationsParams) ([]*models.Organization, int64, error) {
	return s.orgRepo.ListOrganizations(ctx, params)
}

// DeleteOrganization removes an organization together with all of its
// transactions
func (s *organizationService) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	if err := s.orgRepo.DeleteOrganization(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Deleted organization", "id", id)
	return nil
}
