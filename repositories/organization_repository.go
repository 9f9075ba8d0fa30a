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

package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/utils"
)

// OrganizationRepository defines the interface for organization data access.
// Lookups return (nil, nil) when no row matches; uniqueness violations come
// back as utils.ErrOrganizationAlreadyExists.
type OrganizationRepository interface {
	CreateOrganization(ctx context.Context, org *models.Organization) error
	GetOrganizationByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetOrganizationByAPIKey(ctx context.Context, apiKey string) (*models.Organization, error)
	AdminOrganizationExists(ctx context.Context) (bool, error)
	UpdateOrganizationName(ctx context.Context, id uuid.UUID, name string) error
	ListOrganizations(ctx context.Context, params models.ListOrganizationsParams) ([]*models.Organization, int64, error)
	DeleteOrganization(ctx context.Context, id uuid.UUID) error
}

// organizationSortColumns maps API sort fields to columns. Validation of the
// field name itself happens at the controller; anything else falls back to
// created_at.
var organizationSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// OrganizationRepo implements OrganizationRepository using GORM
type OrganizationRepo struct {
	db *gorm.DB
}

// NewOrganizationRepo creates a new organization repository
func NewOrganizationRepo(db *gorm.DB) OrganizationRepository {
	return &OrganizationRepo{db: db}
}

// CreateOrganization inserts a new organization
func (r *OrganizationRepo) CreateOrganization(ctx context.Context, org *models.Organization) error {
	now := time.Now()
	org.CreatedAt = now
	org.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		if isUniqueViolation(err) {
			return utils.ErrOrganizationAlreadyExists
		}
		return err
	}
	return nil
}

// GetOrganizationByID retrieves an organization by ID
func (r *OrganizationRepo) GetOrganizationByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// GetOrganizationByAPIKey retrieves an organization by its API key
func (r *OrganizationRepo) GetOrganizationByAPIKey(ctx context.Context, apiKey string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// AdminOrganizationExists reports whether an admin organization has been
// bootstrapped already
func (r *OrganizationRepo) AdminOrganizationExists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Organization{}).
		Where("is_admin = ?", true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateOrganizationName renames an organization
func (r *OrganizationRepo) UpdateOrganizationName(ctx context.Context, id uuid.UUID, name string) error {
	res := r.db.WithContext(ctx).Model(&models.Organization{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return utils.ErrOrganizationAlreadyExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrOrganizationNotFound
	}
	return nil
}

// ListOrganizations retrieves one page of organizations with the total count
// for the same filter
func (r *OrganizationRepo) ListOrganizations(ctx context.Context, params models.ListOrganizationsParams) ([]*models.Organization, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Organization{})
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := organizationSortColumns[params.SortBy]
	if !ok {
		column = "created_at"
	}
	order := "DESC"
	if params.SortOrder == "asc" {
		order = "ASC"
	}

	var organizations []*models.Organization
	err := query.Order(column + " " + order).
		Limit(params.Limit).
		Offset((params.Page - 1) * params.Limit).
		Find(&organizations).Error
	if err != nil {
		return nil, 0, err
	}
	return organizations, total, nil
}

// DeleteOrganization removes an organization and all of its transactions in
// one database transaction so a failure leaves neither a dangling
// organization nor orphaned transactions
func (r *OrganizationRepo) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Organization{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrOrganizationNotFound
		}
		return nil
	})
}
