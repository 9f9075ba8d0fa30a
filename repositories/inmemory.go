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
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/wso2/roundup-donation-platform/roundup-service/models"
	"github.com/wso2/roundup-donation-platform/roundup-service/utils"
)

// InMemoryStore is a map-backed implementation of both repository interfaces
// for tests. It mirrors the database semantics that matter to callers: unique
// name and API key, (nil, nil) on missing lookups, and all-or-nothing
// organization deletion.
type InMemoryStore struct {
	mu   sync.RWMutex
	orgs map[uuid.UUID]*models.Organization
	txns map[uuid.UUID]*models.Transaction

	// DeleteOrganizationFault, when set, runs between the child-transaction
	// delete and the organization delete. Returning an error must leave the
	// pre-delete state intact, matching the database transaction.
	DeleteOrganizationFault func() error
}

var (
	_ OrganizationRepository = (*InMemoryStore)(nil)
	_ TransactionRepository  = (*InMemoryStore)(nil)
)

// NewInMemoryStore creates an empty in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		orgs: make(map[uuid.UUID]*models.Organization),
		txns: make(map[uuid.UUID]*models.Transaction),
	}
}

func (s *InMemoryStore) CreateOrganization(ctx context.Context, org *models.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.orgs {
		if existing.Name == org.Name || existing.APIKey == org.APIKey {
			return utils.ErrOrganizationAlreadyExists
		}
	}
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}
	now := time.Now()
	org.CreatedAt = now
	org.UpdatedAt = now
	cp := *org
	s.orgs[org.ID] = &cp
	return nil
}

func (s *InMemoryStore) GetOrganizationByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	org, ok := s.orgs[id]
	if !ok {
		return nil, nil
	}
	cp := *org
	return &cp, nil
}

func (s *InMemoryStore) GetOrganizationByAPIKey(ctx context.Context, apiKey string) (*models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, org := range s.orgs {
		if org.APIKey == apiKey {
			cp := *org
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *InMemoryStore) AdminOrganizationExists(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, org := range s.orgs {
		if org.IsAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryStore) UpdateOrganizationName(ctx context.Context, id uuid.UUID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	org, ok := s.orgs[id]
	if !ok {
		return utils.ErrOrganizationNotFound
	}
	for otherID, other := range s.orgs {
		if otherID != id && other.Name == name {
			return utils.ErrOrganizationAlreadyExists
		}
	}
	org.Name = name
	org.UpdatedAt = time.Now()
	return nil
}

func (s *InMemoryStore) ListOrganizations(ctx context.Context, params models.ListOrganizationsParams) ([]*models.Organization, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.Organization
	search := strings.ToLower(params.Search)
	for _, org := range s.orgs {
		if search != "" && !strings.Contains(strings.ToLower(org.Name), search) {
			continue
		}
		cp := *org
		matched = append(matched, &cp)
	}

	asc := params.SortOrder == "asc"
	sort.SliceStable(matched, func(i, j int) bool {
		// Descending order swaps the operands so equal keys still compare
		// false from both sides.
		if !asc {
			i, j = j, i
		}
		switch params.SortBy {
		case "name":
			return matched[i].Name < matched[j].Name
		case "updatedAt":
			return matched[i].UpdatedAt.Before(matched[j].UpdatedAt)
		default:
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
	})

	total := int64(len(matched))
	return pageSlice(matched, params.Page, params.Limit), total, nil
}

func (s *InMemoryStore) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orgs[id]; !ok {
		return utils.ErrOrganizationNotFound
	}
	var owned []uuid.UUID
	for txnID, txn := range s.txns {
		if txn.OrganizationID == id {
			owned = append(owned, txnID)
		}
	}
	// Nothing is mutated until the fault point has passed, so a failure
	// leaves the pre-delete state intact.
	if s.DeleteOrganizationFault != nil {
		if err := s.DeleteOrganizationFault(); err != nil {
			return err
		}
	}
	for _, txnID := range owned {
		delete(s.txns, txnID)
	}
	delete(s.orgs, id)
	return nil
}

func (s *InMemoryStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now
	cp := *txn
	s.txns[txn.ID] = &cp
	return nil
}

func (s *InMemoryStore) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txn, ok := s.txns[id]
	if !ok {
		return nil, nil
	}
	cp := *txn
	return &cp, nil
}

func (s *InMemoryStore) matchTransactions(orgID *uuid.UUID, start, end *time.Time) []*models.Transaction {
	var matched []*models.Transaction
	for _, txn := range s.txns {
		if orgID != nil && txn.OrganizationID != *orgID {
			continue
		}
		if start != nil && end != nil {
			if txn.CreatedAt.Before(*start) || txn.CreatedAt.After(*end) {
				continue
			}
		}
		cp := *txn
		matched = append(matched, &cp)
	}
	return matched
}

func (s *InMemoryStore) ListTransactions(ctx context.Context, params models.ListTransactionsParams) ([]*models.Transaction, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.matchTransactions(params.OrganizationID, params.StartDate, params.EndDate)

	asc := params.SortOrder == "asc"
	sort.SliceStable(matched, func(i, j int) bool {
		if !asc {
			i, j = j, i
		}
		switch params.SortBy {
		case "originalAmount":
			return matched[i].OriginalAmount.LessThan(matched[j].OriginalAmount)
		case "roundedAmount":
			return matched[i].RoundedAmount.LessThan(matched[j].RoundedAmount)
		case "donationAmount":
			return matched[i].DonationAmount.LessThan(matched[j].DonationAmount)
		default:
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
	})

	total := int64(len(matched))
	return pageSlice(matched, params.Page, params.Limit), total, nil
}

func (s *InMemoryStore) ReportTransactions(ctx context.Context, params models.ReportParams) (*models.TransactionReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.matchTransactions(params.OrganizationID, params.StartDate, params.EndDate)
	total := decimal.Zero
	for _, txn := range matched {
		total = total.Add(txn.DonationAmount)
	}
	return &models.TransactionReport{
		TotalTransactions: int64(len(matched)),
		TotalDonations:    total,
	}, nil
}

func (s *InMemoryStore) UpdateTransactionMetadata(ctx context.Context, id uuid.UUID, metadata datatypes.JSONMap) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.txns[id]
	if !ok {
		return nil, utils.ErrTransactionNotFound
	}
	txn.Metadata = metadata
	txn.UpdatedAt = time.Now()
	cp := *txn
	return &cp, nil
}

func (s *InMemoryStore) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.txns[id]; !ok {
		return utils.ErrTransactionNotFound
	}
	delete(s.txns, id)
	return nil
}

func pageSlice[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
