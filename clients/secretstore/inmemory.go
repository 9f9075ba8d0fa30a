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

package secretstore

import (
	"context"
	"sync"
)

// InMemoryStore is a map-backed Store for tests.
type InMemoryStore struct {
	mu      sync.RWMutex
	secrets map[string]string

	// PutFault, when set, is returned from PutSecret to exercise the
	// best-effort backup path.
	PutFault error
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore creates a store pre-populated with the given secrets
func NewInMemoryStore(secrets map[string]string) *InMemoryStore {
	if secrets == nil {
		secrets = make(map[string]string)
	}
	return &InMemoryStore{secrets: secrets}
}

func (s *InMemoryStore) GetSecret(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.secrets[name]
	if !ok {
		return "", ErrSecretNotFound
	}
	return value, nil
}

func (s *InMemoryStore) PutSecret(ctx context.Context, name, value string) error {
	if s.PutFault != nil {
		return s.PutFault
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[name] = value
	return nil
}
