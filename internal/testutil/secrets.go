package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

// FakeSecretStore keeps secrets in memory.
type FakeSecretStore struct {
	mu      sync.Mutex
	secrets map[string]string
}

var _ ports.SecretStore = (*FakeSecretStore)(nil)

func NewFakeSecretStore() *FakeSecretStore {
	return &FakeSecretStore{secrets: make(map[string]string)}
}

func (s *FakeSecretStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.secrets[key]
	if !ok {
		return "", fmt.Errorf("get %s: %w", key, domain.ErrSecretNotFound)
	}
	return value, nil
}

func (s *FakeSecretStore) Put(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[key] = value
	return nil
}

func (s *FakeSecretStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.secrets, key)
	return nil
}

// Len reports how many secrets are stored.
func (s *FakeSecretStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.secrets)
}
