package keychain

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/99designs/keyring"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

const serviceName = "wawona"

// Store keeps secrets in the operating system keychain. The keychain is opened on
// first use so commands that never touch secrets do not trigger unlock prompts.
type Store struct {
	open func() (keyring.Keyring, error)

	once sync.Once
	ring keyring.Keyring
	err  error
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{open: func() (keyring.Keyring, error) {
		return keyring.Open(keyring.Config{
			ServiceName: serviceName,
			AllowedBackends: []keyring.BackendType{
				keyring.KeychainBackend,
				keyring.SecretServiceBackend,
				keyring.KWalletBackend,
				keyring.WinCredBackend,
			},
			KeychainTrustApplication: true,
		})
	}}
}

// NewStoreWithKeyring wraps an already opened keyring.
func NewStoreWithKeyring(ring keyring.Keyring) *Store {
	return &Store{open: func() (keyring.Keyring, error) { return ring, nil }}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ring, err := s.keyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", fmt.Errorf("keyring secret %q: %w", key, domain.ErrSecretNotFound)
		}
		return "", fmt.Errorf("read keyring secret %q: %w", key, err)
	}

	return string(item.Data), nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ring, err := s.keyring()
	if err != nil {
		return err
	}

	if err := ring.Set(keyring.Item{Key: key, Data: []byte(value), Label: serviceName + " " + key}); err != nil {
		return fmt.Errorf("write keyring secret %q: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ring, err := s.keyring()
	if err != nil {
		return err
	}

	if err := ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("delete keyring secret %q: %w", key, err)
	}

	return nil
}

func (s *Store) keyring() (keyring.Keyring, error) {
	s.once.Do(func() {
		s.ring, s.err = s.open()
		if s.err != nil {
			s.err = fmt.Errorf("open keyring: %w", s.err)
		}
	})
	return s.ring, s.err
}
