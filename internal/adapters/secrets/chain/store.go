package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/yuzawa-san/wawona/internal/adapters/secrets/file"
	"github.com/yuzawa-san/wawona/internal/adapters/secrets/keychain"
	"github.com/yuzawa-san/wawona/internal/adapters/secrets/pass"
	"github.com/yuzawa-san/wawona/internal/ports"
)

// Store reads and writes through primary and falls back to fallback when primary fails.
// Deletes go to both so a value written during a primary outage cannot resurface.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewKeychainWithFileFallback(fileRoot string) (*Store, error) {
	return NewStoreChecked(keychain.NewStore(), file.NewStore(fileRoot))
}

func NewPassWithFileFallback(fileRoot string) (*Store, error) {
	return NewStoreChecked(pass.NewStore(), file.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err == nil:
		return fallbackErr
	case fallbackErr == nil:
		return nil
	default:
		return errors.Join(
			fmt.Errorf("primary backend delete failed: %w", err),
			fmt.Errorf("fallback backend delete failed: %w", fallbackErr),
		)
	}
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
