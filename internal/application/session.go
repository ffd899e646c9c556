package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

const workplaceHint = "Please authenticate via https://px.sequoia.com/workplace before retrying."

// SessionManager owns the bearer token for one identity.
type SessionManager struct {
	provider ports.IdentityProvider
	secrets  ports.SecretStore
	prompter ports.Prompter
	out      io.Writer
	logger   *slog.Logger
	session  domain.Session
}

func NewSessionManager(identity string, provider ports.IdentityProvider, secrets ports.SecretStore, prompter ports.Prompter, out io.Writer, logger *slog.Logger) *SessionManager {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &SessionManager{
		provider: provider,
		secrets:  secrets,
		prompter: prompter,
		out:      out,
		logger:   logger,
		session:  domain.Session{Identity: strings.TrimSpace(identity)},
	}
}

func (m *SessionManager) Identity() string {
	return m.session.Identity
}

// Obtain returns a usable token. Unless forceRefresh is set, a cached or stored
// token is returned without touching the network.
func (m *SessionManager) Obtain(ctx context.Context, forceRefresh bool) (string, error) {
	if !forceRefresh {
		if m.session.Freshness == domain.FreshnessValid && m.session.Token != "" {
			return m.session.Token, nil
		}
		if token, ok := m.lookup(ctx, domain.RealmToken); ok {
			m.replace(token)
			return token, nil
		}
	}
	m.session.Freshness = domain.FreshnessStale

	identity := m.session.Identity
	if err := m.provider.VerifyIdentity(ctx, identity); err != nil {
		return "", &domain.AuthError{Stage: domain.AuthStageVerifyIdentity, Err: err}
	}

	password, ok := m.lookup(ctx, domain.RealmCredential)
	if !ok {
		var err error
		password, err = m.prompter.Password(ctx, ports.TextPrompt{Message: "Password"})
		if err != nil {
			return "", &domain.AuthError{Stage: domain.AuthStageLogin, Err: err}
		}
	}

	result, err := m.provider.Login(ctx, identity, password)
	if err != nil {
		return "", &domain.AuthError{Stage: domain.AuthStageLogin, Err: err}
	}

	switch result.Status {
	case domain.AuthStatusSuccess:
	case domain.AuthStatusMFAChallenge:
		if err := m.verifyMFA(ctx, result); err != nil {
			return "", err
		}
	default:
		return "", &domain.AuthError{Stage: domain.AuthStageLogin, Status: result.Status, Hint: workplaceHint}
	}

	if err := m.secrets.Put(ctx, domain.SecretKey(domain.RealmCredential, identity), password); err != nil {
		return "", fmt.Errorf("store credential: %w", err)
	}
	if err := m.secrets.Put(ctx, domain.SecretKey(domain.RealmToken, identity), result.Token); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	m.logger.DebugContext(ctx, "session established", "identity", identity, "status", string(result.Status))
	m.replace(result.Token)
	return result.Token, nil
}

// Forget drops the stored credential and token.
func (m *SessionManager) Forget(ctx context.Context) error {
	m.session = domain.Session{Identity: m.session.Identity}

	var errs []error
	for _, realm := range []string{domain.RealmCredential, domain.RealmToken} {
		if err := m.secrets.Delete(ctx, domain.SecretKey(realm, m.session.Identity)); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			errs = append(errs, fmt.Errorf("delete %s secret: %w", realm, err))
		}
	}
	return errors.Join(errs...)
}

func (m *SessionManager) verifyMFA(ctx context.Context, result domain.LoginResult) error {
	if len(result.Factors) > 0 {
		factor := result.Factors[0]
		factorType := factor.Type
		if factorType == "" {
			factorType = "unknown"
		}
		fmt.Fprintf(m.out, "Using MFA %s %s\n", factorType, factor.PhoneNumber)
	}

	for {
		code, err := m.prompter.Text(ctx, ports.TextPrompt{Message: "MFA Code"})
		if err != nil {
			return &domain.AuthError{Stage: domain.AuthStageMFA, Status: result.Status, Err: err}
		}

		err = m.provider.VerifyMFA(ctx, result.Token, strings.TrimSpace(code))
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return &domain.AuthError{Stage: domain.AuthStageMFA, Status: result.Status, Err: ctx.Err()}
		}
		fmt.Fprintln(m.out, "MFA Verification Failed", err)
	}
}

func (m *SessionManager) lookup(ctx context.Context, realm string) (string, bool) {
	value, err := m.secrets.Get(ctx, domain.SecretKey(realm, m.session.Identity))
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			m.logger.DebugContext(ctx, "secret lookup failed", "realm", realm, "error", err)
		}
		return "", false
	}
	if value == "" {
		return "", false
	}
	return value, true
}

func (m *SessionManager) replace(token string) {
	m.session = domain.Session{
		Identity:  m.session.Identity,
		Token:     token,
		Freshness: domain.FreshnessValid,
	}
}

// withSession runs fn with the current token. A rejected token triggers exactly
// one forced refresh and one retry.
func withSession[T any](ctx context.Context, m *SessionManager, fn func(token string) (T, error)) (T, error) {
	var zero T

	token, err := m.Obtain(ctx, false)
	if err != nil {
		return zero, err
	}

	value, err := fn(token)
	if err == nil || !errors.Is(err, domain.ErrUnauthorized) {
		return value, err
	}

	m.logger.DebugContext(ctx, "token rejected, refreshing session", "error", err)
	token, err = m.Obtain(ctx, true)
	if err != nil {
		return zero, err
	}
	return fn(token)
}

// doWithSession is withSession for calls without a result.
func doWithSession(ctx context.Context, m *SessionManager, fn func(token string) error) error {
	_, err := withSession(ctx, m, func(token string) (struct{}, error) {
		return struct{}{}, fn(token)
	})
	return err
}
