package domain

import "strings"

type AuthStatus string

const (
	AuthStatusSuccess      AuthStatus = "SUCCESS"
	AuthStatusMFAChallenge AuthStatus = "MFA_CHALLENGE"
)

// Secret-store realms. Credentials and tokens live under separate realms keyed by identity.
const (
	RealmCredential = "login.sequoia.com"
	RealmToken      = "hrx-backend.sequoia.com"
)

type Freshness int

const (
	FreshnessStale Freshness = iota
	FreshnessValid
)

type Session struct {
	Identity  string
	Token     string
	Freshness Freshness
}

// LoginResult is what the backend reports after a credential login.
type LoginResult struct {
	Token   string
	Status  AuthStatus
	Factors []MFAFactor
}

type MFAFactor struct {
	Type        string
	PhoneNumber string
}

// SecretKey builds the secret-store key for a (realm, identity) pair.
func SecretKey(realm, identity string) string {
	return realm + "/" + strings.TrimSpace(identity)
}
