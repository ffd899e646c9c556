package sequoia

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuzawa-san/wawona/internal/domain"
)

func TestLoginReportsMFAChallenge(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, loginPath, r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"email":       "ada@example.com",
			"password":    "pw",
			"browserHash": "1032275734",
			"userType":    "employee",
		}, body)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{
			"userDetails":{"apiToken":"pre-mfa","oktaStatus":"MFA_CHALLENGE"},
			"factors":[{"factorType":"sms","profile":{"phoneNumber":"+1 XXX-XXX-1234"}}]}}`)
	})

	result, err := client.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, domain.LoginResult{
		Token:   "pre-mfa",
		Status:  domain.AuthStatusMFAChallenge,
		Factors: []domain.MFAFactor{{Type: "sms", PhoneNumber: "+1 XXX-XXX-1234"}},
	}, result)
}

func TestLoginWithoutTokenFails(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"userDetails":{"oktaStatus":"LOCKED_OUT"}}}`)
	})

	_, err := client.Login(context.Background(), "ada@example.com", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing api token")
}

func TestVerifyMFASendsPreMFAToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyMFAPath, r.URL.Path)
		assert.Equal(t, "pre-mfa", r.Header.Get("apitoken"))
		assert.Empty(t, r.Header.Get("token"))
		var body verifyMFARequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, verifyMFARequest{PassCode: "123456", BrowserHash: browserHash}, body)
		writeJSON(w, http.StatusOK, `{"success":true}`)
	})

	require.NoError(t, client.VerifyMFA(context.Background(), "pre-mfa", "123456"))
}

func TestVerifyIdentity(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyIdentityPath, r.URL.Path)
		var body verifyIdentityRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body.Email)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{}}`)
	})

	require.NoError(t, client.VerifyIdentity(context.Background(), "ada@example.com"))
	require.Error(t, client.VerifyIdentity(context.Background(), "  "))
}
