package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	filestore "github.com/yuzawa-san/wawona/internal/adapters/secrets/file"
	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/version"
)

const (
	testIdentity = "ada@example.com"
	ctrlC        = "\x03"
)

// fakeBackend books every day of the requested range, so a run never reaches
// an interactive prompt.
type fakeBackend struct {
	mu         sync.Mutex
	validToken string
	password   string
	calls      []string
}

func (b *fakeBackend) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, r.Method+" "+r.URL.Path)
		validToken := b.validToken
		b.mu.Unlock()

		if strings.HasPrefix(r.URL.Path, "/rtw/") && r.Header.Get("Token") != validToken {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"success":false,"message":"expired"}`)
			return
		}

		switch r.URL.Path {
		case "/idm/v1/contacts/verify-email":
			fmt.Fprint(w, `{"success":true,"data":{}}`)
		case "/idm/users/login":
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			if body["password"] != b.password {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"success":false,"message":"bad password"}`)
				return
			}
			fmt.Fprintf(w, `{"success":true,"data":{"userDetails":{"apiToken":%q,"oktaStatus":"SUCCESS"}}}`, validToken)
		case "/rtw/client/dashboard/summary":
			start, err := domain.ParseQueryDate(r.URL.Query().Get("statStart"))
			assert.NoError(t, err)
			stats := make([]string, 0, domain.FortnightDays)
			for i := 0; i < domain.FortnightDays; i++ {
				stats = append(stats, fmt.Sprintf(`{"date":%q}`, start.AddDays(i).QueryString()))
			}
			fmt.Fprintf(w, `{"success":true,"data":{"weeklyStats":[%s]}}`, strings.Join(stats, ","))
		case "/rtw/client/followings":
			start, err := domain.ParseQueryDate(r.URL.Query().Get("startDate"))
			assert.NoError(t, err)
			fmt.Fprintf(w, `{"success":true,"data":{"followings":[{"fullName":"Grace Hopper","reservationsMetadata":[{"reservationStartTime":%q}]}]}}`,
				start.Format("2006-01-02")+" 09:00:00")
		case "/rtw/client/pending-task":
			fmt.Fprint(w, `{"success":true,"data":{"tasks":[]}}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (b *fakeBackend) called(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, call := range b.calls {
		if strings.HasSuffix(call, " "+path) {
			n++
		}
	}
	return n
}

type testEnv struct {
	home       string
	secretsDir string
	backend    *fakeBackend
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		home:    t.TempDir(),
		backend: &fakeBackend{validToken: "token-1", password: "hunter2"},
	}
	env.secretsDir = filepath.Join(env.home, "secrets")

	server := httptest.NewServer(env.backend.handler(t))
	t.Cleanup(server.Close)

	t.Setenv("HOME", env.home)
	t.Setenv("WAWONA_BASE_URL", server.URL)
	t.Setenv("WAWONA_SECRET_BACKEND", secretBackendFile)
	t.Setenv("WAWONA_SECRETS_DIR", env.secretsDir)
	t.Setenv("WAWONA_SETTINGS_PATH", "")

	return env
}

func (e *testEnv) settingsPath() string {
	return filepath.Join(e.home, ".config", "wawona", "config.toml")
}

func (e *testEnv) writeSettings(t *testing.T) {
	t.Helper()

	settings := fmt.Sprintf("version = %d\nemail = %q\npreferred_space_id = \"\"\nstart_hour = 8\nend_hour = 18\n",
		domain.CurrentSettingsVersion, testIdentity)
	require.NoError(t, os.MkdirAll(filepath.Dir(e.settingsPath()), 0o700))
	require.NoError(t, os.WriteFile(e.settingsPath(), []byte(settings), 0o600))
}

func (e *testEnv) storeSecret(t *testing.T, realm, value string) {
	t.Helper()

	store := filestore.NewStore(e.secretsDir)
	require.NoError(t, store.Put(context.Background(), domain.SecretKey(realm, testIdentity), value))
}

func (e *testEnv) secret(t *testing.T, realm string) string {
	t.Helper()

	value, err := filestore.NewStore(e.secretsDir).Get(context.Background(), domain.SecretKey(realm, testIdentity))
	require.NoError(t, err)
	return value
}

func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, "", args...)
}

func executeCLIWithInput(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestVersionCommandPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestRunShowsCalendarWhenEverythingIsBooked(t *testing.T) {
	env := newTestEnv(t)
	env.writeSettings(t)
	env.storeSecret(t, domain.RealmToken, "token-1")

	stdout, _, err := executeCLI(t)
	require.NoError(t, err)

	assert.Contains(t, stdout, "W A W O N A")
	assert.Contains(t, stdout, projectURL)
	assert.Contains(t, stdout, "WEEK OF")
	assert.Contains(t, stdout, domain.YouName)
	assert.Contains(t, stdout, "Grace Hopper")
	assert.NotContains(t, stdout, "No reservations added.")
	assert.Equal(t, 0, env.backend.called("/idm/users/login"))
	assert.Equal(t, 1, env.backend.called("/rtw/client/pending-task"))
}

func TestRunRefreshesExpiredTokenWithStoredPassword(t *testing.T) {
	env := newTestEnv(t)
	env.writeSettings(t)
	env.storeSecret(t, domain.RealmToken, "stale-token")
	env.storeSecret(t, domain.RealmCredential, "hunter2")

	_, _, err := executeCLI(t)
	require.NoError(t, err)

	assert.Equal(t, 1, env.backend.called("/idm/users/login"))
	assert.Equal(t, "token-1", env.secret(t, domain.RealmToken))
}

func TestRunVerboseTracesRequests(t *testing.T) {
	env := newTestEnv(t)
	env.writeSettings(t)
	env.storeSecret(t, domain.RealmToken, "token-1")

	stdout, _, err := executeCLI(t, "--verbose")
	require.NoError(t, err)

	assert.Contains(t, stdout, "/rtw/client/dashboard/summary")
	assert.NotContains(t, stdout, "token-1")
}

func TestRunWithoutSettingsStopsWhenWizardIsCancelled(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := executeCLIWithInput(t, ctrlC)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPromptAborted)

	_, statErr := os.Stat(env.settingsPath())
	assert.ErrorIs(t, statErr, os.ErrNotExist)
	assert.Zero(t, env.backend.called("/idm/users/login"))
}

func TestResetRemovesSettingsBeforeRunning(t *testing.T) {
	env := newTestEnv(t)
	env.writeSettings(t)
	env.storeSecret(t, domain.RealmToken, "token-1")

	stdout, _, err := executeCLIWithInput(t, ctrlC, "reset")
	require.ErrorIs(t, err, domain.ErrPromptAborted)
	assert.Contains(t, stdout, "Removing config file")

	_, statErr := os.Stat(env.settingsPath())
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestUnknownSecretBackendIsRejected(t *testing.T) {
	env := newTestEnv(t)
	env.writeSettings(t)
	t.Setenv("WAWONA_SECRET_BACKEND", "vault")

	_, _, err := executeCLI(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown secret backend "vault"`)
}
