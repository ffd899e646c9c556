package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/yuzawa-san/wawona/internal/adapters/prompt"
	"github.com/yuzawa-san/wawona/internal/adapters/render/calendar"
	"github.com/yuzawa-san/wawona/internal/adapters/render/floorplan"
	tomlrepo "github.com/yuzawa-san/wawona/internal/adapters/repo/toml"
	chainstore "github.com/yuzawa-san/wawona/internal/adapters/secrets/chain"
	filestore "github.com/yuzawa-san/wawona/internal/adapters/secrets/file"
	"github.com/yuzawa-san/wawona/internal/adapters/sequoia"
	"github.com/yuzawa-san/wawona/internal/application"
	"github.com/yuzawa-san/wawona/internal/ports"
)

const (
	secretBackendKeychain = "keychain"
	secretBackendPass     = "pass"
	secretBackendFile     = "file"
)

type app struct {
	workflow *application.Workflow
}

type wireOptions struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

func wireApp(opts wireOptions) (*app, error) {
	logger := newLogger(opts)

	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}

	secrets, err := newSecretStore()
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	client := &sequoia.Client{
		BaseURL:    envOrDefault("WAWONA_BASE_URL", sequoia.DefaultBaseURL),
		HTTPClient: http.DefaultClient,
		Logger:     logger,
	}

	workflow := application.NewWorkflow(application.Dependencies{
		Settings:  repo,
		Secrets:   secrets,
		Identity:  client,
		Workplace: client,
		Prompter:  prompt.NewTerminal(opts.in, opts.out),
		Grid:      calendar.NewRenderer(opts.out),
		FloorPlan: floorplan.NewRenderer(opts.out),
		Clock:     ports.SystemClock{},
		Waiter:    newWaiter(opts.out),
		Out:       opts.out,
		Logger:    logger,
	})

	return &app{workflow: workflow}, nil
}

func newSecretStore() (ports.SecretStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	fileRoot := envOrDefault("WAWONA_SECRETS_DIR", filepath.Join(homeDir, ".config", "wawona", "secrets"))

	switch backend := envOrDefault("WAWONA_SECRET_BACKEND", secretBackendKeychain); backend {
	case secretBackendKeychain:
		return chainstore.NewKeychainWithFileFallback(fileRoot)
	case secretBackendPass:
		return chainstore.NewPassWithFileFallback(fileRoot)
	case secretBackendFile:
		return filestore.NewStore(fileRoot), nil
	default:
		return nil, fmt.Errorf("unknown secret backend %q", backend)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
