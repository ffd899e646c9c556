package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

const (
	envPrefix          = "wawona"
	settingsPathKey    = "settings.path"
	settingsFileMode   = 0o600
	settingsDirMode    = 0o700
	settingsConfigDir  = ".config/wawona"
	settingsConfigFile = "config.toml"
	tempFilePattern    = ".config-*.toml.tmp"
)

// Repository persists the settings record as a single versioned TOML document.
type Repository struct {
	settingsPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SettingsRepository = (*Repository)(nil)

// NewRepository resolves the settings path from cfg. The path defaults to
// ~/.config/wawona/config.toml and can be overridden with WAWONA_SETTINGS_PATH.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetEnvPrefix(envPrefix)
	if err := cfg.BindEnv(settingsPathKey, "WAWONA_SETTINGS_PATH"); err != nil {
		return nil, fmt.Errorf("bind settings path env: %w", err)
	}

	if !cfg.IsSet(settingsPathKey) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetDefault(settingsPathKey, filepath.Join(homeDir, filepath.FromSlash(settingsConfigDir), settingsConfigFile))
	}

	settingsPath := cfg.GetString(settingsPathKey)
	if settingsPath == "" {
		return nil, errors.New("settings path is empty")
	}
	settingsPath, err := normalizePath(settingsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{settingsPath: settingsPath, mu: lockForPath(settingsPath)}, nil
}

func (r *Repository) Path() string {
	return r.settingsPath
}

// Load returns domain.ErrSettingsOutdated when the file is missing or carries another version.
func (r *Repository) Load(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.settingsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Settings{}, fmt.Errorf("settings file %s not found: %w", r.settingsPath, domain.ErrSettingsOutdated)
		}
		return domain.Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var schema settingsSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings file: %w", err)
	}
	if schema.Version != domain.CurrentSettingsVersion {
		return domain.Settings{}, fmt.Errorf("settings version %d (current %d): %w", schema.Version, domain.CurrentSettingsVersion, domain.ErrSettingsOutdated)
	}

	return fromSchema(schema), nil
}

func (r *Repository) Save(ctx context.Context, settings domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.write(toSchema(settings))
}

// Delete removes the settings file; a missing file is not an error.
func (r *Repository) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.settingsPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove settings file: %w", err)
	}
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) write(schema settingsSchema) error {
	if err := os.MkdirAll(filepath.Dir(r.settingsPath), settingsDirMode); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := toml.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.settingsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp settings file: %w", err)
	}

	if err := tempFile.Chmod(settingsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp settings file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp settings file: %w", err)
	}

	if err := os.Rename(tempName, r.settingsPath); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	cleanup = false
	return nil
}
