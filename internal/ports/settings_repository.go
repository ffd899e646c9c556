package ports

import (
	"context"

	"github.com/yuzawa-san/wawona/internal/domain"
)

type SettingsRepository interface {
	// Load returns domain.ErrSettingsOutdated when no current record exists.
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
	Delete(ctx context.Context) error
}
