package toml

import "github.com/yuzawa-san/wawona/internal/domain"

type settingsSchema struct {
	Version          int    `toml:"version"`
	Email            string `toml:"email"`
	PreferredSpaceID string `toml:"preferred_space_id"`
	StartHour        int    `toml:"start_hour"`
	EndHour          int    `toml:"end_hour"`
}

func toSchema(settings domain.Settings) settingsSchema {
	return settingsSchema{
		Version:          domain.CurrentSettingsVersion,
		Email:            settings.Identity,
		PreferredSpaceID: settings.PreferredSpaceID,
		StartHour:        settings.StartHour,
		EndHour:          settings.EndHour,
	}
}

func fromSchema(schema settingsSchema) domain.Settings {
	return domain.Settings{
		Version:          schema.Version,
		Identity:         schema.Email,
		PreferredSpaceID: schema.PreferredSpaceID,
		StartHour:        schema.StartHour,
		EndHour:          schema.EndHour,
	}
}
