package domain

import (
	"fmt"
	"strings"
)

const (
	CurrentSettingsVersion = 1
	DefaultStartHour       = 8
	DefaultEndHour         = 18
)

type Settings struct {
	Version          int
	Identity         string
	PreferredSpaceID string
	StartHour        int
	EndHour          int
}

func (s Settings) Validate() error {
	if strings.TrimSpace(s.Identity) == "" {
		return fmt.Errorf("identity is required")
	}
	if s.StartHour < 0 || s.StartHour > 23 {
		return fmt.Errorf("start hour %d out of range", s.StartHour)
	}
	if s.EndHour < 0 || s.EndHour > 23 {
		return fmt.Errorf("end hour %d out of range", s.EndHour)
	}
	return nil
}
