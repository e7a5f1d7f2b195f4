package models

import (
	"time"

	"github.com/lib/pq"
)

// TenantSettings is the per-tenant config surface consumed read-only by the core.
type TenantSettings struct {
	TenantID        string         `db:"tenant_id" json:"tenant_id"`
	Timezone        string         `db:"timezone" json:"timezone"`
	StartHour       int            `db:"start_hour" json:"start_hour"`
	EndHour         int            `db:"end_hour" json:"end_hour"`
	CooldownSeconds int            `db:"cooldown_seconds" json:"cooldown_seconds"`
	DebounceSeconds int            `db:"debounce_seconds" json:"debounce_seconds"`
	DailySendCap    int            `db:"daily_send_cap" json:"daily_send_cap"`
	BaseDelayMs     int            `db:"base_delay_ms" json:"base_delay_ms"`
	JitterMs        int            `db:"jitter_ms" json:"jitter_ms"`
	MinDelayMs      int            `db:"min_delay_ms" json:"min_delay_ms"`
	AIEnabled       bool           `db:"ai_enabled" json:"ai_enabled"`
	SystemPrompt    string         `db:"system_prompt" json:"system_prompt"`
	HandoffKeywords pq.StringArray `db:"handoff_keywords" json:"handoff_keywords"`
}

// Location resolves the configured timezone, falling back to UTC.
func (s *TenantSettings) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *TenantSettings) Cooldown() time.Duration {
	return time.Duration(s.CooldownSeconds) * time.Second
}

func (s *TenantSettings) DebounceHorizon() time.Duration {
	return time.Duration(s.DebounceSeconds) * time.Second
}
