package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
)

type settingsProvider struct {
	repo     repository.Repository
	defaults config.TenantDefaultsConfig
}

// NewSettingsProvider reads tenant_settings and falls back to configured
// defaults for tenants that never saved any.
func NewSettingsProvider(repo repository.Repository, defaults config.TenantDefaultsConfig) SettingsProvider {
	return &settingsProvider{
		repo:     repo,
		defaults: defaults,
	}
}

func (p *settingsProvider) Resolve(ctx context.Context, tenantID string) (*models.TenantSettings, error) {
	settings, err := p.repo.Settings().Get(ctx, tenantID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve tenant settings: %w", err)
	}

	d := p.defaults
	return &models.TenantSettings{
		TenantID:        tenantID,
		Timezone:        d.Timezone,
		StartHour:       d.StartHour,
		EndHour:         d.EndHour,
		CooldownSeconds: d.CooldownSeconds,
		DebounceSeconds: d.DebounceSeconds,
		DailySendCap:    d.DailySendCap,
		BaseDelayMs:     d.BaseDelayMs,
		JitterMs:        d.JitterMs,
		MinDelayMs:      d.MinDelayMs,
		AIEnabled:       d.AIEnabled,
		SystemPrompt:    d.SystemPrompt,
		HandoffKeywords: pq.StringArray(d.HandoffKeywords),
	}, nil
}
