package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ppopeskul/convoflow/internal/models"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

func (r *settingsRepository) Get(ctx context.Context, tenantID string) (*models.TenantSettings, error) {
	query := `
		SELECT tenant_id, timezone, start_hour, end_hour, cooldown_seconds, debounce_seconds, daily_send_cap,
		       base_delay_ms, jitter_ms, min_delay_ms, ai_enabled, system_prompt, handoff_keywords
		FROM tenant_settings
		WHERE tenant_id = $1
	`

	var settings models.TenantSettings
	if err := r.db.GetContext(ctx, &settings, query, tenantID); err != nil {
		return nil, fmt.Errorf("failed to get tenant settings: %w", translate(err))
	}

	return &settings, nil
}
