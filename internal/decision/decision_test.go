package decision_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ppopeskul/convoflow/internal/decision"
	"github.com/ppopeskul/convoflow/internal/models"
)

func settings() *models.TenantSettings {
	return &models.TenantSettings{
		TenantID:        "8a6c1c3e-0000-4000-8000-000000000001",
		Timezone:        "America/Sao_Paulo",
		StartHour:       8,
		EndHour:         20,
		CooldownSeconds: 120,
	}
}

func TestDecide(t *testing.T) {
	// 15:00 in Sao Paulo (UTC-3)
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		in     decision.Input
		expect decision.Result
	}{
		{
			name: "Handoff keyword wins over everything",
			in: decision.Input{
				Contact:  &models.Contact{HandlingMode: models.HandlingModeHuman},
				Text:     "Quero falar com um ATENDENTE",
				Settings: settings(),
				Now:      now,
			},
			expect: decision.Result{Reason: decision.ReasonUserRequestedHuman},
		},
		{
			name: "Human mode regardless of content",
			in: decision.Input{
				Contact:  &models.Contact{HandlingMode: models.HandlingModeHuman},
				Text:     "what are your prices?",
				Settings: settings(),
				Now:      now,
			},
			expect: decision.Result{Reason: decision.ReasonHandlingModeHuman},
		},
		{
			name: "Outside business hours in tenant timezone",
			in: decision.Input{
				Contact:  &models.Contact{HandlingMode: models.HandlingModeAI},
				Text:     "hi",
				Settings: settings(),
				// 23:30 UTC is 20:30 in Sao Paulo
				Now: time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC),
			},
			expect: decision.Result{Reason: decision.ReasonOutsideBusinessHours},
		},
		{
			name: "Cooldown active",
			in: decision.Input{
				Contact:          &models.Contact{HandlingMode: models.HandlingModeAI},
				Text:             "hi",
				Settings:         settings(),
				Now:              now,
				LastAssistantAt:  now.Add(-10 * time.Second),
				HasLastAssistant: true,
			},
			expect: decision.Result{Reason: "cooldown_active_(10s)"},
		},
		{
			name: "Cooldown elapsed",
			in: decision.Input{
				Contact:          &models.Contact{HandlingMode: models.HandlingModeAI},
				Text:             "hi",
				Settings:         settings(),
				Now:              now,
				LastAssistantAt:  now.Add(-121 * time.Second),
				HasLastAssistant: true,
			},
			expect: decision.Result{ShouldRespond: true, Reason: decision.ReasonEligible},
		},
		{
			name: "Eligible without prior reply",
			in: decision.Input{
				Contact:  &models.Contact{HandlingMode: models.HandlingModeAI},
				Text:     "hi",
				Settings: settings(),
				Now:      now,
			},
			expect: decision.Result{ShouldRespond: true, Reason: decision.ReasonEligible},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := decision.Decide(tt.in)
			assert.Equal(t, tt.expect, first)
			assert.Equal(t, first, decision.Decide(tt.in))
		})
	}
}

func TestDecide_InvalidTimezoneFallsBackToUTC(t *testing.T) {
	s := settings()
	s.Timezone = "Mars/Olympus"

	res := decision.Decide(decision.Input{
		Contact:  &models.Contact{HandlingMode: models.HandlingModeAI},
		Text:     "hello",
		Settings: s,
		Now:      time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, decision.ReasonOutsideBusinessHours, res.Reason)
}

func TestWithinBusinessHours(t *testing.T) {
	tests := []struct {
		name       string
		hour       int
		start, end int
		expected   bool
	}{
		{name: "Inside day window", hour: 9, start: 8, end: 20, expected: true},
		{name: "Start is inclusive", hour: 8, start: 8, end: 20, expected: true},
		{name: "End is exclusive", hour: 20, start: 8, end: 20, expected: false},
		{name: "Wrapping window late", hour: 23, start: 22, end: 6, expected: true},
		{name: "Wrapping window early", hour: 5, start: 22, end: 6, expected: true},
		{name: "Wrapping window midday", hour: 12, start: 22, end: 6, expected: false},
		{name: "Equal bounds always open", hour: 3, start: 0, end: 0, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decision.WithinBusinessHours(tt.hour, tt.start, tt.end))
		})
	}
}

func TestRequestsHuman_CustomKeywords(t *testing.T) {
	assert.True(t, decision.RequestsHuman("Please get me a Supervisor", []string{"supervisor"}))
	assert.False(t, decision.RequestsHuman("talk to a human", []string{"supervisor"}))
	assert.True(t, decision.RequestsHuman("talk to a human", nil))
}
