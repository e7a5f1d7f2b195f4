// Package decision gates automated replies. Decide is pure: every input,
// including the clock, is passed in.
package decision

import (
	"fmt"
	"strings"
	"time"

	"github.com/ppopeskul/convoflow/internal/models"
)

const (
	ReasonUserRequestedHuman   = "user_requested_human"
	ReasonHandlingModeHuman    = "handling_mode_is_human"
	ReasonOutsideBusinessHours = "outside_business_hours"
	ReasonEligible             = "eligible"
)

// DefaultHandoffKeywords apply when a tenant configures none.
var DefaultHandoffKeywords = []string{"human", "humano", "atendente", "operator", "agent"}

type Input struct {
	Contact  *models.Contact
	Text     string
	Settings *models.TenantSettings
	Now      time.Time

	// LastAssistantAt is only meaningful when HasLastAssistant is set.
	LastAssistantAt  time.Time
	HasLastAssistant bool
}

type Result struct {
	ShouldRespond bool   `json:"should_respond"`
	Reason        string `json:"reason"`
}

// Decide evaluates the rule chain in order; the first match wins.
func Decide(in Input) Result {
	if RequestsHuman(in.Text, in.Settings.HandoffKeywords) {
		return Result{Reason: ReasonUserRequestedHuman}
	}

	if in.Contact != nil && in.Contact.HandlingMode == models.HandlingModeHuman {
		return Result{Reason: ReasonHandlingModeHuman}
	}

	local := in.Now.In(in.Settings.Location())
	if !WithinBusinessHours(local.Hour(), in.Settings.StartHour, in.Settings.EndHour) {
		return Result{Reason: ReasonOutsideBusinessHours}
	}

	if in.HasLastAssistant {
		elapsed := in.Now.Sub(in.LastAssistantAt)
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed < in.Settings.Cooldown() {
			return Result{Reason: CooldownReason(elapsed)}
		}
	}

	return Result{ShouldRespond: true, Reason: ReasonEligible}
}

// CooldownReason formats the elapsed time in whole seconds.
func CooldownReason(elapsed time.Duration) string {
	return fmt.Sprintf("cooldown_active_(%ds)", int64(elapsed/time.Second))
}

// RequestsHuman reports a case-insensitive substring match on any keyword.
func RequestsHuman(text string, keywords []string) bool {
	if len(keywords) == 0 {
		keywords = DefaultHandoffKeywords
	}
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// WithinBusinessHours checks hour against [start, end). Equal bounds mean
// always open and start > end wraps past midnight.
func WithinBusinessHours(hour, start, end int) bool {
	switch {
	case start == end:
		return true
	case start < end:
		return hour >= start && hour < end
	default:
		return hour >= start || hour < end
	}
}
