package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/lock"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
)

type automationRouter struct {
	repo     repository.Repository
	locker   ContactLocker
	settings SettingsProvider
	executor WorkflowExecutor
	logger   *zap.Logger
	opts     options
}

// NewAutomationRouter decides which automated path an inbound message takes.
func NewAutomationRouter(
	repo repository.Repository,
	locker ContactLocker,
	settings SettingsProvider,
	executor WorkflowExecutor,
	logger *zap.Logger,
	opts ...Option,
) AutomationRouter {
	return &automationRouter{
		repo:     repo,
		locker:   locker,
		settings: settings,
		executor: executor,
		logger:   logger.With(zap.String("component", "router")),
		opts:     buildOptions(opts),
	}
}

// ContactLockKey is the lease key that serializes all automation for one contact.
func ContactLockKey(contactID int64) string {
	return "contact:" + strconv.FormatInt(contactID, 10)
}

func withContactLock(ctx context.Context, locker ContactLocker, contactID int64, fn func(ctx context.Context) error) error {
	err := locker.WithLock(ctx, ContactLockKey(contactID), fn)
	if errors.Is(err, lock.ErrNotAcquired) {
		return fmt.Errorf("%w: contact %d", ErrContactBusy, contactID)
	}
	return err
}

// Route sends a user message to the contact's active workflow, a workflow
// whose trigger matches, or the AI debounce buffer, in that order.
func (r *automationRouter) Route(ctx context.Context, in *Inbound) error {
	if in == nil || in.Message == nil || in.Message.Role != models.RoleUser {
		return nil
	}

	return withContactLock(ctx, r.locker, in.Contact.ID, func(ctx context.Context) error {
		return r.route(ctx, in)
	})
}

func (r *automationRouter) route(ctx context.Context, in *Inbound) error {
	contact, err := r.repo.Contact().GetByID(ctx, in.Contact.ID)
	if err != nil {
		return fmt.Errorf("failed to reload contact: %w", err)
	}
	if contact.HandlingMode == models.HandlingModeManual {
		return nil
	}

	text := in.Message.Content
	fields := []zap.Field{
		zap.String("tenant_id", contact.TenantID),
		zap.Int64("contact_id", contact.ID),
	}

	state, err := contact.FlowState()
	if err != nil {
		r.logger.Warn("Resetting invalid flow state", append(fields, zap.Error(err))...)
		if err := r.resetState(ctx, contact); err != nil {
			return err
		}
		state = models.IdleState()
	}

	if !state.IsIdle() {
		wf, err := r.repo.Workflow().GetByID(ctx, contact.TenantID, state.WorkflowID())
		switch {
		case errors.Is(err, repository.ErrNotFound):
			r.logger.Warn("Active workflow no longer exists", append(fields, zap.String("workflow_id", state.WorkflowID()))...)
			if err := r.resetState(ctx, contact); err != nil {
				return err
			}
		case err != nil:
			return fmt.Errorf("failed to load active workflow: %w", err)
		case state.Status() == models.FlowStatusScheduled:
			r.logger.Debug("Contact waiting on a timer, message not routed", fields...)
			return nil
		default:
			return r.step(ctx, in, contact, wf)
		}
	}

	if contact.HandlingMode != models.HandlingModeAI {
		return nil
	}

	wf, err := r.matchTrigger(ctx, contact.TenantID, text)
	if err != nil {
		return err
	}
	if wf != nil {
		r.logger.Info("Workflow triggered", append(fields, zap.String("workflow_id", wf.ID))...)
		return r.step(ctx, in, contact, wf)
	}

	settings, err := r.settings.Resolve(ctx, contact.TenantID)
	if err != nil {
		return err
	}
	if !settings.AIEnabled {
		return nil
	}

	triggerAt := r.opts.now().Add(settings.DebounceHorizon())
	if _, err := r.repo.Buffer().Append(ctx, contact.TenantID, contact.ID, text, triggerAt); err != nil {
		return fmt.Errorf("failed to buffer message: %w", err)
	}

	r.logger.Debug("Message buffered", append(fields, zap.Time("trigger_at", triggerAt))...)
	return nil
}

func (r *automationRouter) step(ctx context.Context, in *Inbound, contact *models.Contact, wf *models.Workflow) error {
	_, err := r.executor.Step(ctx, StepInput{
		Instance: in.Instance,
		Contact:  contact,
		Workflow: wf,
		Text:     in.Message.Content,
	})
	if err != nil {
		return fmt.Errorf("failed to step workflow: %w", err)
	}
	return nil
}

// matchTrigger prefers a keyword match over a catch-all trigger.
func (r *automationRouter) matchTrigger(ctx context.Context, tenantID string, text string) (*models.Workflow, error) {
	workflows, err := r.repo.Workflow().ListActive(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active workflows: %w", err)
	}

	var catchAll *models.Workflow
	for _, wf := range workflows {
		matched, isCatchAll := wf.MatchesTrigger(text)
		if !matched {
			continue
		}
		if !isCatchAll {
			return wf, nil
		}
		if catchAll == nil {
			catchAll = wf
		}
	}
	return catchAll, nil
}

func (r *automationRouter) resetState(ctx context.Context, contact *models.Contact) error {
	contact.SetFlowState(models.IdleState())
	if err := r.repo.Contact().SaveState(ctx, contact); err != nil {
		return fmt.Errorf("failed to reset flow state: %w", err)
	}
	return nil
}
