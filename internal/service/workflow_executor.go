package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/metrics"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
)

type workflowExecutor struct {
	cfg        *config.WorkflowConfig
	repo       repository.Repository
	locker     ContactLocker
	settings   SettingsProvider
	dispatcher Dispatcher
	completion CompletionClient
	webhooks   WebhookCaller
	sequences  SequenceRunner
	logger     *zap.Logger
	opts       options
}

// NewWorkflowExecutor advances contacts through workflow graphs.
func NewWorkflowExecutor(
	cfg *config.WorkflowConfig,
	repo repository.Repository,
	locker ContactLocker,
	settings SettingsProvider,
	dispatcher Dispatcher,
	completion CompletionClient,
	webhooks WebhookCaller,
	sequences SequenceRunner,
	logger *zap.Logger,
	opts ...Option,
) WorkflowExecutor {
	return &workflowExecutor{
		cfg:        cfg,
		repo:       repo,
		locker:     locker,
		settings:   settings,
		dispatcher: dispatcher,
		completion: completion,
		webhooks:   webhooks,
		sequences:  sequences,
		logger:     logger.With(zap.String("component", "workflow")),
		opts:       buildOptions(opts),
	}
}

// nodeOutcome is what a node asks the traversal loop to do next.
type nodeOutcome struct {
	next     string
	halt     StepStatus
	resumeAt time.Time
}

// run carries the state of one Step call.
type run struct {
	in       StepInput
	contact  *models.Contact
	wf       *models.Workflow
	settings *models.TenantSettings
}

// Step runs nodes until one suspends, the graph ends, or a guard trips. The
// caller must hold the contact lock.
func (e *workflowExecutor) Step(ctx context.Context, in StepInput) (*StepResult, error) {
	result, err := e.step(ctx, in)
	status := "error"
	if result != nil {
		status = string(result.Status)
	}
	metrics.WorkflowSteps.WithLabelValues(status).Inc()
	return result, err
}

func (e *workflowExecutor) step(ctx context.Context, in StepInput) (*StepResult, error) {
	contact, wf := in.Contact, in.Workflow
	if contact.CollectedData == nil {
		contact.CollectedData = models.JSONMap{}
	}

	state, err := contact.FlowState()
	if err != nil {
		e.logger.Warn("Invalid flow state, starting over", zap.Int64("contact_id", contact.ID), zap.Error(err))
		state = models.IdleState()
	}
	if !state.IsIdle() && state.WorkflowID() != wf.ID {
		state = models.IdleState()
	}

	var current string
	answering := false
	switch state.Status() {
	case models.FlowStatusAwaitingInput:
		current = state.NodeID()
		answering = true
	case models.FlowStatusRunning:
		current = state.NodeID()
	case models.FlowStatusScheduled:
		if !in.Resume {
			return &StepResult{Status: StepScheduled, NodeID: state.NodeID()}, nil
		}
		current = state.NodeID()
	default:
		trigger, ok := wf.Trigger()
		if !ok {
			return &StepResult{Status: StepNoEntry}, nil
		}
		current = trigger.ID
	}

	r := &run{in: in, contact: contact, wf: wf}
	result := &StepResult{}
	visited := make(map[string]bool)
	fields := []zap.Field{
		zap.String("tenant_id", contact.TenantID),
		zap.Int64("contact_id", contact.ID),
		zap.String("workflow_id", wf.ID),
	}

	for depth := 0; ; depth++ {
		if depth >= e.cfg.MaxDepth {
			e.logger.Warn("Workflow depth ceiling reached", append(fields, zap.String("node_id", current))...)
			return e.finish(ctx, contact, models.RunningState(wf.ID, current), result, StepDepthExceeded, current)
		}

		node, ok := wf.Node(current)
		if !ok {
			if err := e.save(ctx, contact, models.IdleState()); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("workflow %s has no node %s", wf.ID, current)
		}

		if visited[node.ID] && !node.LoopControl {
			e.logger.Warn("Workflow revisited a node, halting", append(fields, zap.String("node_id", node.ID))...)
			return e.finish(ctx, contact, models.IdleState(), result, StepLoopHalted, node.ID)
		}
		visited[node.ID] = true
		result.Visited = append(result.Visited, node.ID)

		outcome, err := e.execute(ctx, r, node, answering)
		answering = false
		if err != nil {
			if saveErr := e.save(context.WithoutCancel(ctx), contact, models.RunningState(wf.ID, node.ID)); saveErr != nil {
				e.logger.Error("Failed to save flow state", append(fields, zap.Error(saveErr))...)
			}
			return nil, fmt.Errorf("failed to execute node %s: %w", node.ID, err)
		}

		switch outcome.halt {
		case StepWaitingForInput:
			return e.finish(ctx, contact, models.AwaitingInputState(wf.ID, node.ID), result, StepWaitingForInput, node.ID)
		case StepScheduled:
			return e.finish(ctx, contact, models.ScheduledState(wf.ID, outcome.next, outcome.resumeAt), result, StepScheduled, outcome.next)
		case StepCompleted:
			return e.finish(ctx, contact, models.IdleState(), result, StepCompleted, node.ID)
		}

		if outcome.next == "" {
			return e.finish(ctx, contact, models.IdleState(), result, StepCompleted, node.ID)
		}
		current = outcome.next
	}
}

func (e *workflowExecutor) finish(
	ctx context.Context,
	contact *models.Contact,
	state models.FlowState,
	result *StepResult,
	status StepStatus,
	nodeID string,
) (*StepResult, error) {
	if err := e.save(ctx, contact, state); err != nil {
		return nil, err
	}
	result.Status = status
	result.NodeID = nodeID

	e.logger.Debug("Workflow step finished",
		zap.Int64("contact_id", contact.ID),
		zap.String("status", string(status)),
		zap.Strings("visited", result.Visited),
	)
	return result, nil
}

func (e *workflowExecutor) save(ctx context.Context, contact *models.Contact, state models.FlowState) error {
	contact.SetFlowState(state)
	if err := e.repo.Contact().SaveState(ctx, contact); err != nil {
		return fmt.Errorf("failed to save flow state: %w", err)
	}
	return nil
}

// ResumeDue continues contacts whose wait node has elapsed.
func (e *workflowExecutor) ResumeDue(ctx context.Context) error {
	now := e.opts.now()
	contacts, err := e.repo.Contact().ListScheduledDue(ctx, now, e.cfg.ResumeBatch)
	if err != nil {
		return fmt.Errorf("failed to list scheduled contacts: %w", err)
	}

	for _, c := range contacts {
		err := withContactLock(ctx, e.locker, c.ID, func(ctx context.Context) error {
			return e.resume(ctx, c.ID, now)
		})
		switch {
		case errors.Is(err, ErrContactBusy):
			e.logger.Debug("Contact busy, resume deferred", zap.Int64("contact_id", c.ID))
		case err != nil:
			e.logger.Error("Failed to resume workflow", zap.Int64("contact_id", c.ID), zap.Error(err))
		}
	}
	return nil
}

func (e *workflowExecutor) resume(ctx context.Context, contactID int64, now time.Time) error {
	contact, err := e.repo.Contact().GetByID(ctx, contactID)
	if err != nil {
		return fmt.Errorf("failed to reload contact: %w", err)
	}

	state, err := contact.FlowState()
	if err != nil || state.Status() != models.FlowStatusScheduled || state.ResumeAt().After(now) {
		return nil
	}

	wf, err := e.repo.Workflow().GetByID(ctx, contact.TenantID, state.WorkflowID())
	if errors.Is(err, repository.ErrNotFound) {
		return e.save(ctx, contact, models.IdleState())
	}
	if err != nil {
		return fmt.Errorf("failed to load workflow: %w", err)
	}

	_, err = e.Step(ctx, StepInput{
		Instance: contact.Instance,
		Contact:  contact,
		Workflow: wf,
		Resume:   true,
	})
	return err
}
