package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
)

type workflowService struct {
	repo     repository.Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewWorkflowService(repo repository.Repository, logger *zap.Logger) WorkflowService {
	return &workflowService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// Save validates the graph before storing it. Invalid graphs are rejected
// with models.ErrInvalidWorkflow and never reach the executor.
func (s *workflowService) Save(ctx context.Context, wf *models.Workflow) (*models.Workflow, error) {
	if wf.Status == "" {
		wf.Status = models.WorkflowStatusDraft
	}
	if err := wf.Validate(s.validate); err != nil {
		return nil, err
	}

	saved, err := s.repo.Workflow().Save(ctx, wf)
	if err != nil {
		return nil, fmt.Errorf("failed to save workflow: %w", err)
	}

	s.logger.Info("Workflow saved",
		zap.String("tenant_id", saved.TenantID),
		zap.String("workflow_id", saved.ID),
		zap.String("status", string(saved.Status)),
		zap.Int("nodes", len(saved.Nodes)),
	)
	return saved, nil
}

func (s *workflowService) Get(ctx context.Context, tenantID string, id string) (*models.Workflow, error) {
	wf, err := s.repo.Workflow().GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}
	return wf, nil
}
