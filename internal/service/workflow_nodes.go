package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/models"
)

const agentHistoryLimit = 20

func (e *workflowExecutor) execute(ctx context.Context, r *run, node *models.Node, answering bool) (nodeOutcome, error) {
	switch data := node.Data.(type) {
	case *models.TriggerData:
		return nodeOutcome{next: defaultEdge(r.wf, node.ID)}, nil
	case *models.MessageData:
		return e.message(ctx, r, node, data)
	case *models.QuestionData:
		return e.question(ctx, r, node, data, answering)
	case *models.ConditionData:
		ok := evaluate(data, r.contact, r.in.Text)
		return nodeOutcome{next: labeledEdge(r.wf, node.ID, strconv.FormatBool(ok))}, nil
	case *models.ActionData:
		return e.action(ctx, r, node, data)
	case *models.WaitData:
		next := defaultEdge(r.wf, node.ID)
		if next == "" {
			return nodeOutcome{halt: StepCompleted}, nil
		}
		resumeAt := e.opts.now().Add(time.Duration(data.DurationSeconds) * time.Second)
		return nodeOutcome{next: next, halt: StepScheduled, resumeAt: resumeAt}, nil
	case *models.AgentData:
		return e.agent(ctx, r, node, data)
	case *models.WebhookData:
		return e.webhook(ctx, r, node, data)
	case *models.DBQueryData:
		return e.dbQuery(ctx, r, node, data)
	default:
		return nodeOutcome{}, fmt.Errorf("%w: node %s has unsupported data", models.ErrInvalidWorkflow, node.ID)
	}
}

func (e *workflowExecutor) send(ctx context.Context, r *run, text string) error {
	if r.settings == nil {
		settings, err := e.settings.Resolve(ctx, r.contact.TenantID)
		if err != nil {
			return err
		}
		r.settings = settings
	}

	_, err := e.dispatcher.Send(ctx, OutboundText{
		Contact:  r.contact,
		Instance: r.in.Instance,
		Text:     text,
		Settings: r.settings,
	})
	if errors.Is(err, ErrSentNotRecorded) {
		// The contact got the text; re-running the node would send it again.
		e.logger.Warn("Workflow message sent but not recorded", zap.Int64("contact_id", r.contact.ID), zap.Error(err))
		return nil
	}
	return err
}

func (e *workflowExecutor) message(ctx context.Context, r *run, node *models.Node, data *models.MessageData) (nodeOutcome, error) {
	if err := e.send(ctx, r, renderTemplate(data.Text, r.contact, r.in.Text)); err != nil {
		return nodeOutcome{}, err
	}
	return nodeOutcome{next: defaultEdge(r.wf, node.ID)}, nil
}

// question sends its prompt and suspends on the first visit. When the contact
// was already waiting here, the incoming text is the answer.
func (e *workflowExecutor) question(ctx context.Context, r *run, node *models.Node, data *models.QuestionData, answering bool) (nodeOutcome, error) {
	if !answering {
		if err := e.send(ctx, r, renderTemplate(data.Prompt, r.contact, r.in.Text)); err != nil {
			return nodeOutcome{}, err
		}
		return nodeOutcome{halt: StepWaitingForInput}, nil
	}

	answer := strings.TrimSpace(r.in.Text)
	r.contact.CollectedData[data.Variable] = answer
	return nodeOutcome{next: labeledEdge(r.wf, node.ID, answer)}, nil
}

func (e *workflowExecutor) action(ctx context.Context, r *run, node *models.Node, data *models.ActionData) (nodeOutcome, error) {
	switch data.Action {
	case "set_field":
		r.contact.CollectedData[data.Field] = renderTemplate(data.Value, r.contact, r.in.Text)
	case "handoff":
		if err := e.repo.Contact().SetHandlingMode(ctx, r.contact.ID, models.HandlingModeHuman); err != nil {
			return nodeOutcome{}, fmt.Errorf("failed to hand off contact: %w", err)
		}
		r.contact.HandlingMode = models.HandlingModeHuman
		err := addOutbox(ctx, e.repo, r.contact.TenantID, TopicHandoffRequested, map[string]any{
			"tenant_id":   r.contact.TenantID,
			"contact_id":  r.contact.ID,
			"phone":       r.contact.Phone,
			"reason":      "workflow_action",
			"workflow_id": r.wf.ID,
		})
		if err != nil {
			return nodeOutcome{}, err
		}
		return nodeOutcome{halt: StepCompleted}, nil
	case "start_sequence":
		steps := make(models.SequenceSteps, len(data.Steps))
		for i, s := range data.Steps {
			steps[i] = models.SequenceStep{Text: renderTemplate(s.Text, r.contact, r.in.Text)}
		}
		if _, err := e.sequences.Start(ctx, r.contact, steps); err != nil {
			return nodeOutcome{}, err
		}
	default:
		return nodeOutcome{}, fmt.Errorf("%w: unknown action %q", models.ErrInvalidWorkflow, data.Action)
	}
	return nodeOutcome{next: defaultEdge(r.wf, node.ID)}, nil
}

func (e *workflowExecutor) agent(ctx context.Context, r *run, node *models.Node, data *models.AgentData) (nodeOutcome, error) {
	msgs, err := e.repo.Message().History(ctx, r.contact.ID, agentHistoryLimit)
	if err != nil {
		return nodeOutcome{}, err
	}
	history := make([]models.HistoryTurn, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, models.HistoryTurn{Role: m.Role, Content: m.Content})
	}

	reply, err := e.completion.Generate(ctx, CompletionRequest{
		SystemPrompt: renderTemplate(data.SystemPrompt, r.contact, r.in.Text),
		History:      trimTrailingUser(history),
		UserMessage:  r.in.Text,
	})
	if err != nil {
		return nodeOutcome{}, err
	}

	if err := e.send(ctx, r, reply); err != nil {
		return nodeOutcome{}, err
	}
	if data.ResultVar != "" {
		r.contact.CollectedData[data.ResultVar] = reply
	}
	return nodeOutcome{next: defaultEdge(r.wf, node.ID)}, nil
}

func (e *workflowExecutor) webhook(ctx context.Context, r *run, node *models.Node, data *models.WebhookData) (nodeOutcome, error) {
	timeout := config.Seconds(data.TimeoutSeconds)
	if data.TimeoutSeconds == 0 {
		timeout = config.Seconds(e.cfg.WebhookTimeout)
	}

	payload := map[string]any{
		"contact": map[string]any{
			"id":    r.contact.ID,
			"name":  r.contact.Name,
			"phone": r.contact.Phone,
		},
		"collected_data": r.contact.CollectedData,
		"message":        r.in.Text,
	}

	res, err := e.webhooks.Call(ctx, data.URL, payload, timeout)
	if err != nil {
		return nodeOutcome{}, err
	}
	if data.ResultVar != "" {
		r.contact.CollectedData[data.ResultVar] = res
	}
	return nodeOutcome{next: defaultEdge(r.wf, node.ID)}, nil
}

// dbQuery runs one of the whitelisted named queries, scoped to the contact.
func (e *workflowExecutor) dbQuery(ctx context.Context, r *run, node *models.Node, data *models.DBQueryData) (nodeOutcome, error) {
	switch data.Query {
	case "contact_message_count":
		n, err := e.repo.Message().CountByContact(ctx, r.contact.ID)
		if err != nil {
			return nodeOutcome{}, err
		}
		r.contact.CollectedData[data.ResultVar] = n
	case "contact_profile":
		r.contact.CollectedData[data.ResultVar] = map[string]any{
			"name":          r.contact.Name,
			"phone":         r.contact.Phone,
			"handling_mode": r.contact.HandlingMode,
			"created_at":    r.contact.CreatedAt,
		}
	default:
		return nodeOutcome{}, fmt.Errorf("%w: unknown query %q", models.ErrInvalidWorkflow, data.Query)
	}
	return nodeOutcome{next: defaultEdge(r.wf, node.ID)}, nil
}

// defaultEdge is the first unlabeled outgoing edge, or the first edge when all are labeled.
func defaultEdge(wf *models.Workflow, nodeID string) string {
	edges := wf.Outgoing(nodeID)
	for _, e := range edges {
		if e.Label == "" {
			return e.Target
		}
	}
	if len(edges) > 0 {
		return edges[0].Target
	}
	return ""
}

// labeledEdge picks the edge whose label matches, falling back to the first
// unlabeled edge. No match and no unlabeled edge ends the workflow.
func labeledEdge(wf *models.Workflow, nodeID string, label string) string {
	label = strings.TrimSpace(label)
	var fallback string
	for _, e := range wf.Outgoing(nodeID) {
		if e.Label != "" && strings.EqualFold(strings.TrimSpace(e.Label), label) {
			return e.Target
		}
		if e.Label == "" && fallback == "" {
			fallback = e.Target
		}
	}
	return fallback
}

func fieldValue(field string, contact *models.Contact, message string) (string, bool) {
	switch field {
	case "message":
		return message, true
	case "contact.name", "name":
		return contact.Name, true
	case "contact.phone", "phone":
		return contact.Phone, true
	default:
		return contact.CollectedData.String(field)
	}
}

func evaluate(cond *models.ConditionData, contact *models.Contact, message string) bool {
	value, ok := fieldValue(cond.Field, contact, message)
	switch cond.Operator {
	case "exists":
		return ok && strings.TrimSpace(value) != ""
	case "equals":
		return ok && strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(cond.Value))
	case "not_equals":
		return !ok || !strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(cond.Value))
	case "contains":
		return ok && strings.Contains(strings.ToLower(value), strings.ToLower(cond.Value))
	case "gt", "lt":
		a, errA := strconv.ParseFloat(strings.TrimSpace(value), 64)
		b, errB := strconv.ParseFloat(strings.TrimSpace(cond.Value), 64)
		if !ok || errA != nil || errB != nil {
			return false
		}
		if cond.Operator == "gt" {
			return a > b
		}
		return a < b
	default:
		return false
	}
}

var templateVar = regexp.MustCompile(`\{\{\s*([\w.]+)\s*\}\}`)

// renderTemplate substitutes {{name}}, {{phone}}, {{message}} and collected
// data keys. Unknown variables render empty.
func renderTemplate(tmpl string, contact *models.Contact, message string) string {
	return templateVar.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := templateVar.FindStringSubmatch(m)[1]
		v, _ := fieldValue(key, contact, message)
		return v
	})
}
