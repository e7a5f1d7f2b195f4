package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ppopeskul/convoflow/internal/config"
	"github.com/ppopeskul/convoflow/internal/lock"
	"github.com/ppopeskul/convoflow/internal/models"
	"github.com/ppopeskul/convoflow/internal/repository"
	"github.com/ppopeskul/convoflow/internal/repository/mocks"
	"github.com/ppopeskul/convoflow/internal/service"
	servicemocks "github.com/ppopeskul/convoflow/internal/service/mocks"
)

type executorFixture struct {
	repo       *mocks.MockRepository
	contacts   *mocks.MockContactRepository
	messages   *mocks.MockMessageRepository
	workflows  *mocks.MockWorkflowRepository
	outbox     *mocks.MockOutboxRepository
	locker     *servicemocks.MockContactLocker
	settings   *servicemocks.MockSettingsProvider
	dispatcher *servicemocks.MockDispatcher
	completion *servicemocks.MockCompletionClient
	webhooks   *servicemocks.MockWebhookCaller
	sequences  *servicemocks.MockSequenceRunner
	executor   service.WorkflowExecutor
	sent       []string
	saved      []models.FlowStatus
}

func newExecutorFixture(t *testing.T, maxDepth int) *executorFixture {
	ctrl := gomock.NewController(t)
	f := &executorFixture{
		repo:       mocks.NewMockRepository(ctrl),
		contacts:   mocks.NewMockContactRepository(ctrl),
		messages:   mocks.NewMockMessageRepository(ctrl),
		workflows:  mocks.NewMockWorkflowRepository(ctrl),
		outbox:     mocks.NewMockOutboxRepository(ctrl),
		locker:     servicemocks.NewMockContactLocker(ctrl),
		settings:   servicemocks.NewMockSettingsProvider(ctrl),
		dispatcher: servicemocks.NewMockDispatcher(ctrl),
		completion: servicemocks.NewMockCompletionClient(ctrl),
		webhooks:   servicemocks.NewMockWebhookCaller(ctrl),
		sequences:  servicemocks.NewMockSequenceRunner(ctrl),
	}

	f.repo.EXPECT().Contact().Return(f.contacts).AnyTimes()
	f.repo.EXPECT().Message().Return(f.messages).AnyTimes()
	f.repo.EXPECT().Workflow().Return(f.workflows).AnyTimes()
	f.repo.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	f.settings.EXPECT().Resolve(gomock.Any(), "t1").Return(tenantSettings(), nil).AnyTimes()
	f.contacts.EXPECT().SaveState(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Contact) error {
			f.saved = append(f.saved, c.FlowStatus)
			return nil
		}).AnyTimes()

	f.executor = service.NewWorkflowExecutor(
		&config.WorkflowConfig{MaxDepth: maxDepth, WebhookTimeout: 5, ResumeBatch: 10},
		f.repo, f.locker, f.settings, f.dispatcher, f.completion, f.webhooks, f.sequences,
		zap.NewNop(), fixedClock(),
	)
	return f
}

// expectSends records every dispatched text.
func (f *executorFixture) expectSends() {
	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, out service.OutboundText) (*models.Message, error) {
			f.sent = append(f.sent, out.Text)
			return &models.Message{Content: out.Text}, nil
		}).AnyTimes()
}

func buildWorkflow(nodes []models.Node, edges ...models.Edge) *models.Workflow {
	return &models.Workflow{
		ID:       "wf1",
		TenantID: "t1",
		Name:     "test",
		Status:   models.WorkflowStatusActive,
		Nodes:    nodes,
		Edges:    edges,
	}
}

func trigger(keywords ...string) models.Node {
	return models.Node{ID: "trigger", Type: models.NodeTrigger, Data: &models.TriggerData{Keywords: keywords, Any: len(keywords) == 0}}
}

func messageNode(id, text string) models.Node {
	return models.Node{ID: id, Type: models.NodeMessage, Data: &models.MessageData{Text: text}}
}

func edge(source, target string) models.Edge {
	return models.Edge{Source: source, Target: target}
}

func labeled(source, target, label string) models.Edge {
	return models.Edge{Source: source, Target: target, Label: label}
}

func TestWorkflowExecutor_QuestionSuspendsAndResumes(t *testing.T) {
	f := newExecutorFixture(t, 10)
	f.expectSends()

	wf := buildWorkflow([]models.Node{
		trigger("hi"),
		{ID: "ask", Type: models.NodeQuestion, Data: &models.QuestionData{Prompt: "Your email, {{name}}?", Variable: "email"}},
		messageNode("thanks", "Thanks, we will write to {{email}}"),
	}, edge("trigger", "ask"), edge("ask", "thanks"))

	contact := testContact()
	ctx := context.Background()

	res, err := f.executor.Step(ctx, service.StepInput{Instance: "shop-1", Contact: contact, Workflow: wf, Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, service.StepWaitingForInput, res.Status)
	assert.Equal(t, "ask", res.NodeID)
	assert.Equal(t, []string{"trigger", "ask"}, res.Visited)
	assert.Equal(t, []string{"Your email, Ana?"}, f.sent)
	assert.Equal(t, models.FlowStatusAwaitingInput, contact.FlowStatus)
	assert.Equal(t, "ask", contact.CurrentNodeID.String)

	res, err = f.executor.Step(ctx, service.StepInput{Instance: "shop-1", Contact: contact, Workflow: wf, Text: " ana@example.com "})
	require.NoError(t, err)
	assert.Equal(t, service.StepCompleted, res.Status)
	assert.Equal(t, []string{"ask", "thanks"}, res.Visited)
	assert.Equal(t, "Thanks, we will write to ana@example.com", f.sent[1])
	assert.Equal(t, "ana@example.com", contact.CollectedData["email"])
	assert.Equal(t, models.FlowStatusIdle, contact.FlowStatus)
	assert.False(t, contact.CurrentWorkflowID.Valid)
}

func TestWorkflowExecutor_SelfLoopHalts(t *testing.T) {
	f := newExecutorFixture(t, 10)
	f.expectSends()

	wf := buildWorkflow([]models.Node{trigger(), messageNode("m1", "again")},
		edge("trigger", "m1"), edge("m1", "m1"))

	contact := testContact()
	res, err := f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, service.StepLoopHalted, res.Status)
	assert.Equal(t, []string{"trigger", "m1"}, res.Visited)
	assert.Len(t, f.sent, 1)
	assert.Equal(t, models.FlowStatusIdle, contact.FlowStatus)
}

func TestWorkflowExecutor_LoopControlRunsToDepthCeiling(t *testing.T) {
	f := newExecutorFixture(t, 10)
	f.expectSends()

	loop := messageNode("m1", "tick")
	loop.LoopControl = true
	wf := buildWorkflow([]models.Node{trigger(), loop}, edge("trigger", "m1"), edge("m1", "m1"))

	contact := testContact()
	res, err := f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, service.StepDepthExceeded, res.Status)
	assert.Len(t, res.Visited, 10)
	assert.Len(t, f.sent, 9)
	assert.Equal(t, models.FlowStatusRunning, contact.FlowStatus)
	assert.Equal(t, "m1", contact.CurrentNodeID.String)
}

func TestWorkflowExecutor_LongChainStopsAtDepth(t *testing.T) {
	f := newExecutorFixture(t, 10)

	nodes := []models.Node{trigger()}
	edges := []models.Edge{edge("trigger", "a1")}
	for i := 1; i < 20; i++ {
		id := fmt.Sprintf("a%d", i)
		nodes = append(nodes, models.Node{ID: id, Type: models.NodeAction, Data: &models.ActionData{
			Action: "set_field", Field: id, Value: "done",
		}})
		if i < 19 {
			edges = append(edges, edge(id, fmt.Sprintf("a%d", i+1)))
		}
	}
	wf := buildWorkflow(nodes, edges...)

	contact := testContact()
	res, err := f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, service.StepDepthExceeded, res.Status)
	assert.Len(t, res.Visited, 10)
	assert.Equal(t, "a10", res.NodeID)
	assert.Equal(t, models.FlowStatusRunning, contact.FlowStatus)
	assert.Equal(t, "a10", contact.CurrentNodeID.String)
	assert.Equal(t, "done", contact.CollectedData["a9"])
	assert.NotContains(t, contact.CollectedData, "a10")

	res, err = f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, service.StepCompleted, res.Status)
	assert.Equal(t, "a19", res.NodeID)
	assert.Equal(t, "done", contact.CollectedData["a19"])
}

func TestWorkflowExecutor_WaitSchedulesAndResumes(t *testing.T) {
	f := newExecutorFixture(t, 10)
	f.expectSends()

	wf := buildWorkflow([]models.Node{
		trigger(),
		{ID: "wait", Type: models.NodeWait, Data: &models.WaitData{DurationSeconds: 60}},
		messageNode("later", "still there?"),
	}, edge("trigger", "wait"), edge("wait", "later"))

	contact := testContact()
	ctx := context.Background()

	res, err := f.executor.Step(ctx, service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, service.StepScheduled, res.Status)
	assert.Equal(t, "later", res.NodeID)
	assert.Equal(t, models.FlowStatusScheduled, contact.FlowStatus)
	assert.Equal(t, fixedNow.Add(time.Minute), contact.FlowResumeAt.Time)
	assert.Empty(t, f.sent)

	saves := len(f.saved)
	res, err = f.executor.Step(ctx, service.StepInput{Contact: contact, Workflow: wf, Text: "hello?"})
	require.NoError(t, err)
	assert.Equal(t, service.StepScheduled, res.Status)
	assert.Len(t, f.saved, saves)

	res, err = f.executor.Step(ctx, service.StepInput{Contact: contact, Workflow: wf, Resume: true})
	require.NoError(t, err)
	assert.Equal(t, service.StepCompleted, res.Status)
	assert.Equal(t, []string{"still there?"}, f.sent)
	assert.Equal(t, models.FlowStatusIdle, contact.FlowStatus)
}

func TestWorkflowExecutor_ConditionBranches(t *testing.T) {
	wf := buildWorkflow([]models.Node{
		trigger(),
		{ID: "check", Type: models.NodeCondition, Data: &models.ConditionData{Field: "message", Operator: "contains", Value: "price"}},
		messageNode("price", "Our prices"),
		messageNode("other", "How can I help?"),
	}, edge("trigger", "check"), labeled("check", "price", "true"), labeled("check", "other", "false"))

	tests := []struct {
		text     string
		expected string
	}{
		{text: "What is the PRICE?", expected: "Our prices"},
		{text: "hello", expected: "How can I help?"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			f := newExecutorFixture(t, 10)
			f.expectSends()

			res, err := f.executor.Step(context.Background(), service.StepInput{Contact: testContact(), Workflow: wf, Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, service.StepCompleted, res.Status)
			assert.Equal(t, []string{tt.expected}, f.sent)
		})
	}
}

func TestWorkflowExecutor_ConditionOperators(t *testing.T) {
	tests := []struct {
		name     string
		cond     models.ConditionData
		data     models.JSONMap
		expected bool
	}{
		{name: "equals ignores case", cond: models.ConditionData{Field: "plan", Operator: "equals", Value: "Gold"}, data: models.JSONMap{"plan": "gold"}, expected: true},
		{name: "not equals on missing field", cond: models.ConditionData{Field: "plan", Operator: "not_equals", Value: "gold"}, expected: true},
		{name: "exists", cond: models.ConditionData{Field: "email", Operator: "exists"}, data: models.JSONMap{"email": "a@b.c"}, expected: true},
		{name: "exists blank", cond: models.ConditionData{Field: "email", Operator: "exists"}, data: models.JSONMap{"email": " "}, expected: false},
		{name: "gt numeric", cond: models.ConditionData{Field: "age", Operator: "gt", Value: "17"}, data: models.JSONMap{"age": float64(18)}, expected: true},
		{name: "lt not numeric", cond: models.ConditionData{Field: "age", Operator: "lt", Value: "17"}, data: models.JSONMap{"age": "young"}, expected: false},
		{name: "contact name", cond: models.ConditionData{Field: "contact.name", Operator: "equals", Value: "ana"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newExecutorFixture(t, 10)
			f.expectSends()

			cond := tt.cond
			wf := buildWorkflow([]models.Node{
				trigger(),
				{ID: "check", Type: models.NodeCondition, Data: &cond},
				messageNode("yes", "yes"),
				messageNode("no", "no"),
			}, edge("trigger", "check"), labeled("check", "yes", "true"), labeled("check", "no", "false"))

			contact := testContact()
			contact.CollectedData = tt.data

			_, err := f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
			require.NoError(t, err)
			if tt.expected {
				assert.Equal(t, []string{"yes"}, f.sent)
			} else {
				assert.Equal(t, []string{"no"}, f.sent)
			}
		})
	}
}

func TestWorkflowExecutor_HandoffAction(t *testing.T) {
	f := newExecutorFixture(t, 10)

	wf := buildWorkflow([]models.Node{
		trigger(),
		{ID: "handoff", Type: models.NodeAction, Data: &models.ActionData{Action: "handoff"}},
		messageNode("never", "unreachable"),
	}, edge("trigger", "handoff"), edge("handoff", "never"))

	f.contacts.EXPECT().SetHandlingMode(gomock.Any(), int64(5), models.HandlingModeHuman).Return(nil)
	f.outbox.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *models.OutboxEvent) error {
			assert.Equal(t, service.TopicHandoffRequested, event.Topic)
			assert.JSONEq(t, `{"tenant_id":"t1","contact_id":5,"phone":"5511999999999","reason":"workflow_action","workflow_id":"wf1"}`, string(event.Payload))
			return nil
		})

	contact := testContact()
	res, err := f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, service.StepCompleted, res.Status)
	assert.Equal(t, models.HandlingModeHuman, contact.HandlingMode)
	assert.Equal(t, models.FlowStatusIdle, contact.FlowStatus)
}

func TestWorkflowExecutor_HandoffActionFailure(t *testing.T) {
	f := newExecutorFixture(t, 10)

	wf := buildWorkflow([]models.Node{
		trigger(),
		{ID: "handoff", Type: models.NodeAction, Data: &models.ActionData{Action: "handoff"}},
	}, edge("trigger", "handoff"))

	f.contacts.EXPECT().SetHandlingMode(gomock.Any(), int64(5), models.HandlingModeHuman).Return(errors.New("db down"))

	contact := testContact()
	_, err := f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
	require.Error(t, err)
	assert.Equal(t, models.HandlingModeAI, contact.HandlingMode)
}

func TestWorkflowExecutor_StartSequenceAction(t *testing.T) {
	f := newExecutorFixture(t, 10)

	wf := buildWorkflow([]models.Node{
		trigger(),
		{ID: "seq", Type: models.NodeAction, Data: &models.ActionData{
			Action: "start_sequence",
			Steps:  models.SequenceSteps{{Text: "Day 1, {{name}}"}, {Text: "Day 2"}},
		}},
	}, edge("trigger", "seq"))

	f.sequences.EXPECT().Start(gomock.Any(), gomock.Any(), models.SequenceSteps{{Text: "Day 1, Ana"}, {Text: "Day 2"}}).
		Return(&models.SequenceRun{ID: 1}, nil)

	res, err := f.executor.Step(context.Background(), service.StepInput{Contact: testContact(), Workflow: wf, Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, service.StepCompleted, res.Status)
}

func TestWorkflowExecutor_AgentWebhookAndQueryNodes(t *testing.T) {
	f := newExecutorFixture(t, 10)
	f.expectSends()

	wf := buildWorkflow([]models.Node{
		trigger(),
		{ID: "count", Type: models.NodeDBQuery, Data: &models.DBQueryData{Query: "contact_message_count", ResultVar: "messages"}},
		{ID: "hook", Type: models.NodeWebhook, Data: &models.WebhookData{URL: "https://crm.example.com/hook", ResultVar: "crm"}},
		{ID: "agent", Type: models.NodeAgent, Data: &models.AgentData{SystemPrompt: "Help {{name}}", ResultVar: "reply"}},
	}, edge("trigger", "count"), edge("count", "hook"), edge("hook", "agent"))

	f.messages.EXPECT().CountByContact(gomock.Any(), int64(5)).Return(int64(12), nil)
	f.webhooks.EXPECT().Call(gomock.Any(), "https://crm.example.com/hook", gomock.Any(), 5*time.Second).
		DoAndReturn(func(_ context.Context, _ string, payload any, _ time.Duration) (map[string]any, error) {
			body := payload.(map[string]any)
			assert.Equal(t, "need help", body["message"])
			return map[string]any{"tier": "gold"}, nil
		})
	f.messages.EXPECT().History(gomock.Any(), int64(5), 20).Return([]*models.Message{
		{Role: models.RoleAssistant, Content: "Hi!"},
		{Role: models.RoleUser, Content: "need help"},
	}, nil)
	f.completion.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req service.CompletionRequest) (string, error) {
			assert.Equal(t, "Help Ana", req.SystemPrompt)
			assert.Equal(t, []models.HistoryTurn{{Role: models.RoleAssistant, Content: "Hi!"}}, req.History)
			assert.Equal(t, "need help", req.UserMessage)
			return "Sure, happy to help", nil
		})

	contact := testContact()
	res, err := f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "need help"})
	require.NoError(t, err)
	assert.Equal(t, service.StepCompleted, res.Status)
	assert.Equal(t, int64(12), contact.CollectedData["messages"])
	assert.Equal(t, map[string]any{"tier": "gold"}, contact.CollectedData["crm"])
	assert.Equal(t, "Sure, happy to help", contact.CollectedData["reply"])
	assert.Equal(t, []string{"Sure, happy to help"}, f.sent)
}

func TestWorkflowExecutor_NodeFailureKeepsPosition(t *testing.T) {
	f := newExecutorFixture(t, 10)

	wf := buildWorkflow([]models.Node{trigger(), messageNode("m1", "hello")}, edge("trigger", "m1"))

	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, service.ErrDailyCapReached)

	contact := testContact()
	_, err := f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
	assert.ErrorIs(t, err, service.ErrDailyCapReached)
	assert.Equal(t, models.FlowStatusRunning, contact.FlowStatus)
	assert.Equal(t, "m1", contact.CurrentNodeID.String)
}

func TestWorkflowExecutor_EntryPoints(t *testing.T) {
	t.Run("No trigger", func(t *testing.T) {
		f := newExecutorFixture(t, 10)
		wf := buildWorkflow([]models.Node{messageNode("m1", "x")})

		res, err := f.executor.Step(context.Background(), service.StepInput{Contact: testContact(), Workflow: wf})
		require.NoError(t, err)
		assert.Equal(t, service.StepNoEntry, res.Status)
		assert.Empty(t, f.saved)
	})

	t.Run("State of another workflow restarts at the trigger", func(t *testing.T) {
		f := newExecutorFixture(t, 10)
		f.expectSends()
		wf := buildWorkflow([]models.Node{trigger(), messageNode("m1", "welcome")}, edge("trigger", "m1"))

		contact := testContact()
		contact.SetFlowState(models.AwaitingInputState("other", "ask"))

		res, err := f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
		require.NoError(t, err)
		assert.Equal(t, []string{"trigger", "m1"}, res.Visited)
		assert.Equal(t, []string{"welcome"}, f.sent)
	})

	t.Run("Dangling edge resets the contact", func(t *testing.T) {
		f := newExecutorFixture(t, 10)
		wf := buildWorkflow([]models.Node{trigger()}, edge("trigger", "ghost"))

		contact := testContact()
		_, err := f.executor.Step(context.Background(), service.StepInput{Contact: contact, Workflow: wf, Text: "x"})
		assert.Error(t, err)
		assert.Equal(t, models.FlowStatusIdle, contact.FlowStatus)
	})
}

func TestWorkflowExecutor_ResumeDue(t *testing.T) {
	f := newExecutorFixture(t, 10)
	f.expectSends()

	wf := buildWorkflow([]models.Node{
		trigger(),
		{ID: "wait", Type: models.NodeWait, Data: &models.WaitData{DurationSeconds: 60}},
		messageNode("later", "back again"),
	}, edge("trigger", "wait"), edge("wait", "later"))

	due := testContact()
	due.SetFlowState(models.ScheduledState("wf1", "later", fixedNow.Add(-time.Second)))
	orphan := testContact()
	orphan.ID = 6
	orphan.SetFlowState(models.ScheduledState("deleted", "later", fixedNow.Add(-time.Second)))
	busy := testContact()
	busy.ID = 7

	f.contacts.EXPECT().ListScheduledDue(gomock.Any(), fixedNow, 10).Return([]*models.Contact{due, orphan, busy}, nil)
	f.locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, key string, fn func(context.Context) error) error {
			if key == service.ContactLockKey(7) {
				return fmt.Errorf("%w: %s", lock.ErrNotAcquired, key)
			}
			return fn(ctx)
		}).Times(3)
	f.contacts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(due, nil)
	f.contacts.EXPECT().GetByID(gomock.Any(), int64(6)).Return(orphan, nil)
	f.workflows.EXPECT().GetByID(gomock.Any(), "t1", "wf1").Return(wf, nil)
	f.workflows.EXPECT().GetByID(gomock.Any(), "t1", "deleted").Return(nil, repository.ErrNotFound)

	require.NoError(t, f.executor.ResumeDue(context.Background()))
	assert.Equal(t, []string{"back again"}, f.sent)
	assert.Equal(t, models.FlowStatusIdle, due.FlowStatus)
	assert.Equal(t, models.FlowStatusIdle, orphan.FlowStatus)
}
