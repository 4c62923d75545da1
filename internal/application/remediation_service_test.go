package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/remedy/internal/adapters/transport/scripted"
	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemediationServiceRecordsCompletedResult(t *testing.T) {
	repo := mocks.NewMockEventRepository(t)
	engine, _ := newScriptedEngine(t, scripted.DefaultScript())
	service := NewRemediationService(repo, engine, nil)

	event := linecardEvent("switch1")
	repo.EXPECT().GetByID(mockAnyContext(), event.ID).Return(event, nil).Once()
	repo.EXPECT().UpdateResult(mockAnyContext(), event.ID, domain.ResultRemediationCompleted).Return(nil).Once()

	outcome, err := service.Remediate(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationSuspect, outcome.Verdict.Classification)
	assert.Equal(t, domain.ResultRemediationCompleted, outcome.Event.Result)
	assert.False(t, outcome.Skipped)
}

func TestRemediationServiceRecordsFailedResultOnTransportError(t *testing.T) {
	repo := mocks.NewMockEventRepository(t)
	script := scripted.DefaultScript()
	script.Unreachable = []string{"switch1"}
	engine, _ := newScriptedEngine(t, script)
	service := NewRemediationService(repo, engine, nil)

	event := linkEvent("switch1")
	repo.EXPECT().GetByID(mockAnyContext(), event.ID).Return(event, nil).Once()
	repo.EXPECT().UpdateResult(mockAnyContext(), event.ID, domain.ResultRemediationFailed).Return(nil).Once()

	outcome, err := service.Remediate(context.Background(), event.ID)

	var connErr *domain.ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, domain.ResultRemediationFailed, outcome.Event.Result)
}

func TestRemediationServiceLeavesResultOnParseError(t *testing.T) {
	repo := mocks.NewMockEventRepository(t)
	engine, _ := newScriptedEngine(t, layered(t, scripted.Fixture{Match: `^show module 5$`, Output: "nothing useful"}))
	service := NewRemediationService(repo, engine, nil)

	event := linecardEvent("switch1")
	repo.EXPECT().GetByID(mockAnyContext(), event.ID).Return(event, nil).Once()

	outcome, err := service.Remediate(context.Background(), event.ID)

	var parseErr *domain.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, domain.ResultUnset, outcome.Event.Result)
}

func TestRemediationServiceSkipsUnknownErrorCode(t *testing.T) {
	repo := mocks.NewMockEventRepository(t)
	engine := NewEngine(DefaultRegistry(), mocks.NewMockTransport(t), NewProfileResolver(DeviceProfile{}, nil, nil), testExecutor(t), nil)
	service := NewRemediationService(repo, engine, nil)

	event := domain.Event{ID: 9, Device: "switch1", ErrorCode: "SYSMGR-2-SERVICE_CRASHED", ErrorMessage: "bgp crashed"}
	repo.EXPECT().GetByID(mockAnyContext(), event.ID).Return(event, nil).Once()

	outcome, err := service.Remediate(context.Background(), event.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Skipped)
}

func TestRemediationServiceReportsMissingEvent(t *testing.T) {
	repo := mocks.NewMockEventRepository(t)
	engine, _ := newScriptedEngine(t, scripted.DefaultScript())
	service := NewRemediationService(repo, engine, nil)

	repo.EXPECT().GetByID(mockAnyContext(), domain.EventID(42)).Return(domain.Event{}, domain.ErrEventNotFound).Once()

	_, err := service.Remediate(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRemediationServiceJoinsUpdateFailure(t *testing.T) {
	repo := mocks.NewMockEventRepository(t)
	engine, _ := newScriptedEngine(t, scripted.DefaultScript())
	service := NewRemediationService(repo, engine, nil)

	updateErr := errors.New("read-only store")
	event := linkEvent("switch1")
	repo.EXPECT().GetByID(mockAnyContext(), event.ID).Return(event, nil).Once()
	repo.EXPECT().UpdateResult(mockAnyContext(), event.ID, domain.ResultRemediationCompleted).Return(updateErr).Once()

	outcome, err := service.Remediate(context.Background(), event.ID)
	require.ErrorIs(t, err, updateErr)
	assert.Equal(t, domain.ClassificationFaulty, outcome.Verdict.Classification)
}

func TestRemediationServiceRemediateAllContinuesPastFailures(t *testing.T) {
	for _, concurrency := range []int{1, 4} {
		repo := mocks.NewMockEventRepository(t)
		script := scripted.DefaultScript()
		script.Unreachable = []string{"switch2"}
		engine, tr := newScriptedEngine(t, script)
		service := NewRemediationService(repo, engine, nil)

		events := []domain.Event{
			{ID: 1, Device: "switch1", ErrorCode: interfaceRemovedCode, ErrorMessage: "Interface Ethernet5/1 is down (Interface removed)"},
			{ID: 2, Device: "switch2", ErrorCode: linkFailureCode, ErrorMessage: "Interface Ethernet1/4 is down (Link failure)"},
			{ID: 3, Device: "switch1", ErrorCode: linkFailureCode, ErrorMessage: "Interface Ethernet1/4 is down (Link failure)"},
			{ID: 4, Device: "switch3", ErrorCode: linkFailureCode, ErrorMessage: "Interface mgmt0 is down (Link failure)"},
		}
		for _, event := range events {
			repo.EXPECT().GetByID(mockAnyContext(), event.ID).Return(event, nil).Once()
		}
		repo.EXPECT().GetByID(mockAnyContext(), domain.EventID(5)).Return(domain.Event{}, domain.ErrEventNotFound).Once()
		repo.EXPECT().UpdateResult(mockAnyContext(), domain.EventID(1), domain.ResultRemediationCompleted).Return(nil).Once()
		repo.EXPECT().UpdateResult(mockAnyContext(), domain.EventID(2), domain.ResultRemediationFailed).Return(nil).Once()
		repo.EXPECT().UpdateResult(mockAnyContext(), domain.EventID(3), domain.ResultRemediationCompleted).Return(nil).Once()

		outcomes, err := service.RemediateAll(context.Background(), []domain.EventID{1, 2, 3, 4, 5}, concurrency)
		require.NoError(t, err, "concurrency %d", concurrency)
		require.Len(t, outcomes, 5)

		assert.Equal(t, domain.ClassificationSuspect, outcomes[0].Verdict.Classification)
		assert.Equal(t, domain.ClassificationIndeterminate, outcomes[1].Verdict.Classification)
		assert.Equal(t, domain.ClassificationFaulty, outcomes[2].Verdict.Classification)
		assert.Equal(t, domain.ClassificationIndeterminate, outcomes[3].Verdict.Classification)
		assert.ErrorIs(t, outcomes[4].Err, domain.ErrEventNotFound)
		assert.Equal(t, domain.EventID(5), outcomes[4].EventID)

		for _, device := range tr.Devices() {
			assert.Equal(t, 1, device.Closes(), device.Name())
		}
	}
}
