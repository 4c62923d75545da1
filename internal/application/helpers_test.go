package application

import (
	"testing"
	"time"

	"github.com/bnema/remedy/internal/adapters/transport"
	"github.com/bnema/remedy/internal/adapters/transport/scripted"
	"github.com/bnema/remedy/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	interfaceRemovedCode = "ETHPORT-5-IF_DOWN_INTERFACE_REMOVED"
	linkFailureCode      = "ETHPORT-5-IF_DOWN_LINK_FAILURE"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

func testTransportOptions() transport.Options {
	return transport.Options{
		Prompt:           domain.MustPrompt(""),
		PollInterval:     2 * time.Millisecond,
		HandshakeTimeout: time.Second,
	}
}

func testExecutor(t *testing.T) *Executor {
	t.Helper()

	return NewExecutor(ExecutorConfig{
		Prompt:  domain.MustPrompt(""),
		Timeout: 300 * time.Millisecond,
		Logger:  zaptest.NewLogger(t),
	})
}

func newScriptedEngine(t *testing.T, script scripted.Script) (*Engine, *scripted.Transport) {
	t.Helper()

	tr := scripted.New(script, testTransportOptions())
	engine := NewEngine(DefaultRegistry(), tr, NewProfileResolver(DeviceProfile{}, nil, nil), testExecutor(t), zaptest.NewLogger(t))

	return engine, tr
}

func layered(t *testing.T, fixtures ...scripted.Fixture) scripted.Script {
	t.Helper()

	script, err := scripted.DefaultScript().With(fixtures...)
	require.NoError(t, err)

	return script
}

func linecardEvent(device string) domain.Event {
	return domain.Event{
		ID:           1,
		Timestamp:    "2015 Apr 2 14:25:06",
		Device:       device,
		ErrorCode:    interfaceRemovedCode,
		ErrorMessage: "Interface Ethernet5/1 is down (Interface removed)",
	}
}

func linkEvent(device string) domain.Event {
	return domain.Event{
		ID:           2,
		Timestamp:    "2015 Apr 2 14:25:07",
		Device:       device,
		ErrorCode:    linkFailureCode,
		ErrorMessage: "Interface Ethernet1/4 is down (Link failure)",
	}
}
