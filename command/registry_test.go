package command

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"webconsole/contract"
	"webconsole/domain"
	"webconsole/errors"
	"webconsole/mocks"
)

// recordingHandler is a pointer type so handlers can be compared.
type recordingHandler struct {
	mu    sync.Mutex
	calls []domain.Command
	err   error
}

func (h *recordingHandler) Handle(cmd domain.Command) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, cmd)
	return h.err
}

func (h *recordingHandler) Calls() []domain.Command {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.calls)
}

func newMessage(t *testing.T, conn domain.Connection, text string) domain.Message {
	t.Helper()
	msg, err := domain.NewMessage(conn, text)
	require.NoError(t, err)
	return msg
}

func TestRegistry_PutHandlerRemove(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry(log)
	greet := &recordingHandler{}
	other := &recordingHandler{}

	// When a handler is registered
	req.NoError(registry.Put("greet", greet))

	// Then it can be looked up by its exact name
	h, ok := registry.Handler("greet")
	req.True(ok)
	req.Same(greet, h)
	_, ok = registry.Handler("GREET")
	req.False(ok)

	// When it is replaced
	req.NoError(registry.Put("greet", other))
	h, _ = registry.Handler("greet")
	req.Same(other, h)

	// When it is removed
	registry.Remove("greet")
	registry.Remove("never-registered")
	_, ok = registry.Handler("greet")
	req.False(ok)
}

func TestRegistry_Put_InvalidArguments(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))

	req.ErrorIs(registry.Put("", &recordingHandler{}), errors.ErrInvalidArgument)
	req.ErrorIs(registry.Put("greet", nil), errors.ErrInvalidArgument)
	req.Empty(slices.Collect(registry.Commands()))
}

func TestRegistry_Commands(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(registry.Put("b", &recordingHandler{}))
	req.NoError(registry.Put("a", &recordingHandler{}))

	commands := registry.Commands()
	req.Equal([]string{"a", "b"}, slices.Sorted(commands))

	// Each range reads the registry again
	req.NoError(registry.Put("c", &recordingHandler{}))
	req.Equal([]string{"a", "b", "c"}, slices.Sorted(commands))
}

func TestRegistry_UnknownHandler(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))

	h, ok := registry.UnknownHandler()
	req.True(ok)
	req.Equal(DefaultUnknownHandler, h)

	custom := &recordingHandler{}
	registry.SetUnknownHandler(custom)
	h, ok = registry.HandlerOrFallback("missing")
	req.True(ok)
	req.Same(custom, h)

	registry.SetUnknownHandler(nil)
	_, ok = registry.HandlerOrFallback("missing")
	req.False(ok)
}

func TestRegistry_SupplyMessage_DispatchesToHandler(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	fallback := &recordingHandler{}
	greet := &recordingHandler{}
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), WithUnknownHandler(fallback))
	req.NoError(registry.Put("greet", greet))

	// When a matching message is supplied
	registry.SupplyMessage(newMessage(t, conn, "greet Alice"))

	// Then only the matching handler runs, once, with the parsed command
	calls := greet.Calls()
	req.Len(calls, 1)
	req.Equal("greet", calls[0].Name())
	req.Equal([]string{"Alice"}, calls[0].Args())
	req.Empty(fallback.Calls())
}

func TestRegistry_SupplyMessage_FallsBackOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	fallback := &recordingHandler{}
	greet := &recordingHandler{}
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), WithUnknownHandler(fallback))
	req.NoError(registry.Put("greet", greet))

	// When the name is not registered
	registry.SupplyMessage(newMessage(t, conn, "frobnicate x y"))

	// Then the fallback receives the unmatched name and arguments
	calls := fallback.Calls()
	req.Len(calls, 1)
	req.Equal("frobnicate", calls[0].Name())
	req.Equal([]string{"x", "y"}, calls[0].Args())
	req.Empty(greet.Calls())
}

func TestRegistry_SupplyMessage_EmptyMessageGoesToFallback(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	fallback := &recordingHandler{}
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), WithUnknownHandler(fallback))

	registry.SupplyMessage(newMessage(t, mocks.NewMockConnection(ctrl), "   "))

	calls := fallback.Calls()
	req.Len(calls, 1)
	req.Equal("", calls[0].Name())
}

func TestRegistry_SupplyMessage_DefaultUnknownReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))

	// Then the sender is told the command is unknown
	conn.EXPECT().Send(domain.Of("Unknown command: frobnicate")).Return(nil).Times(1)

	registry.SupplyMessage(newMessage(t, conn, "frobnicate"))
}

func TestRegistry_SupplyMessage_NoFallbackDropsSilently(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	observer := mocks.NewMockDispatchObserver(ctrl)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug),
		WithUnknownHandler(nil), WithObserver(observer))

	// Given nothing is sent back, the connection mock has no expectation
	observer.EXPECT().CommandDispatched("frobnicate", false).Times(1)

	registry.SupplyMessage(newMessage(t, conn, "frobnicate"))
}

func TestRegistry_SupplyMessage_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	observer := mocks.NewMockDispatchObserver(ctrl)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), WithObserver(observer))
	boom := fmt.Errorf("boom")

	require.NoError(t, registry.Put("fail", &recordingHandler{err: boom}))
	require.NoError(t, registry.Put("panic", contract.CommandHandlerFunc(func(domain.Command) error {
		panic("handler exploded")
	})))

	observer.EXPECT().CommandDispatched("fail", true)
	observer.EXPECT().HandlerFailed("fail", gomock.Any()).Do(func(_ string, err error) {
		require.ErrorIs(t, err, errors.ErrHandlerFailure)
		require.ErrorIs(t, err, boom)
	})
	observer.EXPECT().CommandDispatched("panic", true)
	observer.EXPECT().HandlerFailed("panic", gomock.Any()).Do(func(_ string, err error) {
		require.ErrorIs(t, err, errors.ErrHandlerFailure)
	})

	// When handlers fail or panic, the registry keeps going
	registry.SupplyMessage(newMessage(t, conn, "fail"))
	registry.SupplyMessage(newMessage(t, conn, "panic"))
}

func TestRegistry_HandlerMayModifyRegistry(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))
	added := &recordingHandler{}

	req.NoError(registry.Put("install", contract.CommandHandlerFunc(func(domain.Command) error {
		registry.Remove("install")
		return registry.Put("installed", added)
	})))

	registry.SupplyMessage(newMessage(t, mocks.NewMockConnection(ctrl), "install"))

	req.Equal([]string{"installed"}, slices.Sorted(registry.Commands()))
}

func TestRegistry_GreetEndToEnd(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(registry.Put("greet", contract.CommandHandlerFunc(func(cmd domain.Command) error {
		name, err := cmd.Arg(0)
		if err != nil {
			return err
		}
		return cmd.Respond("Hello, " + name)
	})))

	// Then the connection receives exactly one plain reply
	conn.EXPECT().Send(gomock.Any()).DoAndReturn(func(content domain.MessageContent) error {
		req.True(domain.Of("Hello, Alice").Equal(content))
		data, err := content.AsJSON()
		req.NoError(err)
		req.JSONEq(`[{"text":"Hello, Alice"}]`, string(data))
		return nil
	}).Times(1)

	// When a client sends "greet Alice"
	registry.SupplyMessage(newMessage(t, conn, "greet Alice"))
}
