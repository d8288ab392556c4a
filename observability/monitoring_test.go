package observability

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"webconsole/command"
	"webconsole/contract"
	"webconsole/domain"
	"webconsole/mocks"
	"webconsole/runtime"
)

func newAttachedConsole(t *testing.T) (*runtime.Console, *Metrics, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	net := mocks.NewMockNetModule(ctrl)
	net.EXPECT().Init(gomock.Any()).Return(nil)
	console, err := runtime.NewConsole(logs.GetLoggerFromLevel(slog.LevelDebug), net)
	require.NoError(t, err)

	metrics := NewMetrics()
	require.NoError(t, metrics.Attach(console))
	return console, metrics, ctrl
}

func TestMetrics_CountsConsoleEvents(t *testing.T) {
	req := require.New(t)
	console, metrics, ctrl := newAttachedConsole(t)
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ID().Return("a").AnyTimes()
	conn.EXPECT().RemoteAddress().Return("127.0.0.1:1").AnyTimes()

	// When a connection opens, sends two messages and closes
	console.ConnectionOpened(conn)
	req.Equal(float64(1), testutil.ToFloat64(metrics.connectionsActive))
	for _, text := range []string{"one", "two"} {
		msg, err := domain.NewMessage(conn, text)
		req.NoError(err)
		console.SupplyMessage(msg)
	}
	console.ConnectionClosed(conn)

	// Then the counters follow
	req.Equal(float64(2), testutil.ToFloat64(metrics.messagesReceived))
	req.Equal(float64(1), testutil.ToFloat64(metrics.connectionsOpened))
	req.Equal(float64(1), testutil.ToFloat64(metrics.connectionsClosed))
	req.Equal(float64(0), testutil.ToFloat64(metrics.connectionsActive))

	stats := metrics.GetLatest()
	req.Equal(uint64(2), stats.MessagesReceived)
	req.Equal(uint64(1), stats.ConnectionsOpened)
	req.Equal(uint64(1), stats.ConnectionsClosed)
}

func TestMetrics_ObservesDispatch(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().Send(gomock.Any()).Return(nil).AnyTimes()
	metrics := NewMetrics()
	registry := command.NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), command.WithObserver(metrics))
	req.NoError(registry.Put("ok", command.Echo()))
	req.NoError(registry.Put("fail", contract.CommandHandlerFunc(func(domain.Command) error { return fmt.Errorf("boom") })))

	for _, text := range []string{"ok", "ok", "fail", "nope"} {
		msg, err := domain.NewMessage(conn, text)
		req.NoError(err)
		registry.SupplyMessage(msg)
	}

	req.Equal(float64(3), testutil.ToFloat64(metrics.commandsDispatched.WithLabelValues(resultMatched)))
	req.Equal(float64(1), testutil.ToFloat64(metrics.commandsDispatched.WithLabelValues(resultUnknown)))
	req.Equal(float64(1), testutil.ToFloat64(metrics.handlerFailures))

	stats := metrics.GetLatest()
	req.Equal(uint64(3), stats.CommandsMatched)
	req.Equal(uint64(1), stats.CommandsUnknown)
	req.Equal(uint64(1), stats.HandlerFailures)
}

func TestMetrics_GetLatest_ProcessStats(t *testing.T) {
	req := require.New(t)
	metrics := NewMetrics()
	req.NotNil(metrics.self)

	// When the latest stats are read for the running test process
	stats := metrics.GetLatest()

	// Then memory, CPU and status of the process are filled in
	req.Positive(stats.RSSBytes)
	req.GreaterOrEqual(stats.CPUPercent, float64(0))
	req.NotEmpty(stats.PidStatus)
}

func TestMetrics_Handler(t *testing.T) {
	req := require.New(t)
	metrics := NewMetrics()
	metrics.CommandDispatched("greet", true)

	server := httptest.NewServer(metrics.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	req.NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	req.NoError(err)

	req.Equal(http.StatusOK, resp.StatusCode)
	req.Contains(string(body), `webconsole_commands_dispatched_total{result="matched"} 1`)
	req.Contains(string(body), "webconsole_connections_active 0")
}
