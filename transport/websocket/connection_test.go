package websocket

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"webconsole/domain"
	"webconsole/errors"
)

func TestConnection_WriteError(t *testing.T) {
	req := require.New(t)
	conn := newConnection(logs.GetLoggerFromLevel(slog.LevelDebug), nil, nil, "127.0.0.1:4000", time.Second)
	timeout := os.ErrDeadlineExceeded

	// Given a live session, a write timeout is reported as is
	err := conn.writeError(timeout)
	req.ErrorIs(err, timeout)
	req.NotErrorIs(err, errors.ErrConnectionClosed)

	// When the reader has seen the peer go away
	conn.markClosed()

	// Then the same failure means the connection is closed
	req.ErrorIs(conn.writeError(timeout), errors.ErrConnectionClosed)
	req.ErrorIs(conn.Send(domain.Of("late")), errors.ErrConnectionClosed)
}
