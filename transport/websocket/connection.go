package websocket

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"webconsole/contract"
	"webconsole/domain"
	"webconsole/errors"
)

const closeGracePeriod = time.Second

// Connection is a domain.Connection backed by a websocket session.
type Connection struct {
	id            string
	remoteAddress string
	console       contract.IConsole
	ws            *websocket.Conn
	log           *slog.Logger
	writeTimeout  time.Duration

	// gorilla/websocket supports one concurrent writer only
	writeMu   sync.Mutex
	closed    atomic.Bool
	closeOnce sync.Once
}

var _ domain.Connection = (*Connection)(nil)

func newConnection(log *slog.Logger, console contract.IConsole, ws *websocket.Conn,
	remoteAddress string, writeTimeout time.Duration) *Connection {
	return &Connection{
		id:            uuid.NewString(),
		remoteAddress: remoteAddress,
		console:       console,
		ws:            ws,
		log:           log,
		writeTimeout:  writeTimeout,
	}
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) RemoteAddress() string { return c.remoteAddress }

// Console is the console this connection belongs to.
func (c *Connection) Console() contract.IConsole { return c.console }

func (c *Connection) String() string {
	return fmt.Sprintf("Connection{id=%s, remoteAddress=%s}", c.id, c.remoteAddress)
}

func (c *Connection) Send(content domain.MessageContent) error {
	if c.closed.Load() {
		return errors.ErrConnectionClosed
	}
	data, err := content.AsJSON()
	if err != nil {
		return fmt.Errorf("encode content for %s: %w", c.remoteAddress, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.closed.Load() {
		return errors.ErrConnectionClosed
	}
	c.log.Debug("Sending message", "connection_id", c.id, "remote_addr", c.remoteAddress, "payload", string(data))

	_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return c.writeError(err)
	}
	return nil
}

// writeError reports any write failure on a session whose peer is gone as
// ErrConnectionClosed, whatever the socket returned (broken pipe, timeout).
func (c *Connection) writeError(err error) error {
	if isClosedErr(err) || c.closed.Load() {
		return fmt.Errorf("send to %s: %w", c.remoteAddress, errors.ErrConnectionClosed)
	}
	return fmt.Errorf("send to %s: %w", c.remoteAddress, err)
}

func (c *Connection) SendText(text string) error {
	return c.Send(domain.Of(text))
}

// Close sends a close frame and tears the session down. The reader
// goroutine then reports the connection as closed to the console.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.log.Debug("Closing connection", "connection_id", c.id, "remote_addr", c.remoteAddress)

		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeGracePeriod))
		if cerr := c.ws.Close(); cerr != nil && !isClosedErr(cerr) {
			err = fmt.Errorf("close %s: %w", c.remoteAddress, cerr)
		}
	})
	return err
}

// markClosed is called by the reader once the peer is gone.
func (c *Connection) markClosed() {
	c.closed.Store(true)
}

func isClosedErr(err error) bool {
	return goerrors.Is(err, websocket.ErrCloseSent) || goerrors.Is(err, net.ErrClosed)
}
