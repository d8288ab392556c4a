// Package runtime owns the live state of a console: its connections and the
// listeners observing them. It fans events out without containing any
// command logic.
package runtime

import (
	"fmt"
	"iter"
	"log/slog"
	"sync"

	"webconsole/contract"
	"webconsole/domain"
	"webconsole/errors"
)

type consoleState int

const (
	stateCreated consoleState = iota
	stateStarted
	stateClosed
)

// Console is the aggregate of connections and listeners. I/O is delegated
// to a contract.NetModule which drives the console through
// ConnectionOpened, SupplyMessage and ConnectionClosed.
type Console struct {
	log      *slog.Logger
	net      contract.NetModule
	registry contract.IConnectionRegistry

	messageListeners listenerList[contract.MessageListener]
	openedListeners  listenerList[contract.ConnectionListener]
	closedListeners  listenerList[contract.ConnectionListener]

	mu    sync.Mutex
	state consoleState
}

var _ contract.IConsole = (*Console)(nil)

type Option func(*Console)

// WithRegistry replaces the default connection registry.
func WithRegistry(registry contract.IConnectionRegistry) Option {
	return func(c *Console) { c.registry = registry }
}

// NewConsole binds net to a new console by calling net.Init.
func NewConsole(log *slog.Logger, net contract.NetModule, opts ...Option) (*Console, error) {
	if net == nil {
		return nil, fmt.Errorf("console without net module: %w", errors.ErrInvalidArgument)
	}
	c := &Console{log: log, net: net, registry: NewRegistry()}
	for _, opt := range opts {
		opt(c)
	}
	if err := net.Init(c); err != nil {
		return nil, fmt.Errorf("init net module: %w", err)
	}
	return c, nil
}

func (c *Console) String() string {
	return fmt.Sprintf("Console(%v)", c.net)
}

func (c *Console) Logger() *slog.Logger { return c.log }

func (c *Console) NetModule() contract.NetModule { return c.net }

// Start starts the net module. A console can only be started once.
func (c *Console) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case stateStarted:
		return errors.ErrAlreadyStarted
	case stateClosed:
		return errors.ErrConsoleClosed
	}

	c.log.Info(fmt.Sprintf("Starting %s", c))
	if err := c.net.Start(); err != nil {
		return fmt.Errorf("start net module: %w", err)
	}
	c.state = stateStarted
	return nil
}

// Close releases the net module, whether or not Start succeeded.
// Calling it more than once is a no-op.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateClosed {
		return nil
	}
	c.state = stateClosed

	c.log.Info(fmt.Sprintf("Closing %s", c))
	if err := c.net.Close(); err != nil {
		return fmt.Errorf("close net module: %w", err)
	}
	return nil
}

func (c *Console) AddMessageListener(listener contract.MessageListener) (ListenerID, error) {
	if listener == nil {
		return ListenerID{}, fmt.Errorf("nil message listener: %w", errors.ErrInvalidArgument)
	}
	return c.messageListeners.add(listener), nil
}

func (c *Console) RemoveMessageListener(id ListenerID) {
	c.messageListeners.remove(id)
}

func (c *Console) AddConnectionOpenedListener(listener contract.ConnectionListener) (ListenerID, error) {
	if listener == nil {
		return ListenerID{}, fmt.Errorf("nil connection listener: %w", errors.ErrInvalidArgument)
	}
	return c.openedListeners.add(listener), nil
}

func (c *Console) RemoveConnectionOpenedListener(id ListenerID) {
	c.openedListeners.remove(id)
}

func (c *Console) AddConnectionClosedListener(listener contract.ConnectionListener) (ListenerID, error) {
	if listener == nil {
		return ListenerID{}, fmt.Errorf("nil connection listener: %w", errors.ErrInvalidArgument)
	}
	return c.closedListeners.add(listener), nil
}

func (c *Console) RemoveConnectionClosedListener(id ListenerID) {
	c.closedListeners.remove(id)
}

// SupplyMessage hands msg to every message listener in registration order.
// A failing listener is logged and skipped.
func (c *Console) SupplyMessage(msg domain.Message) {
	for _, entry := range c.messageListeners.snapshot() {
		c.notify("message", entry.id, func() error {
			return entry.listener.OnMessage(msg)
		})
	}
}

// ConnectionOpened registers conn and notifies the opened listeners.
func (c *Console) ConnectionOpened(conn domain.Connection) {
	if conn == nil {
		c.log.Warn("Ignoring nil opened connection")
		return
	}
	if !c.registry.Add(conn) {
		c.log.Warn("Connection already registered", "connection_id", conn.ID())
		return
	}
	c.log.Debug("Connection opened", "connection_id", conn.ID(), "remote_addr", conn.RemoteAddress())
	for _, entry := range c.openedListeners.snapshot() {
		c.notify("connection_opened", entry.id, func() error {
			return entry.listener.OnConnection(conn)
		})
	}
}

// ConnectionClosed unregisters conn and notifies the closed listeners.
func (c *Console) ConnectionClosed(conn domain.Connection) {
	if conn == nil {
		c.log.Warn("Ignoring nil closed connection")
		return
	}
	c.registry.Remove(conn)
	c.log.Debug("Connection closed", "connection_id", conn.ID(), "remote_addr", conn.RemoteAddress())
	for _, entry := range c.closedListeners.snapshot() {
		c.notify("connection_closed", entry.id, func() error {
			return entry.listener.OnConnection(conn)
		})
	}
}

func (c *Console) ConnectionCount() int {
	return c.registry.Count()
}

func (c *Console) Connections() iter.Seq[domain.Connection] {
	return c.registry.All()
}

func (c *Console) Connection(id string) (domain.Connection, bool) {
	return c.registry.Get(id)
}

// Broadcast sends content to every live connection and returns how many
// sends succeeded.
func (c *Console) Broadcast(content domain.MessageContent) int {
	sent := 0
	for conn := range c.registry.All() {
		if err := conn.Send(content); err != nil {
			c.log.Warn("Broadcast failed", "connection_id", conn.ID(), "error", err)
			continue
		}
		sent++
	}
	return sent
}

// notify runs one listener, recovering panics the way the supervisor
// recovers crashed workers, so the remaining listeners still run.
func (c *Console) notify(kind string, id ListenerID, fn func() error) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Recovered(r)
			}
		}()
		if err := fn(); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrHandlerFailure, err)
		}
		return nil
	}()
	if err != nil {
		c.log.Warn("Listener failed", "listener", kind, "listener_id", id.String(), "error", err)
	}
}
