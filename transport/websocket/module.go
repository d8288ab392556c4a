// Package websocket provides the network side of a console: an HTTP server
// serving the console page, and a websocket endpoint whose sessions become
// console connections.
package websocket

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"

	"webconsole/contract"
	"webconsole/domain"
	"webconsole/errors"
)

const (
	DefaultHost          = "localhost"
	DefaultPort          = 8080
	DefaultWebsocketPath = "/ws"

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type Config struct {
	Host          string
	Port          int
	WebsocketPath string
	MetricsPath   string
	Title         string
	WriteTimeout  time.Duration
	ReadLimit     int64
}

func DefaultConfig() Config {
	return Config{
		Host:          DefaultHost,
		Port:          DefaultPort,
		WebsocketPath: DefaultWebsocketPath,
		MetricsPath:   "/metrics",
		Title:         "webconsole",
		WriteTimeout:  10 * time.Second,
		ReadLimit:     4096,
	}
}

// Module is a contract.NetModule serving a console over HTTP and websocket.
type Module struct {
	log     *slog.Logger
	config  Config
	metrics http.Handler

	console  contract.IConsole
	upgrader websocket.Upgrader
	server   *http.Server

	mu       sync.Mutex
	listener net.Listener
	sessions map[string]*Connection
	closed   bool
	wg       sync.WaitGroup

	// bound is published once the listener is up; Addr reads it without mu.
	bound atomic.Pointer[string]
}

var _ contract.NetModule = (*Module)(nil)

type Option func(*Module)

// WithMetricsHandler serves h on Config.MetricsPath.
func WithMetricsHandler(h http.Handler) Option {
	return func(m *Module) { m.metrics = h }
}

func NewModule(log *slog.Logger, config Config, opts ...Option) *Module {
	if !strings.HasPrefix(config.WebsocketPath, "/") {
		config.WebsocketPath = "/" + config.WebsocketPath
	}
	m := &Module{
		log:    log,
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		sessions: make(map[string]*Connection),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Module) String() string {
	return fmt.Sprintf("Module@%s", m.Addr())
}

// Init builds the HTTP routes for console. It must be called once.
func (m *Module) Init(console contract.IConsole) error {
	if console == nil {
		return fmt.Errorf("nil console: %w", errors.ErrInvalidArgument)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.console != nil {
		return fmt.Errorf("module already bound to %v: %w", m.console, errors.ErrInvalidArgument)
	}
	m.console = console

	page, err := newPageHandler(m.config.Title, m.config.WebsocketPath)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", page)
	mux.HandleFunc(m.config.WebsocketPath, m.handleWebSocket)
	if m.metrics != nil && m.config.MetricsPath != "" {
		mux.Handle(m.config.MetricsPath, m.metrics)
	}
	m.server = &http.Server{Handler: mux, ReadHeaderTimeout: readHeaderTimeout}

	m.log.Info(fmt.Sprintf("Webserver created on %s%s", m.Addr(), m.config.WebsocketPath))
	return nil
}

// Start binds the listener and serves in the background. It returns once
// the address is bound.
func (m *Module) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.server == nil {
		return fmt.Errorf("module not initialised: %w", errors.ErrInvalidArgument)
	}
	if m.closed {
		return errors.ErrConsoleClosed
	}
	if m.listener != nil {
		return errors.ErrAlreadyStarted
	}

	l, err := net.Listen("tcp", net.JoinHostPort(m.config.Host, strconv.Itoa(m.config.Port)))
	if err != nil {
		return fmt.Errorf("listen on %s:%d: %w", m.config.Host, m.config.Port, err)
	}
	m.listener = l
	addr := l.Addr().String()
	m.bound.Store(&addr)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.server.Serve(l); err != nil && err != http.ErrServerClosed {
			m.log.Error("HTTP server failed", "error", err)
		}
	}()

	m.log.Info(fmt.Sprintf("%s successfully started", m))
	return nil
}

// Close stops the HTTP server and every live session, then waits for their
// goroutines. It is safe to call before Start and more than once.
func (m *Module) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	server := m.server
	sessions := lo.Values(m.sessions)
	m.mu.Unlock()

	m.log.Info(fmt.Sprintf("%s will be stopped", m))

	var err error
	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if serr := server.Shutdown(ctx); serr != nil {
			err = fmt.Errorf("shutdown http server: %w", serr)
		}
	}
	// Hijacked websocket connections are not tracked by Shutdown.
	for _, conn := range sessions {
		_ = conn.Close()
	}
	m.wg.Wait()
	return err
}

// Addr is the bound address once started, the configured one before.
func (m *Module) Addr() string {
	if addr := m.bound.Load(); addr != nil {
		return *addr
	}
	return net.JoinHostPort(m.config.Host, strconv.Itoa(m.config.Port))
}

func (m *Module) HTTPURL() string {
	return fmt.Sprintf("http://%s/", m.Addr())
}

func (m *Module) WebsocketURL() string {
	return fmt.Sprintf("ws://%s%s", m.Addr(), m.config.WebsocketPath)
}

func (m *Module) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the request
		m.log.Debug("Websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}
	if m.config.ReadLimit > 0 {
		ws.SetReadLimit(m.config.ReadLimit)
	}
	conn := newConnection(m.log, m.console, ws, r.RemoteAddr, m.config.WriteTimeout)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		_ = conn.Close()
		return
	}
	m.sessions[conn.ID()] = conn
	m.wg.Add(1)
	m.mu.Unlock()

	go m.serve(conn)
}

// serve reads text frames until the session ends. It owns the whole
// lifecycle of conn as seen by the console.
func (m *Module) serve(conn *Connection) {
	defer m.wg.Done()
	defer func() {
		conn.markClosed()
		m.mu.Lock()
		delete(m.sessions, conn.ID())
		m.mu.Unlock()
		_ = conn.Close()
		m.console.ConnectionClosed(conn)
	}()

	m.log.Debug("Websocket connection opened", "connection_id", conn.ID(), "remote_addr", conn.RemoteAddress())
	m.console.ConnectionOpened(conn)

	for {
		kind, data, err := conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				m.log.Debug("Websocket read failed", "connection_id", conn.ID(), "error", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		msg, err := domain.NewMessage(conn, string(data))
		if err != nil {
			m.log.Warn("Dropping message", "connection_id", conn.ID(), "error", err)
			continue
		}
		m.log.Debug("Websocket message received", "connection_id", conn.ID(), "message", msg.Text())
		m.console.SupplyMessage(msg)
	}
}
