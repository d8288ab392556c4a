//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"iter"
	"log/slog"

	"webconsole/domain"
)

// MessageListener observes every message supplied to a console.
// A returned error is logged by the console and never propagated.
type MessageListener interface {
	OnMessage(msg domain.Message) error
}

type MessageListenerFunc func(msg domain.Message) error

func (f MessageListenerFunc) OnMessage(msg domain.Message) error { return f(msg) }

// ConnectionListener observes opened or closed connections.
type ConnectionListener interface {
	OnConnection(conn domain.Connection) error
}

type ConnectionListenerFunc func(conn domain.Connection) error

func (f ConnectionListenerFunc) OnConnection(conn domain.Connection) error { return f(conn) }

// CommandHandler runs one named command.
type CommandHandler interface {
	Handle(cmd domain.Command) error
}

type CommandHandlerFunc func(cmd domain.Command) error

func (f CommandHandlerFunc) Handle(cmd domain.Command) error { return f(cmd) }

// IConsole is the side of the console a NetModule drives.
type IConsole interface {
	SupplyMessage(msg domain.Message)
	ConnectionOpened(conn domain.Connection)
	ConnectionClosed(conn domain.Connection)
	ConnectionCount() int
	Connections() iter.Seq[domain.Connection]
	Logger() *slog.Logger
}

// NetModule performs the I/O of a console. Init is called exactly once,
// before Start, by the console that owns the module.
type NetModule interface {
	Init(console IConsole) error
	Start() error
	Close() error
}

type IConnectionRegistry interface {
	Add(conn domain.Connection) bool
	Remove(conn domain.Connection) bool
	Get(id string) (domain.Connection, bool)
	Count() int
	All() iter.Seq[domain.Connection]
}

// DispatchObserver is notified by the command registry after each dispatch.
type DispatchObserver interface {
	CommandDispatched(name string, matched bool)
	HandlerFailed(name string, err error)
}
