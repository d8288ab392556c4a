//go:generate go run go.uber.org/mock/mockgen -source=connection.go -destination=../mocks/mock_connection.go -package=mocks
package domain

// Connection is one live client session, independent of the transport.
type Connection interface {
	// ID is the session key used by the connection registry.
	ID() string
	// RemoteAddress is captured when the session is accepted and never changes.
	RemoteAddress() string
	// Send fails with errors.ErrConnectionClosed once the session is torn down.
	Send(content MessageContent) error
	SendText(text string) error
	// Close is idempotent.
	Close() error
}
