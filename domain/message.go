// Package domain contains core concepts of the console.
// This file defines Message, one inbound line of text.
// Messages are immutable and validated by the domain.
package domain

import (
	"fmt"
	"strings"

	"webconsole/errors"
)

// Message represents an immutable inbound text line and its origin.
type Message struct {
	connection Connection
	text       string
}

// NewMessage strips leading and trailing whitespace from text.
func NewMessage(conn Connection, text string) (Message, error) {
	if conn == nil {
		return Message{}, fmt.Errorf("message without connection: %w", errors.ErrInvalidArgument)
	}
	return Message{connection: conn, text: strings.TrimSpace(text)}, nil
}

func (m Message) Connection() Connection { return m.connection }

func (m Message) Text() string { return m.text }
