package domain

import (
	"fmt"

	"webconsole/errors"
)

// Command is a Message split into a name and positional arguments.
type Command struct {
	source Message
	name   string
	args   []string
}

func NewCommand(source Message, name string, args []string) Command {
	return Command{source: source, name: name, args: append([]string(nil), args...)}
}

func (c Command) Source() Message { return c.source }

// Name is empty when the source message held no token.
func (c Command) Name() string { return c.name }

func (c Command) ArgCount() int { return len(c.args) }

func (c Command) Arg(i int) (string, error) {
	if i < 0 || i >= len(c.args) {
		return "", fmt.Errorf("argument %d of %d for %q: %w", i, len(c.args), c.name, errors.ErrArgumentOutOfRange)
	}
	return c.args[i], nil
}

func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

// Respond sends plain text back to the connection the command came from.
func (c Command) Respond(text string) error {
	return c.RespondContent(Of(text))
}

func (c Command) RespondContent(content MessageContent) error {
	conn := c.source.Connection()
	if conn == nil {
		return fmt.Errorf("command %q has no source connection: %w", c.name, errors.ErrInvalidArgument)
	}
	return conn.Send(content)
}
