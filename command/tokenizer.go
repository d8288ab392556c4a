// Package command turns console messages into commands and routes them to
// registered handlers.
package command

import (
	"strings"
	"unicode"

	"webconsole/domain"
)

type tokenState int

const (
	noToken tokenState = iota
	normalToken
	singleQuoted
	doubleQuoted
)

// Tokenize splits line into shell-like arguments.
//
// Tokens are separated by whitespace. Single or double quotes group
// whitespace into a token and are stripped; quoted and unquoted parts that
// touch form one token, and an empty pair of quotes yields an empty token.
// Outside quotes a backslash makes the next character literal. Inside double
// quotes it only escapes '"' and '\', and inside single quotes it is literal.
// An unterminated quote runs to the end of the line.
func Tokenize(line string) []string {
	var (
		tokens  []string
		current strings.Builder
		state   = noToken
		escaped bool
	)

	emit := func() {
		tokens = append(tokens, current.String())
		current.Reset()
		state = noToken
	}

	for _, r := range line {
		if escaped {
			escaped = false
			if state == doubleQuoted && r != '"' && r != '\\' {
				current.WriteRune('\\')
			}
			current.WriteRune(r)
			continue
		}

		switch state {
		case singleQuoted:
			if r == '\'' {
				state = normalToken
				continue
			}
			current.WriteRune(r)
		case doubleQuoted:
			switch r {
			case '"':
				state = normalToken
			case '\\':
				escaped = true
			default:
				current.WriteRune(r)
			}
		default:
			switch {
			case r == '\\':
				escaped = true
				state = normalToken
			case r == '\'':
				state = singleQuoted
			case r == '"':
				state = doubleQuoted
			case unicode.IsSpace(r):
				if state == normalToken {
					emit()
				}
			default:
				current.WriteRune(r)
				state = normalToken
			}
		}
	}

	if escaped {
		current.WriteRune('\\')
	}
	if state != noToken {
		emit()
	}
	return tokens
}

// Parse builds a Command from msg. The first token is the name and the
// rest are the arguments. A message without any token gives a command with
// an empty name, which no handler can be registered for.
func Parse(msg domain.Message) domain.Command {
	tokens := Tokenize(msg.Text())
	if len(tokens) == 0 {
		return domain.NewCommand(msg, "", nil)
	}
	return domain.NewCommand(msg, tokens[0], tokens[1:])
}
