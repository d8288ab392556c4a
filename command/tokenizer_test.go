package command

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"webconsole/domain"
	"webconsole/mocks"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"blank", " \t  ", nil},
		{"single word", "help", []string{"help"}},
		{"collapses whitespace", "  greet   Alice\tBob ", []string{"greet", "Alice", "Bob"}},
		{"double quotes group", `cmd arg1 "arg two" arg3`, []string{"cmd", "arg1", "arg two", "arg3"}},
		{"single quotes group", `say 'hello  world'`, []string{"say", "hello  world"}},
		{"escaped quotes", `say \"hi\"`, []string{"say", `"hi"`}},
		{"escaped space", `cd my\ dir`, []string{"cd", "my dir"}},
		{"empty double quotes", `set ""`, []string{"set", ""}},
		{"empty single quotes", `set ''`, []string{"set", ""}},
		{"adjacent parts join", `a"b c"'d'e`, []string{"ab cde"}},
		{"backslash literal in single quotes", `echo 'a\b'`, []string{"echo", `a\b`}},
		{"backslash escapes quote in double quotes", `echo "a\"b"`, []string{"echo", `a"b`}},
		{"backslash kept before other char in double quotes", `echo "a\nb"`, []string{"echo", `a\nb`}},
		{"escaped backslash in double quotes", `echo "a\\b"`, []string{"echo", `a\b`}},
		{"single quote inside double quotes", `echo "it's"`, []string{"echo", "it's"}},
		{"unterminated quote", `echo "open ended`, []string{"echo", "open ended"}},
		{"trailing backslash", `echo a\`, []string{"echo", `a\`}},
		{"unicode", "greet Zoë 東京", []string{"greet", "Zoë", "東京"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Tokenize(tc.line))
		})
	}
}

func TestParse(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)

	// Given a message with a quoted argument
	msg, err := domain.NewMessage(conn, `greet "Alice Liddell" now`)
	req.NoError(err)

	// When it is parsed
	cmd := Parse(msg)

	// Then the first token is the name and the rest are the arguments
	req.Equal("greet", cmd.Name())
	req.Equal([]string{"Alice Liddell", "now"}, cmd.Args())
	req.Equal(msg, cmd.Source())
}

func TestParse_EmptyMessage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	msg, err := domain.NewMessage(mocks.NewMockConnection(ctrl), "   ")
	req.NoError(err)

	cmd := Parse(msg)

	req.Equal("", cmd.Name())
	req.Equal(0, cmd.ArgCount())
}
