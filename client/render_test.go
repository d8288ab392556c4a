package main

import (
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"

	"webconsole/domain"
)

func TestRender(t *testing.T) {
	req := require.New(t)
	content, err := domain.NewMessageContent(
		domain.NewSnippet("Hello, "),
		domain.NewSnippet("Alice", domain.WithColor(domain.RGB(255, 0, 0)), domain.WithBold(true)),
		domain.NewSnippet("!", domain.WithItalic(false)),
	)
	req.NoError(err)

	rendered := Render(content)

	// Styling only adds escape sequences around the text
	req.Equal("Hello, Alice!", color.ClearCode(rendered))
}

func TestRender_PlainSnippetIsUntouched(t *testing.T) {
	require.Equal(t, "as is", Render(domain.Of("as is")))
}
