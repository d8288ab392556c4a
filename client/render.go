package main

import (
	"strings"

	"github.com/gookit/color"

	"webconsole/domain"
)

// Render turns content into a line of ANSI styled text. Snippets without
// overrides keep the terminal defaults.
func Render(content domain.MessageContent) string {
	var sb strings.Builder
	for _, s := range content.Snippets() {
		sb.WriteString(renderSnippet(s))
	}
	return sb.String()
}

func renderSnippet(s *domain.MessageSnippet) string {
	var opts []color.Color
	if v, ok := s.Bold(); ok && v {
		opts = append(opts, color.OpBold)
	}
	if v, ok := s.Italic(); ok && v {
		opts = append(opts, color.OpItalic)
	}
	if v, ok := s.Underlined(); ok && v {
		opts = append(opts, color.OpUnderscore)
	}
	if v, ok := s.Strikethrough(); ok && v {
		opts = append(opts, color.OpStrikethrough)
	}

	c, hasColor := s.Color()
	switch {
	case hasColor:
		return color.NewRGBStyle(color.RGB(c.R, c.G, c.B)).AddOpts(opts...).Sprint(s.Text())
	case len(opts) > 0:
		return color.New(opts...).Sprint(s.Text())
	default:
		return s.Text()
	}
}
