// Package domain contains core concepts of the console.
// This file defines MessageSnippet, a uniformly styled run of text.
// Snippets are immutable once built.
package domain

import "fmt"

// Color is an RGB triple with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// MessageSnippet is a piece of text with optional style overrides.
// A nil override means "inherit the rendering default".
type MessageSnippet struct {
	text          string
	color         *Color
	bold          *bool
	italic        *bool
	underlined    *bool
	strikethrough *bool
}

type SnippetOption func(*MessageSnippet)

func WithColor(c Color) SnippetOption {
	return func(s *MessageSnippet) { s.color = &c }
}

func WithBold(v bool) SnippetOption {
	return func(s *MessageSnippet) { s.bold = &v }
}

func WithItalic(v bool) SnippetOption {
	return func(s *MessageSnippet) { s.italic = &v }
}

func WithUnderlined(v bool) SnippetOption {
	return func(s *MessageSnippet) { s.underlined = &v }
}

func WithStrikethrough(v bool) SnippetOption {
	return func(s *MessageSnippet) { s.strikethrough = &v }
}

func NewSnippet(text string, opts ...SnippetOption) *MessageSnippet {
	s := &MessageSnippet{text: text}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MessageSnippet) Text() string { return s.text }

func (s *MessageSnippet) Color() (Color, bool) { return deref(s.color) }

func (s *MessageSnippet) Bold() (bool, bool) { return deref(s.bold) }

func (s *MessageSnippet) Italic() (bool, bool) { return deref(s.italic) }

func (s *MessageSnippet) Underlined() (bool, bool) { return deref(s.underlined) }

func (s *MessageSnippet) Strikethrough() (bool, bool) { return deref(s.strikethrough) }

// Equal reports whether both snippets carry the same text and the same
// overrides. An unset override never equals an explicit one.
func (s *MessageSnippet) Equal(o *MessageSnippet) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.text == o.text &&
		samePtr(s.color, o.color) &&
		samePtr(s.bold, o.bold) &&
		samePtr(s.italic, o.italic) &&
		samePtr(s.underlined, o.underlined) &&
		samePtr(s.strikethrough, o.strikethrough)
}

func (s *MessageSnippet) String() string {
	return fmt.Sprintf("MessageSnippet{text=%q, color=%s, bold=%s, italic=%s, underlined=%s, strikethrough=%s}",
		s.text, fmtPtr(s.color), fmtPtr(s.bold), fmtPtr(s.italic), fmtPtr(s.underlined), fmtPtr(s.strikethrough))
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func samePtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPtr[T any](p *T) string {
	if p == nil {
		return "unset"
	}
	return fmt.Sprint(*p)
}
