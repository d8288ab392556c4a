// Package domain contains core concepts of the console.
// This file defines MessageContent and its JSON wire encoding.
package domain

import (
	"bytes"
	"encoding/json"
	goerrors "errors"
	"fmt"

	"webconsole/errors"
)

const (
	jsonText  = "text"
	jsonColor = "color"
)

// MessageContent is an ordered, immutable sequence of snippets.
// The order is the rendering order.
type MessageContent struct {
	snippets []*MessageSnippet
}

// NewMessageContent fails with errors.ErrNilSnippet if any snippet is nil.
func NewMessageContent(snippets ...*MessageSnippet) (MessageContent, error) {
	for i, s := range snippets {
		if s == nil {
			return MessageContent{}, fmt.Errorf("snippet %d: %w", i, errors.ErrNilSnippet)
		}
	}
	return MessageContent{snippets: append([]*MessageSnippet(nil), snippets...)}, nil
}

// Of wraps plain text into a single unstyled snippet.
func Of(text string) MessageContent {
	return MessageContent{snippets: []*MessageSnippet{NewSnippet(text)}}
}

func (c MessageContent) Len() int { return len(c.snippets) }

func (c MessageContent) Snippet(i int) (*MessageSnippet, error) {
	if i < 0 || i >= len(c.snippets) {
		return nil, fmt.Errorf("snippet %d of %d: %w", i, len(c.snippets), errors.ErrArgumentOutOfRange)
	}
	return c.snippets[i], nil
}

// Snippets returns a copy of the underlying sequence.
func (c MessageContent) Snippets() []*MessageSnippet {
	return append([]*MessageSnippet(nil), c.snippets...)
}

// PlainText concatenates the text of every snippet.
func (c MessageContent) PlainText() string {
	var b bytes.Buffer
	for _, s := range c.snippets {
		b.WriteString(s.text)
	}
	return b.String()
}

func (c MessageContent) Equal(o MessageContent) bool {
	if len(c.snippets) != len(o.snippets) {
		return false
	}
	for i := range c.snippets {
		if !c.snippets[i].Equal(o.snippets[i]) {
			return false
		}
	}
	return true
}

// AsJSON encodes the content as a JSON array, one object per snippet.
func (c MessageContent) AsJSON() ([]byte, error) {
	return json.Marshal(c)
}

// FromJSON decodes a JSON array produced by AsJSON.
func FromJSON(data []byte) (MessageContent, error) {
	var c MessageContent
	if err := json.Unmarshal(data, &c); err != nil {
		// Syntax errors are reported before UnmarshalJSON runs.
		if goerrors.Is(err, errors.ErrMalformedContent) {
			return MessageContent{}, err
		}
		return MessageContent{}, fmt.Errorf("%w: %w", errors.ErrMalformedContent, err)
	}
	return c, nil
}

type snippetJSON struct {
	Text          *string `json:"text"`
	Color         []int   `json:"color,omitempty"`
	Bold          *bool   `json:"bold,omitempty"`
	Italic        *bool   `json:"italic,omitempty"`
	Underlined    *bool   `json:"underlined,omitempty"`
	Strikethrough *bool   `json:"strikethrough,omitempty"`
}

func (c MessageContent) MarshalJSON() ([]byte, error) {
	out := make([]snippetJSON, 0, len(c.snippets))
	for _, s := range c.snippets {
		text := s.text
		item := snippetJSON{
			Text:          &text,
			Bold:          s.bold,
			Italic:        s.italic,
			Underlined:    s.underlined,
			Strikethrough: s.strikethrough,
		}
		if s.color != nil {
			item.Color = []int{int(s.color.R), int(s.color.G), int(s.color.B)}
		}
		out = append(out, item)
	}
	return json.Marshal(out)
}

func (c *MessageContent) UnmarshalJSON(data []byte) error {
	var raw []*snippetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrMalformedContent, err)
	}
	snippets := make([]*MessageSnippet, 0, len(raw))
	for i, item := range raw {
		s, err := item.toSnippet()
		if err != nil {
			return fmt.Errorf("snippet %d: %w", i, err)
		}
		snippets = append(snippets, s)
	}
	c.snippets = snippets
	return nil
}

func (j *snippetJSON) toSnippet() (*MessageSnippet, error) {
	if j == nil {
		return nil, fmt.Errorf("%w: null snippet", errors.ErrMalformedContent)
	}
	if j.Text == nil {
		return nil, fmt.Errorf("%w: missing %q", errors.ErrMalformedContent, jsonText)
	}
	s := &MessageSnippet{
		text:          *j.Text,
		bold:          j.Bold,
		italic:        j.Italic,
		underlined:    j.Underlined,
		strikethrough: j.Strikethrough,
	}
	if j.Color != nil {
		if len(j.Color) != 3 {
			return nil, fmt.Errorf("%w: %s needs 3 channels, got %d", errors.ErrMalformedContent, jsonColor, len(j.Color))
		}
		for _, ch := range j.Color {
			if ch < 0 || ch > 255 {
				return nil, fmt.Errorf("%w: %s channel %d out of range", errors.ErrMalformedContent, jsonColor, ch)
			}
		}
		s.color = &Color{R: uint8(j.Color[0]), G: uint8(j.Color[1]), B: uint8(j.Color[2])}
	}
	return s, nil
}
