// Package preview renders forum post markdown into short plain-text previews
// suitable for notification content.
package preview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Service interface {
	// PlainText renders markdown to HTML, strips every tag, collapses
	// whitespace and truncates the result to maxRunes.
	PlainText(markdown string, maxRunes int) (string, error)
}

type serviceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
		),
	)

	return &serviceImpl{
		md:     md,
		policy: bluemonday.StrictPolicy(),
	}
}

func (s *serviceImpl) PlainText(markdown string, maxRunes int) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}

	text := s.policy.Sanitize(buf.String())
	text = strings.Join(strings.Fields(text), " ")

	if maxRunes > 0 {
		runes := []rune(text)
		if len(runes) > maxRunes {
			text = string(runes[:maxRunes]) + "…"
		}
	}

	return text, nil
}
