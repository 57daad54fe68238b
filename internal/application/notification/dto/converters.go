package dto

import (
	domain "aircast/internal/domain/notification"
)

// PreviewRenderer turns a markdown content snapshot into short plain text.
type PreviewRenderer interface {
	PlainText(markdown string, maxRunes int) (string, error)
}

// RenderPreviews rewrites each display's content preview from markdown
// to truncated plain text. Best effort: a render failure keeps the raw
// snapshot rather than failing the listing.
func RenderPreviews(items []*domain.Display, renderer PreviewRenderer, maxRunes int) {
	if renderer == nil {
		return
	}
	for _, n := range items {
		if n == nil || n.ContentPreview == nil || *n.ContentPreview == "" {
			continue
		}
		text, err := renderer.PlainText(*n.ContentPreview, maxRunes)
		if err != nil {
			continue
		}
		n.ContentPreview = &text
	}
}
