package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name     string
		markdown string
		maxRunes int
		want     string
	}{
		{
			name:     "strips formatting",
			markdown: "**bold** and _italic_ text",
			maxRunes: 100,
			want:     "bold and italic text",
		},
		{
			name:     "strips links but keeps text",
			markdown: "see [the schedule](https://example.com/schedule)",
			maxRunes: 100,
			want:     "see the schedule",
		},
		{
			name:     "collapses whitespace across blocks",
			markdown: "first paragraph\n\nsecond paragraph",
			maxRunes: 100,
			want:     "first paragraph second paragraph",
		},
		{
			name:     "strips headings",
			markdown: "# Title\n\nbody",
			maxRunes: 100,
			want:     "Title body",
		},
		{
			name:     "zero max keeps full text",
			markdown: "plain text",
			maxRunes: 0,
			want:     "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.PlainText(tt.markdown, tt.maxRunes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlainTextTruncation(t *testing.T) {
	svc := NewService()

	got, err := svc.PlainText("abcdefghij", 5)
	require.NoError(t, err)
	assert.Equal(t, "abcde…", got)
}

func TestPlainTextTruncationIsRuneSafe(t *testing.T) {
	svc := NewService()

	got, err := svc.PlainText("héllo wörld", 4)
	require.NoError(t, err)
	assert.Equal(t, "héll…", got)
}
