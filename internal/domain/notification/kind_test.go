package notification

import "testing"

func TestKind_IsKnown(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected bool
	}{
		{"reply", KindReply, true},
		{"like", KindLike, true},
		{"mention reply", KindMentionReply, true},
		{"mention post", KindMentionPost, true},
		{"quote", KindQuote, true},
		{"system", KindSystem, true},
		{"unrecognized", Kind("badge_earned"), false},
		{"empty", Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsKnown(); got != tt.expected {
				t.Errorf("IsKnown() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if got := KindMentionReply.String(); got != "mention_reply" {
		t.Errorf("String() = %v, want mention_reply", got)
	}
}
