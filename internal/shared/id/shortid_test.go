package id

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	id, err := Generate(12)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(id) != 12 {
		t.Errorf("expected length 12, got %d", len(id))
	}
	for _, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			t.Errorf("unexpected character %q in generated ID", c)
		}
	}
}

func TestGenerateDefaultLength(t *testing.T) {
	id, err := Generate(0)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(id) != DefaultLength {
		t.Errorf("expected default length %d, got %d", DefaultLength, len(id))
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := MustGenerate(DefaultLength)
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	id, err := GenerateWithPrefix(PrefixNotification, 12)
	if err != nil {
		t.Fatalf("GenerateWithPrefix returned error: %v", err)
	}
	if !strings.HasPrefix(id, "ntf_") {
		t.Errorf("expected ntf_ prefix, got %s", id)
	}
	if len(id) != len("ntf_")+12 {
		t.Errorf("unexpected total length for %s", id)
	}
}

func TestStripPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ntf_abc123", "abc123"},
		{"abc123", "abc123"},
		{"usr_", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripPrefix(tt.in); got != tt.want {
			t.Errorf("StripPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
