package service

import (
	"testing"

	"estatescout/internal/dto"
)

func TestLastN(t *testing.T) {
	turns := []dto.ChatTurn{
		{Content: "1"}, {Content: "2"}, {Content: "3"}, {Content: "4"}, {Content: "5"}, {Content: "6"},
	}

	got := lastN(turns, 5)
	if len(got) != 5 || got[0].Content != "2" || got[4].Content != "6" {
		t.Errorf("expected the last five turns, got %v", got)
	}

	got = lastN(turns[:2], 5)
	if len(got) != 2 {
		t.Errorf("short histories pass through unchanged, got %v", got)
	}
}

func TestTopN(t *testing.T) {
	items := []string{"a", "b", "c"}

	if got := topN(items, 2); len(got) != 2 || got[1] != "b" {
		t.Errorf("unexpected result: %v", got)
	}
	if got := topN(items, 10); len(got) != 3 {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestSanitizeUTF8(t *testing.T) {
	clean := "clean text"
	if got := sanitizeUTF8(clean); got != clean {
		t.Errorf("valid text must pass through, got %q", got)
	}

	dirty := "bad\xff\xfebytes"
	got := sanitizeUTF8(dirty)
	if got == dirty {
		t.Error("invalid bytes must be stripped or replaced")
	}
}
