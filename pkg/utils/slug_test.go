package utils

import (
	"strings"
	"testing"
)

func TestMakeSlug(t *testing.T) {
	got := MakeSlug("Plan de Riego 2026!", "conv-abcdef1234567890")
	if got != "plan-de-riego-2026-34567890" {
		t.Fatalf("unexpected slug %q", got)
	}
	// empty title falls back to the id suffix
	if got := MakeSlug("", "conv-abcdef1234567890"); got != "34567890" {
		t.Fatalf("unexpected slug %q", got)
	}
	// long titles are truncated before the suffix
	long := MakeSlug(strings.Repeat("palabra ", 20), "conv-xyz")
	if len(long) > 60+1+8 {
		t.Fatalf("slug too long: %q", long)
	}
	if !strings.HasSuffix(long, "-conv-xyz") {
		t.Fatalf("short ids are kept whole, got %q", long)
	}
}
