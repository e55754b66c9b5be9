package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-dungeon/internal/input"
)

func TestKeyHoldExpires(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newKeyHold(500 * time.Millisecond)

	h.touch("w", t0)
	h.touch("d", t0.Add(300*time.Millisecond))

	if got := h.expired(t0.Add(499 * time.Millisecond)); len(got) != 0 {
		t.Errorf("expired() = %v, expected none before the hold elapses", got)
	}

	got := h.expired(t0.Add(500 * time.Millisecond))
	if len(got) != 1 || got[0] != "w" {
		t.Errorf("expired() = %v, expected [w]", got)
	}

	// Released keys are not reported twice.
	got = h.expired(t0.Add(2 * time.Second))
	if len(got) != 1 || got[0] != "d" {
		t.Errorf("expired() = %v, expected [d]", got)
	}
}

func TestKeyHoldRepeatExtends(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newKeyHold(500 * time.Millisecond)

	// Auto-repeat keeps the key held.
	for i := 0; i < 10; i++ {
		h.touch(input.KeyLeft, t0.Add(time.Duration(i)*100*time.Millisecond))
	}

	if got := h.expired(t0.Add(1200 * time.Millisecond)); len(got) != 0 {
		t.Errorf("expired() = %v, expected the repeated key to stay held", got)
	}
	if got := h.expired(t0.Add(1400 * time.Millisecond)); len(got) != 1 {
		t.Errorf("expired() = %v, expected the key released", got)
	}
}

func TestKeyHoldSorted(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newKeyHold(time.Millisecond)

	for _, k := range []input.Key{"s", "a", "w", "d"} {
		h.touch(k, t0)
	}

	got := h.expired(t0.Add(time.Second))
	expected := []input.Key{"a", "d", "s", "w"}
	if len(got) != len(expected) {
		t.Fatalf("expired() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("expired()[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}
