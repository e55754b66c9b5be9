package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-dungeon/internal/input"
)

// keyHold synthesizes key releases. Terminals report presses and auto-repeat
// but no releases, so a key counts as held until it has not been seen for
// the hold duration.
type keyHold struct {
	hold time.Duration
	seen map[input.Key]time.Time
}

func newKeyHold(hold time.Duration) *keyHold {
	return &keyHold{
		hold: hold,
		seen: make(map[input.Key]time.Time),
	}
}

// touch records a press or auto-repeat of k.
func (h *keyHold) touch(k input.Key, at time.Time) {
	h.seen[k] = at
}

// expired removes and returns the keys not seen within the hold duration,
// sorted by name.
func (h *keyHold) expired(now time.Time) []input.Key {
	var keys []input.Key
	for k, at := range h.seen {
		if now.Sub(at) >= h.hold {
			keys = append(keys, k)
		}
	}
	for _, k := range keys {
		delete(h.seen, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
