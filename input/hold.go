package input

import (
	"sort"
	"time"
)

// HoldTracker synthesizes key releases for terminals that only report presses
// A press opens a hold lasting the initial delay; auto-repeat presses extend it by
// the repeat delay; an expired hold yields a release intent
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	holds   map[IntentType]time.Time // intent -> expiry
}

// NewHoldTracker creates a tracker with the given initial and repeat windows
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		holds:   make(map[IntentType]time.Time),
	}
}

// Press records a key press and returns the intents to apply
// Non-paddle intents pass through without a hold
func (h *HoldTracker) Press(t IntentType, now time.Time) []Intent {
	if !t.IsPaddle() {
		return []Intent{Press(t)}
	}

	// Opposite direction on the same paddle is superseded, its release would zero the new velocity
	delete(h.holds, t.Opposite())

	if _, held := h.holds[t]; held {
		h.holds[t] = now.Add(h.repeat)
	} else {
		h.holds[t] = now.Add(h.initial)
	}
	return []Intent{Press(t)}
}

// Expire returns release intents for holds past their expiry
func (h *HoldTracker) Expire(now time.Time) []Intent {
	var released []IntentType
	for t, until := range h.holds {
		if !now.Before(until) {
			released = append(released, t)
		}
	}
	if len(released) == 0 {
		return nil
	}

	// Stable order across map iteration
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })

	out := make([]Intent, 0, len(released))
	for _, t := range released {
		delete(h.holds, t)
		out = append(out, Release(t))
	}
	return out
}

// Held reports whether t is currently held
func (h *HoldTracker) Held(t IntentType) bool {
	_, ok := h.holds[t]
	return ok
}

// Reset drops all holds without emitting releases
func (h *HoldTracker) Reset() {
	clear(h.holds)
}
