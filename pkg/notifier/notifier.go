// Package notifier holds a single transient message that dismisses itself
// after a delay. Showing a new message replaces the current one and restarts
// the dismissal timer.
package notifier

import (
	"sync"
	"time"
)

// DefaultDuration is used when Show is called with a non-positive duration.
const DefaultDuration = 2500 * time.Millisecond

// Message is the currently visible notification.
type Message struct {
	Text      string
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Remaining returns how long the message stays visible after now.
func (m Message) Remaining(now time.Time) time.Duration {
	if d := m.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Notifier is a single-slot, last-write-wins message holder.
type Notifier struct {
	mu       sync.Mutex
	current  Message
	visible  bool
	timer    *time.Timer
	gen      uint64
	duration time.Duration
	now      func() time.Time
}

// New creates a Notifier. d <= 0 selects DefaultDuration.
func New(d time.Duration) *Notifier {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Notifier{duration: d, now: time.Now}
}

// Show displays message for d, or for the notifier default when d <= 0.
func (n *Notifier) Show(message string, d time.Duration) {
	if d <= 0 {
		d = n.duration
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen

	now := n.now()
	n.current = Message{Text: message, ShownAt: now, ExpiresAt: now.Add(d)}
	n.visible = true
	n.timer = time.AfterFunc(d, func() { n.dismiss(gen) })
}

// dismiss hides the message only if no newer Show happened since gen was issued.
func (n *Notifier) dismiss(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if gen != n.gen {
		return
	}
	n.visible = false
	n.current = Message{}
	n.timer = nil
}

// Current returns the visible message, if any.
func (n *Notifier) Current() (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current, n.visible
}

// Stop cancels any pending dismissal and clears the slot.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	n.visible = false
	n.current = Message{}
}
