package notifier_test

import (
	"testing"
	"time"

	"github.com/Farhanb1/simple-vanilla-todo/pkg/notifier"
)

func waitHidden(t *testing.T, n *notifier.Notifier, within time.Duration) {
	t.Helper()
	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		if _, ok := n.Current(); !ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("message still visible after %v", within)
}

func TestShowAndAutoDismiss(t *testing.T) {
	n := notifier.New(0)

	n.Show("Added: \"Buy milk\"", 30*time.Millisecond)

	msg, ok := n.Current()
	if !ok {
		t.Fatalf("expected a visible message")
	}
	if msg.Text != "Added: \"Buy milk\"" {
		t.Errorf("unexpected text %q", msg.Text)
	}
	if got := msg.ExpiresAt.Sub(msg.ShownAt); got != 30*time.Millisecond {
		t.Errorf("expected 30ms lifetime, got %v", got)
	}

	waitHidden(t, n, time.Second)
}

func TestShowReplacesAndRestartsTimer(t *testing.T) {
	n := notifier.New(0)

	n.Show("first", 40*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	n.Show("second", 200*time.Millisecond)

	// The first timer would have fired by now; the second must still hold.
	time.Sleep(60 * time.Millisecond)
	msg, ok := n.Current()
	if !ok {
		t.Fatalf("second message dismissed by the first timer")
	}
	if msg.Text != "second" {
		t.Errorf("expected last write to win, got %q", msg.Text)
	}

	waitHidden(t, n, time.Second)
}

func TestDefaultDuration(t *testing.T) {
	n := notifier.New(0)
	defer n.Stop()

	n.Show("hello", 0)
	msg, ok := n.Current()
	if !ok {
		t.Fatalf("expected a visible message")
	}
	if got := msg.ExpiresAt.Sub(msg.ShownAt); got != notifier.DefaultDuration {
		t.Errorf("expected %v, got %v", notifier.DefaultDuration, got)
	}
	if msg.Remaining(msg.ShownAt) != notifier.DefaultDuration {
		t.Errorf("unexpected remaining %v", msg.Remaining(msg.ShownAt))
	}
	if msg.Remaining(msg.ExpiresAt.Add(time.Second)) != 0 {
		t.Errorf("remaining must not go negative")
	}
}

func TestStop(t *testing.T) {
	n := notifier.New(time.Hour)

	n.Show("pending", 0)
	n.Stop()

	if _, ok := n.Current(); ok {
		t.Errorf("expected slot to be cleared by Stop")
	}
}
