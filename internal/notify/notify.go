// Package notify is the transient notification center. A published
// message is pushed to all subscribed pages and auto-dismissed after a
// short interval; publishing again replaces the pending dismissal.
package notify

import (
	"sync"
	"time"
)

// dismissAfter is how long a toast stays visible.
const dismissAfter = 1800 * time.Millisecond

// Event is one notification update. An empty Text dismisses.
type Event struct {
	Text string
}

// Center fans published toasts out to subscribers.
type Center struct {
	mu      sync.Mutex
	subs    map[chan Event]struct{}
	current string
	timer   *time.Timer
}

// NewCenter creates an empty Center.
func NewCenter() *Center {
	return &Center{subs: make(map[chan Event]struct{})}
}

// Publish shows a toast on every subscribed page. A pending dismissal
// timer is cancelled and restarted, so a new toast always gets the
// full display interval.
func (c *Center) Publish(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = text
	c.broadcast(Event{Text: text})

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(dismissAfter, c.dismiss)
}

func (c *Center) dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = ""
	c.broadcast(Event{})
}

// broadcast requires c.mu. Slow subscribers drop events rather than
// block the publisher.
func (c *Center) broadcast(ev Event) {
	for ch := range c.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Current returns the toast a freshly opened page should show.
func (c *Center) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Subscribe registers a listener. The returned cancel func must be
// called when the page disconnects.
func (c *Center) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)
	c.mu.Lock()
	c.subs[ch] = struct{}{}
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		delete(c.subs, ch)
		c.mu.Unlock()
	}
	return ch, cancel
}
