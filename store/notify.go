package store

import (
	"sync"
	"time"
)

type Severity string

const (
	NoticeSuccess Severity = "success"
	NoticeError   Severity = "error"
)

type Notification struct {
	Message string   `json:"message"`
	Type    Severity `json:"type"`
}

// notifier holds the single current transient notification. Each emit
// stops the previous clear timer and schedules its own, so a new
// notification always pre-empts the old one cleanly.
type notifier struct {
	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	gen     uint64
	ttl     time.Duration
}

const notificationTTL = 3 * time.Second

func newNotifier(ttl time.Duration) *notifier {
	return &notifier{ttl: ttl}
}

func (n *notifier) Emit(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	// Stop cannot cancel a clear that has already fired and is waiting
	// on the mutex; the generation check makes such a clear a no-op.
	n.gen++
	gen := n.gen
	n.current = &Notification{Message: message, Type: severity}
	n.timer = time.AfterFunc(n.ttl, func() { n.clear(gen) })
}

func (n *notifier) clear(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.gen {
		return
	}
	n.current = nil
	n.timer = nil
}

func (n *notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	c := *n.current
	return &c
}
