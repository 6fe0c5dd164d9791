// Package broadcast fans a fee-payment event out to every connected observer.
// Delivery is a refresh hint, not a record of truth: at most once per observer,
// no replay for late subscribers, and a slow observer is skipped rather than
// blocking the publisher.
package broadcast

import "sync"

// Event is the payload pushed when a user pays fees.
type Event struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type Subscriber struct {
	hub  *Hub
	ch   chan Event
	done chan struct{}
	once sync.Once
}

// Events yields published events until Close.
func (s *Subscriber) Events() <-chan Event { return s.ch }

// Done is closed when the subscriber is deregistered.
func (s *Subscriber) Done() <-chan struct{} { return s.done }

// Close deregisters the subscriber. Safe to call more than once; safe to call
// concurrently with Publish.
func (s *Subscriber) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.done)
	})
}

type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{hub: h, ch: make(chan Event, 8), done: make(chan struct{})}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Publish delivers ev to every subscriber registered at call start. The set is
// snapshotted under the lock so a disconnect mid-broadcast cannot corrupt
// iteration; sends never block, a full buffer drops the event for that observer.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	snapshot := make([]*Subscriber, 0, len(h.subs))
	for s := range h.subs {
		snapshot = append(snapshot, s)
	}
	h.mu.Unlock()

	for _, s := range snapshot {
		select {
		case s.ch <- ev:
		case <-s.done:
		default:
		}
	}
}

func (h *Hub) remove(s *Subscriber) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}
