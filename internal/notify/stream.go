// Package notify broadcasts transient UI messages to any number of
// subscribers.
package notify

import (
	"sync"
	"sync/atomic"
)

// Stream fans each published message out to every subscriber. It is safe
// for concurrent use.
type Stream struct {
	mu      sync.Mutex
	subs    map[int]chan string
	nextID  int
	closed  bool
	dropped atomic.Int64
}

// NewStream returns an open Stream with no subscribers.
func NewStream() *Stream {
	return &Stream{subs: make(map[int]chan string)}
}

// Subscribe registers a subscriber with the given buffer size and returns its
// channel plus a function that unsubscribes and closes the channel. The
// channel is also closed when the stream is closed.
func (s *Stream) Subscribe(buffer int) (<-chan string, func()) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan string, buffer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// Publish delivers msg to every subscriber without blocking. A subscriber
// whose buffer is full misses the message. Publishing on a closed stream
// does nothing.
func (s *Stream) Publish(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for _, ch := range s.subs {
		select {
		case ch <- msg:
		default:
			s.dropped.Add(1)
		}
	}
}

// Close closes every subscriber channel. Further calls are no-ops.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// Dropped returns how many deliveries were skipped because a subscriber was
// not keeping up.
func (s *Stream) Dropped() int64 {
	return s.dropped.Load()
}
