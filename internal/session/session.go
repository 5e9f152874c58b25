package session

import (
	"sync"
	"time"

	"github.com/hvacinsights/genie-dashboard/internal/genie"
)

const subscriberBuffer = 16

// Session is one mounted chat widget.
type Session struct {
	ID        string
	Widget    genie.WidgetConfig
	CreatedAt time.Time
	Chat      *genie.Controller

	mu       sync.Mutex
	lastSeen time.Time
	nextSub  int
	subs     map[int]chan genie.Update
	closed   bool
}

// Subscribe returns a stream of controller updates and a function that
// detaches it. A listener that falls behind misses updates; the next one it
// receives carries the full log.
func (s *Session) Subscribe() (<-chan genie.Update, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan genie.Update, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	s.nextSub++
	id := s.nextSub
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

func (s *Session) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) publish(u genie.Update) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- u:
		default:
		}
	}
}

func (s *Session) shutdown() {
	s.Chat.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
