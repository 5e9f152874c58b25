package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hvacinsights/genie-dashboard/internal/genie"
	"github.com/hvacinsights/genie-dashboard/internal/knowledge"
)

var (
	ErrNotFound        = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

type Options struct {
	ReplyDelay  time.Duration
	IdleTTL     time.Duration
	MaxSessions int
	Scheduler   genie.Scheduler
	Logger      zerolog.Logger
	Now         func() time.Time
}

type Stats struct {
	Active        int `json:"active"`
	Open          int `json:"open"`
	AwaitingReply int `json:"awaiting_reply"`
	Subscribers   int `json:"subscribers"`
}

// Registry owns every live chat widget, keyed by a random id.
type Registry struct {
	kb   *knowledge.KnowledgeBase
	opts Options

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(kb *knowledge.KnowledgeBase, opts Options) *Registry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{kb: kb, opts: opts, sessions: map[string]*Session{}}
}

func (r *Registry) Create(widget genie.WidgetConfig) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.opts.MaxSessions > 0 && len(r.sessions) >= r.opts.MaxSessions {
		return nil, fmt.Errorf("create session: %w (limit %d)", ErrTooManySessions, r.opts.MaxSessions)
	}

	now := r.opts.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Widget:    widget,
		CreatedAt: now,
		lastSeen:  now,
		subs:      map[int]chan genie.Update{},
	}
	logger := r.opts.Logger.With().Str("session_id", s.ID).Logger()
	s.Chat = genie.NewController(r.kb, genie.Options{
		ReplyDelay: r.opts.ReplyDelay,
		Scheduler:  r.opts.Scheduler,
		OnChange:   s.publish,
		Logger:     &logger,
	})
	r.sessions[s.ID] = s

	logger.Info().Str("variant", string(widget.Variant)).Msg("session created")
	return s, nil
}

// Get returns the session and marks it as recently used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("get session %s: %w", id, ErrNotFound)
	}
	s.touch(r.opts.Now())
	return s, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("delete session %s: %w", id, ErrNotFound)
	}
	s.shutdown()
	r.opts.Logger.Info().Str("session_id", id).Msg("session closed")
	return nil
}

func (r *Registry) Stats() Stats {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	st := Stats{Active: len(sessions)}
	for _, s := range sessions {
		snap := s.Chat.Snapshot()
		if snap.Open {
			st.Open++
		}
		if snap.State == genie.StateAwaitingReply {
			st.AwaitingReply++
		}
		st.Subscribers += s.Subscribers()
	}
	return st
}

// Sweep closes sessions idle for longer than IdleTTL. Sessions with a live
// event stream are never idle.
func (r *Registry) Sweep() int {
	if r.opts.IdleTTL <= 0 {
		return 0
	}
	cutoff := r.opts.Now().Add(-r.opts.IdleTTL)

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.Subscribers() == 0 && s.LastSeen().Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.shutdown()
	}
	if len(expired) > 0 {
		r.opts.Logger.Info().Int("count", len(expired)).Msg("idle sessions swept")
	}
	return len(expired)
}

// Run sweeps idle sessions until ctx is done, then closes all of them.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = map[string]*Session{}
	r.mu.Unlock()
	for _, s := range sessions {
		s.shutdown()
	}
}
