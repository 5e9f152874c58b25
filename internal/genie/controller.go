package genie

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hvacinsights/genie-dashboard/internal/knowledge"
)

type State string

const (
	StateIdle          State = "idle"
	StateAwaitingReply State = "awaiting_reply"
)

// Timer is a scheduled completion that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Update is what a renderer needs after every change: the transcript and the
// index of the turn to scroll into view (-1 when the log is empty).
type Update struct {
	Log      []Turn `json:"log"`
	ScrollTo int    `json:"scroll_to"`
	State    State  `json:"state"`
	Open     bool   `json:"open"`
	Pending  int    `json:"pending"`
}

type Options struct {
	// Questions defaults to DefaultQuestions.
	Questions []string
	// ReplyDelay of zero completes replies before Submit returns.
	ReplyDelay time.Duration
	Scheduler  Scheduler
	// OnChange is called with the controller locked, in change order. It must
	// not call back into the controller.
	OnChange func(Update)
	Logger   *zerolog.Logger
}

// Controller drives one chat widget: it records submissions, consumes asked
// questions and appends the assistant reply once the reply delay elapses.
type Controller struct {
	classifier Classifier
	questions  []string
	delay      time.Duration
	scheduler  Scheduler
	onChange   func(Update)
	logger     zerolog.Logger

	mu         sync.Mutex
	open       bool
	generation uint64
	nextID     uint64
	pending    map[uint64]Timer
	inline     bool
	log        *ConversationLog
	queue      *SuggestionQueue
}

// NewController returns an open widget with a freshly seeded conversation.
func NewController(kb *knowledge.KnowledgeBase, opts Options) *Controller {
	c := &Controller{
		classifier: NewClassifier(kb),
		questions:  opts.Questions,
		delay:      opts.ReplyDelay,
		scheduler:  opts.Scheduler,
		onChange:   opts.OnChange,
		logger:     zerolog.Nop(),
	}
	if c.questions == nil {
		c.questions = DefaultQuestions
	}
	if c.scheduler == nil {
		c.scheduler = realScheduler{}
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	}
	c.open = true
	c.reset()
	return c
}

func (c *Controller) reset() {
	c.pending = map[uint64]Timer{}
	c.queue = NewSuggestionQueue(c.questions)
	c.log = NewConversationLog(c.queue.Snapshot())
}

// Submit records text as a user turn and schedules the reply. Blank text and
// submissions to a closed widget are ignored and report false.
func (c *Controller) Submit(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open || strings.TrimSpace(text) == "" {
		return false
	}

	c.log.DropSuggestions()
	c.log.Append(UserTurn(text))
	c.queue.Consume(text)

	if c.delay <= 0 {
		c.inline = true
		c.notify()
		c.inline = false
		c.completeLocked(text)
		return true
	}

	c.nextID++
	id, gen := c.nextID, c.generation
	c.pending[id] = c.scheduler.AfterFunc(c.delay, func() {
		c.complete(id, gen, text)
	})
	c.notify()
	return true
}

func (c *Controller) complete(id, gen uint64, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || !c.open {
		return
	}
	if _, ok := c.pending[id]; !ok {
		return
	}
	delete(c.pending, id)
	c.completeLocked(text)
}

func (c *Controller) completeLocked(text string) {
	rule := c.classifier.Match(text)
	c.log.Append(AssistantTurn(c.classifier.Classify(text)))
	if !c.queue.IsEmpty() {
		c.log.ReplaceSuggestions(SuggestionTurn(SuggestionPrompt, c.queue.Snapshot()))
	}
	c.logger.Debug().
		Str("rule", string(rule)).
		Int("suggestions_left", c.queue.Len()).
		Msg("genie reply")
	c.notify()
}

// SetOpen shows or hides the widget. Closing cancels pending replies and
// discards the conversation; reopening starts a new one.
func (c *Controller) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if open == c.open {
		return
	}
	if !open {
		for id, t := range c.pending {
			t.Stop()
			delete(c.pending, id)
		}
		c.generation++
		c.open = false
		c.log = &ConversationLog{}
		c.queue = NewSuggestionQueue(nil)
		c.notify()
		return
	}
	c.open = true
	c.reset()
	c.notify()
}

func (c *Controller) Close() { c.SetOpen(false) }

func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Controller) Log() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.log.Snapshot()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Suggestions returns the canned questions not asked yet.
func (c *Controller) Suggestions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Snapshot()
}

func (c *Controller) Snapshot() Update {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateLocked()
}

func (c *Controller) stateLocked() State {
	if c.inline || len(c.pending) > 0 {
		return StateAwaitingReply
	}
	return StateIdle
}

func (c *Controller) updateLocked() Update {
	return Update{
		Log:      c.log.Snapshot(),
		ScrollTo: c.log.Len() - 1,
		State:    c.stateLocked(),
		Open:     c.open,
		Pending:  len(c.pending),
	}
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange(c.updateLocked())
	}
}
