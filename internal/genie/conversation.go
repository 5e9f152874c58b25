package genie

type TurnKind string

const (
	TurnUser        TurnKind = "user"
	TurnAssistant   TurnKind = "assistant"
	TurnSuggestions TurnKind = "suggestions"
)

const (
	Greeting         = "Hi! I'm Genie, your HVAC service insights assistant. How can I help you analyze your data today?"
	SuggestionPrompt = "Try asking:"
)

// Turn is one entry of a transcript. User and assistant turns carry Text;
// suggestion turns carry Prompt and Options.
type Turn struct {
	Kind    TurnKind `json:"type"`
	Text    string   `json:"content,omitempty"`
	Prompt  string   `json:"prompt,omitempty"`
	Options []string `json:"suggestions,omitempty"`
}

func UserTurn(text string) Turn { return Turn{Kind: TurnUser, Text: text} }

func AssistantTurn(text string) Turn { return Turn{Kind: TurnAssistant, Text: text} }

func SuggestionTurn(prompt string, options []string) Turn {
	opts := make([]string, len(options))
	copy(opts, options)
	return Turn{Kind: TurnSuggestions, Prompt: prompt, Options: opts}
}

// ConversationLog is the ordered transcript a widget renders. User and
// assistant turns are append-only; at most one suggestion turn exists and,
// when present, it is the tail.
type ConversationLog struct {
	turns []Turn
}

// NewConversationLog seeds a log with the greeting and the given suggestions.
func NewConversationLog(suggestions []string) *ConversationLog {
	l := &ConversationLog{}
	l.Append(AssistantTurn(Greeting))
	if len(suggestions) > 0 {
		l.ReplaceSuggestions(SuggestionTurn(SuggestionPrompt, suggestions))
	}
	return l
}

// Append adds a user or assistant turn. Suggestion turns go through
// ReplaceSuggestions; an existing one is moved behind the new turn.
func (l *ConversationLog) Append(t Turn) {
	if t.Kind == TurnSuggestions {
		l.ReplaceSuggestions(t)
		return
	}
	active, ok := l.takeSuggestions()
	l.turns = append(l.turns, t)
	if ok {
		l.turns = append(l.turns, active)
	}
}

func (l *ConversationLog) ReplaceSuggestions(t Turn) {
	l.DropSuggestions()
	l.turns = append(l.turns, t)
}

func (l *ConversationLog) DropSuggestions() {
	l.takeSuggestions()
}

func (l *ConversationLog) takeSuggestions() (Turn, bool) {
	for i, t := range l.turns {
		if t.Kind == TurnSuggestions {
			l.turns = append(l.turns[:i:i], l.turns[i+1:]...)
			return t, true
		}
	}
	return Turn{}, false
}

func (l *ConversationLog) Len() int { return len(l.turns) }

func (l *ConversationLog) Tail() (Turn, bool) {
	if len(l.turns) == 0 {
		return Turn{}, false
	}
	return l.turns[len(l.turns)-1], true
}

// Snapshot returns a deep copy safe to hand to renderers.
func (l *ConversationLog) Snapshot() []Turn {
	out := make([]Turn, len(l.turns))
	for i, t := range l.turns {
		if t.Options != nil {
			t.Options = append([]string(nil), t.Options...)
		}
		out[i] = t
	}
	return out
}
