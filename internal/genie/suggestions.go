package genie

// DefaultQuestions are the canned questions offered when a conversation starts.
var DefaultQuestions = []string{
	"What were the most frequent reasons we received calls over the past week?",
	"What brands are customers calling most about for service?",
	"Give me a list of people who have called more than 2 times in the past month.",
}

// SuggestionQueue tracks canned questions that have not been asked yet.
// Entries only ever leave the queue.
type SuggestionQueue struct {
	remaining []string
}

// NewSuggestionQueue copies questions, keeping the first of any duplicates.
func NewSuggestionQueue(questions []string) *SuggestionQueue {
	seen := make(map[string]bool, len(questions))
	remaining := make([]string, 0, len(questions))
	for _, q := range questions {
		if seen[q] {
			continue
		}
		seen[q] = true
		remaining = append(remaining, q)
	}
	return &SuggestionQueue{remaining: remaining}
}

// Consume drops text from the queue if it is present verbatim.
func (s *SuggestionQueue) Consume(text string) bool {
	for i, q := range s.remaining {
		if q == text {
			s.remaining = append(s.remaining[:i:i], s.remaining[i+1:]...)
			return true
		}
	}
	return false
}

func (s *SuggestionQueue) Snapshot() []string {
	out := make([]string, len(s.remaining))
	copy(out, s.remaining)
	return out
}

func (s *SuggestionQueue) IsEmpty() bool { return len(s.remaining) == 0 }

func (s *SuggestionQueue) Len() int { return len(s.remaining) }
