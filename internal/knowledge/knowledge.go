package knowledge

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hvacinsights/genie-dashboard/internal/models"
)

var ErrInvalid = errors.New("invalid knowledge base")

// Data is the raw shape of a knowledge base, as declared in code or loaded from YAML.
type Data struct {
	CallReasons     []models.CallReason     `yaml:"call_reasons" validate:"dive"`
	LocationMetrics []models.LocationMetric `yaml:"location_metrics" validate:"dive"`
	Callers         []models.FrequentCaller `yaml:"callers" validate:"dive"`
	Brands          []models.BrandMention   `yaml:"brands" validate:"dive"`
	Locations       []models.Location       `yaml:"locations" validate:"dive"`
	TrendingTopics  []models.TrendingTopic  `yaml:"trending_topics" validate:"dive"`
}

// KnowledgeBase is the read-only reference dataset behind the dashboard and
// the chat assistant. It is built once and shared by pointer; every accessor
// returns a copy so callers cannot mutate it.
type KnowledgeBase struct {
	data Data
}

func New(d Data) (*KnowledgeBase, error) {
	if err := validator.New().Struct(d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	seen := map[string]bool{}
	for _, l := range d.Locations {
		if seen[l.Slug] {
			return nil, fmt.Errorf("%w: duplicate location slug %q", ErrInvalid, l.Slug)
		}
		seen[l.Slug] = true
	}
	return &KnowledgeBase{data: Data{
		CallReasons:     clone(d.CallReasons),
		LocationMetrics: clone(d.LocationMetrics),
		Callers:         clone(d.Callers),
		Brands:          clone(d.Brands),
		Locations:       clone(d.Locations),
		TrendingTopics:  clone(d.TrendingTopics),
	}}, nil
}

func (kb *KnowledgeBase) CallReasons() []models.CallReason { return clone(kb.data.CallReasons) }

func (kb *KnowledgeBase) LocationMetrics() []models.LocationMetric {
	return clone(kb.data.LocationMetrics)
}

func (kb *KnowledgeBase) Callers() []models.FrequentCaller { return clone(kb.data.Callers) }

func (kb *KnowledgeBase) Brands() []models.BrandMention { return clone(kb.data.Brands) }

func (kb *KnowledgeBase) Locations() []models.Location { return clone(kb.data.Locations) }

func (kb *KnowledgeBase) TrendingTopics() []models.TrendingTopic {
	return clone(kb.data.TrendingTopics)
}

// TopBrand returns the brand with the most mentions. Ties keep the earlier entry.
func (kb *KnowledgeBase) TopBrand() (models.BrandMention, bool) {
	if len(kb.data.Brands) == 0 {
		return models.BrandMention{}, false
	}
	top := kb.data.Brands[0]
	for _, b := range kb.data.Brands[1:] {
		if b.Mentions > top.Mentions {
			top = b
		}
	}
	return top, true
}

// CallersAbove returns callers with strictly more than minCalls calls, in dataset order.
func (kb *KnowledgeBase) CallersAbove(minCalls int) []models.FrequentCaller {
	out := []models.FrequentCaller{}
	for _, c := range kb.data.Callers {
		if c.Calls > minCalls {
			out = append(out, c)
		}
	}
	return out
}

func clone[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
