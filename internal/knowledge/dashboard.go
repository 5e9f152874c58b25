package knowledge

import (
	"github.com/hvacinsights/genie-dashboard/internal/models"
)

const (
	LowCallScoreThreshold    = 4.3
	HighMissedCallsThreshold = 5
)

type LocationRow struct {
	models.Location
	LowCallScore    bool `json:"low_call_score"`
	HighMissedCalls bool `json:"high_missed_calls"`
}

func (kb *KnowledgeBase) LocationRows() []LocationRow {
	rows := make([]LocationRow, 0, len(kb.data.Locations))
	for _, l := range kb.data.Locations {
		rows = append(rows, toRow(l))
	}
	return rows
}

func (kb *KnowledgeBase) LocationBySlug(slug string) (LocationRow, bool) {
	for _, l := range kb.data.Locations {
		if l.Slug == slug {
			return toRow(l), true
		}
	}
	return LocationRow{}, false
}

func toRow(l models.Location) LocationRow {
	return LocationRow{
		Location:        l,
		LowCallScore:    l.AverageCallScore <= LowCallScoreThreshold,
		HighMissedCalls: l.MissedCalls >= HighMissedCallsThreshold,
	}
}

type TopicBar struct {
	models.TrendingTopic
	BarRatio float64 `json:"bar_ratio"`
}

type TrendingSummary struct {
	Topics         []TopicBar `json:"topics"`
	MostDiscussed  string     `json:"most_discussed"`
	FastestGrowing string     `json:"fastest_growing"`
}

// Trending scales every topic against the busiest one and picks the
// most-discussed and fastest-growing names. Ties keep the earlier topic.
func (kb *KnowledgeBase) Trending() TrendingSummary {
	topics := kb.data.TrendingTopics
	out := TrendingSummary{Topics: make([]TopicBar, 0, len(topics))}
	if len(topics) == 0 {
		return out
	}

	maxCount := topics[0].Count
	mostDiscussed, fastest := topics[0], topics[0]
	for _, t := range topics[1:] {
		if t.Count > maxCount {
			maxCount = t.Count
		}
		if t.Count > mostDiscussed.Count {
			mostDiscussed = t
		}
		if t.TrendPercent > fastest.TrendPercent {
			fastest = t
		}
	}

	for _, t := range topics {
		ratio := 0.0
		if maxCount > 0 {
			ratio = float64(t.Count) / float64(maxCount)
		}
		out.Topics = append(out.Topics, TopicBar{TrendingTopic: t, BarRatio: ratio})
	}
	out.MostDiscussed = mostDiscussed.Name
	out.FastestGrowing = fastest.Name
	return out
}
