package models

type CallReason struct {
	Topic           string `json:"topic" yaml:"topic" validate:"required"`
	Count           int    `json:"count" yaml:"count" validate:"gte=0"`
	PercentageLabel string `json:"percentage_label" yaml:"percentage_label" validate:"required"`
}

type LocationMetric struct {
	Name         string `json:"name" yaml:"name" validate:"required"`
	Calls        int    `json:"calls" yaml:"calls" validate:"gte=0"`
	MissedCalls  int    `json:"missed_calls" yaml:"missed_calls" validate:"gte=0"`
	SalesCalls   int    `json:"sales_calls" yaml:"sales_calls" validate:"gte=0"`
	ServiceCalls int    `json:"service_calls" yaml:"service_calls" validate:"gte=0"`
	OtherCalls   int    `json:"other_calls" yaml:"other_calls" validate:"gte=0"`
}

type FrequentCaller struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Reason string `json:"reason" yaml:"reason"`
	Calls  int    `json:"calls" yaml:"calls" validate:"gte=0"`
}

type BrandMention struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Mentions int    `json:"mentions" yaml:"mentions" validate:"gte=0"`
}

// Location is one row of the dashboard locations table.
type Location struct {
	Slug             string  `json:"slug" yaml:"slug" validate:"required"`
	Name             string  `json:"name" yaml:"name" validate:"required"`
	GoogleRating     string  `json:"google_rating" yaml:"google_rating"`
	AverageCallScore float64 `json:"average_call_score" yaml:"average_call_score" validate:"gte=0,lte=5"`
	InboundCalls     int     `json:"inbound_calls" yaml:"inbound_calls" validate:"gte=0"`
	MissedCalls      int     `json:"missed_calls" yaml:"missed_calls" validate:"gte=0"`
	SalesCalls       int     `json:"sales_calls" yaml:"sales_calls" validate:"gte=0"`
	ServiceCalls     int     `json:"service_calls" yaml:"service_calls" validate:"gte=0"`
	OtherCalls       int     `json:"other_calls" yaml:"other_calls" validate:"gte=0"`
}

type TrendingTopic struct {
	Name         string `json:"name" yaml:"name" validate:"required"`
	Count        int    `json:"count" yaml:"count" validate:"gte=0"`
	TrendPercent int    `json:"trend_percent" yaml:"trend_percent"`
}
