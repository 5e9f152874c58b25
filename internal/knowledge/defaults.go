package knowledge

import "github.com/hvacinsights/genie-dashboard/internal/models"

// DefaultData is the dataset shipped with the dashboard.
func DefaultData() Data {
	return Data{
		CallReasons: []models.CallReason{
			{Topic: "Heater Service", Count: 156, PercentageLabel: "35%"},
			{Topic: "Seasonal Promotion", Count: 134, PercentageLabel: "25%"},
			{Topic: "Air Conditioning Maintenance", Count: 89, PercentageLabel: "20%"},
			{Topic: "HVAC Financing", Count: 76, PercentageLabel: "12%"},
			{Topic: "Trane Rebate", Count: 65, PercentageLabel: "8%"},
		},
		LocationMetrics: []models.LocationMetric{
			{Name: "Aire Serv of North Denver", Calls: 41, MissedCalls: 7, SalesCalls: 23, ServiceCalls: 8, OtherCalls: 3},
			{Name: "Aire Serv of the Front Range", Calls: 29, MissedCalls: 0, SalesCalls: 25, ServiceCalls: 4, OtherCalls: 0},
			{Name: "Aire Serv of Fort Collins", Calls: 31, MissedCalls: 1, SalesCalls: 18, ServiceCalls: 11, OtherCalls: 1},
		},
		Callers: []models.FrequentCaller{
			{Name: "Sally Smith", Reason: "Trane system inquiry", Calls: 3},
			{Name: "Jim Jones", Reason: "Service scheduling", Calls: 3},
			{Name: "Sam Smith", Reason: "Service scheduling", Calls: 2},
			{Name: "Mary Berry", Reason: "HVAC features", Calls: 2},
		},
		Brands: []models.BrandMention{
			{Name: "Trane", Mentions: 12},
			{Name: "Other brands", Mentions: 3},
		},
		Locations: []models.Location{
			{
				Slug: "north-denver", Name: "Aire Serv of North Denver", GoogleRating: "-",
				AverageCallScore: 4.2, InboundCalls: 41, MissedCalls: 7, SalesCalls: 23, ServiceCalls: 8, OtherCalls: 3,
			},
			{
				Slug: "front-range", Name: "Aire Serv of the Front Range", GoogleRating: "5.0 (188)",
				AverageCallScore: 4.7, InboundCalls: 29, MissedCalls: 0, SalesCalls: 25, ServiceCalls: 4, OtherCalls: 0,
			},
			{
				Slug: "fort-collins", Name: "Aire Serv of Fort Collins", GoogleRating: "4.7 (424)",
				AverageCallScore: 4.8, InboundCalls: 31, MissedCalls: 1, SalesCalls: 18, ServiceCalls: 11, OtherCalls: 1,
			},
		},
		TrendingTopics: []models.TrendingTopic{
			{Name: "Heater Service", Count: 156, TrendPercent: 12},
			{Name: "Seasonal Promotion", Count: 134, TrendPercent: 8},
			{Name: "Air Conditioning Maintenance", Count: 89, TrendPercent: -5},
			{Name: "HVAC Financing", Count: 76, TrendPercent: 15},
			{Name: "Trane Rebate", Count: 65, TrendPercent: 10},
		},
	}
}

// Default builds the shipped knowledge base. The shipped data is known-valid.
func Default() *KnowledgeBase {
	kb, err := New(DefaultData())
	if err != nil {
		panic(err)
	}
	return kb
}
