package dto

import "woz/internal/domain"

type StatsResponse struct {
	Aggregate        int                  `json:"aggregate"`
	AggregateLabel   string               `json:"aggregateLabel"`
	Target           int                  `json:"target"`
	Trend            domain.Trend         `json:"trend"`
	Regions          []domain.RegionCount `json:"regions"`
	ConnectedClients int                  `json:"connectedClients"`
}

type ProvidersResponse struct {
	Providers []string `json:"providers"`
}
