package domain

import "context"

// Stats is the admin dashboard snapshot, computed in memory from the raw
// rows of both tables. Field names match the legacy frontend contract.
type Stats struct {
	TotalMessages int `json:"totalMessages"`
	NewMessages   int `json:"newMessages"`
	ReadMessages  int `json:"readMessages"`
	TotalContacts int `json:"totalContacts"`
	TodayMessages int `json:"todayMessages"`
	TodayContacts int `json:"todayContacts"`
}

type StatsUsecase interface {
	Compute(ctx context.Context) (*Stats, error)
}
