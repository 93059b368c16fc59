package model

import "math"

// Batch status values derived from summed counters.
const (
	BatchPending    = "pending"
	BatchInProgress = "in_progress"
	BatchCompleted  = "completed"
)

// CounterRollup is a sum of list counters over some grouping (one batch,
// one agent, or everything).
type CounterRollup struct {
	Lists          int `json:"lists"`
	TotalItems     int `json:"totalItems"`
	CompletedItems int `json:"completedItems"`
	PendingItems   int `json:"pendingItems"`
}

// BatchStats aggregates every list sharing a batch id.
type BatchStats struct {
	BatchID        string `json:"batchId"`
	TotalItems     int    `json:"totalItems"`
	CompletedItems int    `json:"completedItems"`
	PendingItems   int    `json:"pendingItems"`
	Lists          int    `json:"lists"`
	Agents         int    `json:"agents"`
	Status         string `json:"status"`
}

// AgentStats aggregates every list owned by one agent.
type AgentStats struct {
	AgentID        string `json:"agentId"`
	Lists          int    `json:"lists"`
	TotalItems     int    `json:"totalItems"`
	CompletedItems int    `json:"completedItems"`
	PendingItems   int    `json:"pendingItems"`
	CompletionRate int    `json:"completionRate"`
}

// GlobalStats aggregates every persisted list.
type GlobalStats struct {
	Lists               int `json:"lists"`
	ActiveDistributions int `json:"activeDistributions"`
	TotalItems          int `json:"totalItems"`
	CompletedItems      int `json:"completedItems"`
	PendingItems        int `json:"pendingItems"`
	CompletionRate      int `json:"completionRate"`
}

// Percentage returns round(part/total*100), 0 when total is 0.
func Percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
