package model

import "time"

// DistributedList is one agent's share of an uploaded batch. The counter
// fields are a cache of the item slice and are recomputed in full on every
// mutation; RecountItems is the single place that derives them.
type DistributedList struct {
	ID             string        `json:"id"`
	BatchID        string        `json:"batchId"`
	AgentID        string        `json:"agentId"`
	FileName       string        `json:"fileName,omitempty"`
	UploadedBy     string        `json:"uploadedBy,omitempty"`
	Items          []ContactItem `json:"items"`
	TotalItems     int           `json:"totalItems"`
	CompletedItems int           `json:"completedItems"`
	PendingItems   int           `json:"pendingItems"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// RecountItems recomputes the cached counters from the item slice.
func (l *DistributedList) RecountItems() {
	total, completed, pending := 0, 0, 0
	for _, item := range l.Items {
		total++
		switch item.Status {
		case StatusCompleted:
			completed++
		case StatusPending:
			pending++
		}
	}
	l.TotalItems = total
	l.CompletedItems = completed
	l.PendingItems = pending
}

// CompletionPercentage returns round(completed/total*100), 0 for an empty list.
func (l *DistributedList) CompletionPercentage() int {
	return Percentage(l.CompletedItems, l.TotalItems)
}

// ListSummary is the per-agent slice of an ingest response.
type ListSummary struct {
	ListID    string `json:"listId"`
	AgentID   string `json:"agentId"`
	AgentName string `json:"agentName"`
	ItemCount int    `json:"itemCount"`
}
