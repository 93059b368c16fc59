package distribution

import (
	"errors"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/model"
	"github.com/Mukeshpandey0286/agent-management-backend/internal/store"
)

// GetBatchStats sums the cached counters of every list in one batch. The
// overall status is derived from the sums: completed when everything is
// done, in_progress as soon as any item completed, pending otherwise.
func GetBatchStats(batchID string) (model.BatchStats, error) {
	rollup, agents, err := store.BatchRollup(batchID)
	if errors.Is(err, store.ErrNotFound) {
		return model.BatchStats{}, ErrBatchNotFound
	}
	if err != nil {
		return model.BatchStats{}, err
	}

	return model.BatchStats{
		BatchID:        batchID,
		TotalItems:     rollup.TotalItems,
		CompletedItems: rollup.CompletedItems,
		PendingItems:   rollup.PendingItems,
		Lists:          rollup.Lists,
		Agents:         agents,
		Status:         batchStatus(rollup.CompletedItems, rollup.TotalItems),
	}, nil
}

// GetAgentStats sums the cached counters of every list one agent owns. An
// agent with no lists reports zeroes.
func GetAgentStats(agentID string) (model.AgentStats, error) {
	rollup, err := store.AgentRollup(agentID)
	if err != nil {
		return model.AgentStats{}, err
	}

	return model.AgentStats{
		AgentID:        agentID,
		Lists:          rollup.Lists,
		TotalItems:     rollup.TotalItems,
		CompletedItems: rollup.CompletedItems,
		PendingItems:   rollup.PendingItems,
		CompletionRate: model.Percentage(rollup.CompletedItems, rollup.TotalItems),
	}, nil
}

// GetGlobalStats sums the cached counters of every persisted list and
// counts the distinct batch ids as active distributions.
func GetGlobalStats() (model.GlobalStats, error) {
	rollup, batches, err := store.GlobalRollup()
	if err != nil {
		return model.GlobalStats{}, err
	}

	return model.GlobalStats{
		Lists:               rollup.Lists,
		ActiveDistributions: batches,
		TotalItems:          rollup.TotalItems,
		CompletedItems:      rollup.CompletedItems,
		PendingItems:        rollup.PendingItems,
		CompletionRate:      model.Percentage(rollup.CompletedItems, rollup.TotalItems),
	}, nil
}

func batchStatus(completed, total int) string {
	switch {
	case total > 0 && completed == total:
		return model.BatchCompleted
	case completed > 0:
		return model.BatchInProgress
	default:
		return model.BatchPending
	}
}
