package handler

import (
	"errors"
	"net/http"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/distribution"
	"github.com/Mukeshpandey0286/agent-management-backend/pkg/utils"
)

// GetOverviewStats returns the global rollup
// @Summary Global statistics
// @Description Totals across every distributed list plus the number of distinct batches still present.
// @Tags stats
// @Produce json
// @Success 200 {object} model.GlobalStats
// @Router /stats/overview [get]
func GetOverviewStats(w http.ResponseWriter, r *http.Request) {
	stats, err := distribution.GetGlobalStats()
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}

// GetBatchStats returns the rollup for one batch
// @Summary Batch statistics
// @Tags stats
// @Produce json
// @Param id path string true "Batch ID"
// @Success 200 {object} model.BatchStats
// @Failure 404 {object} map[string]interface{} "Batch not found"
// @Router /stats/batches/{id} [get]
func GetBatchStats(w http.ResponseWriter, r *http.Request) {
	batchID := utils.PathSegment(r.URL.Path, 4)

	stats, err := distribution.GetBatchStats(batchID)
	if errors.Is(err, distribution.ErrBatchNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Batch not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}

// GetAgentStats returns the rollup for one agent
// @Summary Agent statistics
// @Tags stats
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} model.AgentStats
// @Router /stats/agents/{id} [get]
func GetAgentStats(w http.ResponseWriter, r *http.Request) {
	agentID := utils.PathSegment(r.URL.Path, 4)

	stats, err := distribution.GetAgentStats(agentID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}
