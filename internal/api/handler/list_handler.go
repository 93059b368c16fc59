package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/distribution"
	"github.com/Mukeshpandey0286/agent-management-backend/internal/model"
	"github.com/Mukeshpandey0286/agent-management-backend/internal/store"
	"github.com/Mukeshpandey0286/agent-management-backend/pkg/utils"
)

// ListLists returns distributed lists, optionally filtered by agent or batch
// @Summary List distributed lists
// @Tags lists
// @Produce json
// @Param agentId query string false "Filter by owning agent"
// @Param batchId query string false "Filter by batch"
// @Success 200 {object} map[string]interface{} "Lists with count"
// @Router /lists [get]
func ListLists(w http.ResponseWriter, r *http.Request) {
	var (
		lists []*model.DistributedList
		err   error
	)

	switch {
	case r.URL.Query().Get("agentId") != "":
		lists, err = store.ListsByAgent(r.URL.Query().Get("agentId"))
	case r.URL.Query().Get("batchId") != "":
		lists, err = store.ListsByBatch(r.URL.Query().Get("batchId"))
	default:
		lists, err = store.AllLists()
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch lists")
		return
	}
	if lists == nil {
		lists = []*model.DistributedList{}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"lists": lists,
		"count": len(lists),
	})
}

// GetList returns one list with its items
// @Summary Get list
// @Tags lists
// @Produce json
// @Param id path string true "List ID"
// @Success 200 {object} map[string]interface{} "List with completion percentage"
// @Failure 404 {object} map[string]interface{} "List not found"
// @Router /lists/{id} [get]
func GetList(w http.ResponseWriter, r *http.Request) {
	listID := utils.PathSegment(r.URL.Path, 3)

	list, err := store.GetList(listID)
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "List not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch list")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"list":                 list,
		"completionPercentage": list.CompletionPercentage(),
	})
}

// UpdateItemStatus changes the status of one item inside a list
// @Summary Update item status
// @Description Set an item's status (pending, contacted, completed, failed) and optionally its notes. Timestamps are stamped on the first entry into contacted/completed; re-applying a status is a no-op.
// @Tags lists
// @Accept json
// @Produce json
// @Param id path string true "List ID"
// @Param itemId path string true "Item ID"
// @Param update body distribution.StatusUpdate true "Target status and optional notes"
// @Success 200 {object} map[string]interface{} "Completion percentage after the update"
// @Failure 400 {object} map[string]interface{} "Unknown status"
// @Failure 404 {object} map[string]interface{} "List or item not found"
// @Router /lists/{id}/items/{itemId} [patch]
func UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	listID := utils.PathSegment(r.URL.Path, 3)
	itemID := utils.PathSegment(r.URL.Path, 5)

	var update distribution.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	percentage, err := distribution.UpdateItemStatus(listID, itemID, update)
	if err != nil {
		switch {
		case errors.Is(err, distribution.ErrListNotFound):
			utils.WriteError(w, http.StatusNotFound, "List not found")
		case errors.Is(err, distribution.ErrItemNotFound):
			utils.WriteError(w, http.StatusNotFound, "Item not found in list")
		default:
			utils.WriteError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"listId":               listID,
		"itemId":               itemID,
		"status":               update.Status,
		"completionPercentage": percentage,
	})
}

// DeleteList removes a list and returns its share to the owning agent's counters
// @Summary Delete list
// @Tags lists
// @Produce json
// @Param id path string true "List ID"
// @Success 200 {object} distribution.DeleteResult
// @Failure 404 {object} map[string]interface{} "List not found"
// @Router /lists/{id} [delete]
func DeleteList(w http.ResponseWriter, r *http.Request) {
	listID := utils.PathSegment(r.URL.Path, 3)

	result, err := distribution.DeleteList(listID)
	if err != nil {
		if errors.Is(err, distribution.ErrListNotFound) {
			utils.WriteError(w, http.StatusNotFound, "List not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete list")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
