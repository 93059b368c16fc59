package distribution

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/model"
	"github.com/Mukeshpandey0286/agent-management-backend/internal/store"
)

// BatchMetadata describes one upload: the raw header columns for the schema
// precondition, plus bookkeeping carried onto every created list.
type BatchMetadata struct {
	Columns    []string
	FileName   string
	UploadedBy string
}

// IngestResult is the summary returned to the caller after a successful
// distribution. CounterWarnings carries agent-counter updates that failed
// after the paired list write succeeded; those need manual reconciliation
// but do not fail the ingest.
type IngestResult struct {
	BatchID         string              `json:"batchId"`
	TotalItems      int                 `json:"totalItems"`
	Lists           []model.ListSummary `json:"lists"`
	CounterWarnings []string            `json:"counterWarnings,omitempty"`
}

// Ingest runs the whole pipeline for one upload: schema check, row
// validation, fair-share allocation, then one persisted list per non-empty
// share. Validation is all-or-nothing — a single bad row fails the call
// before anything is written. Agents must arrive in the stable distribution
// order (ascending creation time, ties by id).
func Ingest(rows []RawRow, agents []model.Agent, meta BatchMetadata) (*IngestResult, error) {
	if err := CheckHeader(meta.Columns); err != nil {
		return nil, err
	}

	contacts, err := ValidateRows(rows)
	if err != nil {
		return nil, err
	}

	shares, err := Allocate(contacts, len(agents))
	if err != nil {
		return nil, err
	}

	batchID := uuid.New().String()
	now := time.Now().UTC()
	result := &IngestResult{BatchID: batchID, TotalItems: len(contacts)}

	created := 0
	for i, share := range shares {
		if len(share) == 0 {
			continue
		}
		agent := agents[i]

		items := make([]model.ContactItem, len(share))
		for j, c := range share {
			items[j] = model.ContactItem{
				ID:        uuid.New().String(),
				FirstName: c.FirstName,
				Phone:     c.Phone,
				Notes:     c.Notes,
				Status:    model.StatusPending,
			}
		}

		list := &model.DistributedList{
			ID:         uuid.New().String(),
			BatchID:    batchID,
			AgentID:    agent.ID,
			FileName:   meta.FileName,
			UploadedBy: meta.UploadedBy,
			Items:      items,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		list.RecountItems()

		if err := store.SaveList(list); err != nil {
			// Lists already written stay queryable under the batch id, so
			// the partial batch can be found and cleaned up.
			return nil, fmt.Errorf("batch %s partially persisted (%d of %d lists written): %w",
				batchID, created, nonEmptyShares(shares), err)
		}
		created++

		if err := store.IncrementAgentAssignment(agent.ID, len(items)); err != nil {
			warn := &CounterSyncError{AgentID: agent.ID, ListID: list.ID, Err: err}
			log.Printf("⚠️ %v", warn)
			result.CounterWarnings = append(result.CounterWarnings, warn.Error())
		}

		result.Lists = append(result.Lists, model.ListSummary{
			ListID:    list.ID,
			AgentID:   agent.ID,
			AgentName: agent.Name,
			ItemCount: len(items),
		})
	}

	log.Printf("📦 Batch %s distributed: %d contacts across %d agents", batchID, len(contacts), created)
	return result, nil
}

// DeleteResult reports what a list deletion removed.
type DeleteResult struct {
	ListID         string `json:"listId"`
	AgentID        string `json:"agentId"`
	RemovedItems   int    `json:"removedItems"`
	CounterWarning string `json:"counterWarning,omitempty"`
}

// DeleteList removes one list and gives the owning agent its counters back:
// one list and the removed item count, floored at zero in the store. A
// failed decrement after a successful delete is reported, not rolled back.
//
// The get-delete-decrement cycle holds the list's lock so a status update
// that loaded the list earlier cannot resurrect it through the upsert after
// the counters were already returned.
func DeleteList(listID string) (*DeleteResult, error) {
	var result *DeleteResult
	err := store.WithListLock(listID, func() error {
		list, err := store.GetList(listID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrListNotFound
		}
		if err != nil {
			return err
		}

		if err := store.DeleteList(listID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrListNotFound
			}
			return err
		}

		result = &DeleteResult{ListID: listID, AgentID: list.AgentID, RemovedItems: list.TotalItems}
		if err := store.DecrementAgentAssignment(list.AgentID, list.TotalItems); err != nil {
			warn := &CounterSyncError{AgentID: list.AgentID, ListID: listID, Err: err}
			log.Printf("⚠️ %v", warn)
			result.CounterWarning = warn.Error()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func nonEmptyShares(shares [][]model.Contact) int {
	n := 0
	for _, s := range shares {
		if len(s) > 0 {
			n++
		}
	}
	return n
}
