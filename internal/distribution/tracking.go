package distribution

import (
	"errors"
	"fmt"
	"time"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/model"
	"github.com/Mukeshpandey0286/agent-management-backend/internal/store"
)

// StatusUpdate is one item mutation: a target status plus optional field
// overrides. A nil Notes leaves the item's notes untouched.
type StatusUpdate struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

// UpdateItemStatus applies a status update to one item of one list. The
// load-mutate-save cycle runs under the list's lock so two concurrent
// updates on the same list cannot drop a counter recomputation. Returns the
// list's completion percentage after the update.
//
// Re-applying the current status is a no-op: timestamps are stamped only on
// the first entry into contacted/completed and the counters come out of a
// full recount, so nothing drifts.
func UpdateItemStatus(listID, itemID string, update StatusUpdate) (int, error) {
	if !model.ValidStatus(update.Status) {
		return 0, fmt.Errorf("unknown status %q", update.Status)
	}

	percentage := 0
	err := store.WithListLock(listID, func() error {
		list, err := store.GetList(listID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrListNotFound
		}
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := applyStatusUpdate(list, itemID, update, now); err != nil {
			return err
		}

		list.RecountItems()
		list.UpdatedAt = now
		if err := store.SaveList(list); err != nil {
			return err
		}
		percentage = list.CompletionPercentage()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return percentage, nil
}

// applyStatusUpdate mutates the targeted item in place. Transitions are
// unrestricted, including regressions like completed -> pending; the
// first-entry timestamps survive any later regression.
func applyStatusUpdate(list *model.DistributedList, itemID string, update StatusUpdate, now time.Time) error {
	for i := range list.Items {
		item := &list.Items[i]
		if item.ID != itemID {
			continue
		}

		item.Status = update.Status
		switch update.Status {
		case model.StatusContacted:
			if item.ContactedAt == nil {
				item.ContactedAt = &now
			}
		case model.StatusCompleted:
			if item.CompletedAt == nil {
				item.CompletedAt = &now
			}
		}
		if update.Notes != nil {
			item.Notes = *update.Notes
		}
		return nil
	}
	return ErrItemNotFound
}
