package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/model"
)

// listLocks serializes load-mutate-save cycles per list id. Two concurrent
// status updates on the same list must not interleave, or one counter
// recomputation would be lost; updates on distinct lists stay concurrent.
var listLocks sync.Map

// WithListLock runs fn while holding the mutex for the given list id.
func WithListLock(listID string, fn func() error) error {
	mu, _ := listLocks.LoadOrStore(listID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	defer m.Unlock()
	return fn()
}

// SaveList writes the whole list, items and counters together, as one row.
func SaveList(l *model.DistributedList) error {
	itemsJSON, err := json.Marshal(l.Items)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO lists (id, batch_id, agent_id, file_name, uploaded_by, items,
			total_items, completed_items, pending_items, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			items = excluded.items,
			total_items = excluded.total_items,
			completed_items = excluded.completed_items,
			pending_items = excluded.pending_items,
			updated_at = excluded.updated_at`,
		l.ID, l.BatchID, l.AgentID, l.FileName, l.UploadedBy, string(itemsJSON),
		l.TotalItems, l.CompletedItems, l.PendingItems, l.CreatedAt.UTC(), l.UpdatedAt.UTC())
	return err
}

// GetList fetches one list with its items.
func GetList(id string) (*model.DistributedList, error) {
	row := db.QueryRow(listSelect+` WHERE id = ?`, id)
	return scanList(row)
}

// ListsByBatch returns every list of one batch, oldest first.
func ListsByBatch(batchID string) ([]*model.DistributedList, error) {
	return queryLists(listSelect+` WHERE batch_id = ? ORDER BY created_at, id`, batchID)
}

// ListsByAgent returns every list owned by one agent, newest first.
func ListsByAgent(agentID string) ([]*model.DistributedList, error) {
	return queryLists(listSelect+` WHERE agent_id = ? ORDER BY created_at DESC, id`, agentID)
}

// AllLists returns every persisted list, newest first.
func AllLists() ([]*model.DistributedList, error) {
	return queryLists(listSelect + ` ORDER BY created_at DESC, id`)
}

// DeleteList removes one list row.
func DeleteList(id string) error {
	res, err := db.Exec(`DELETE FROM lists WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// BatchRollup sums the cached counters over one batch. The rollup never
// touches the items column; the per-list counters are authoritative.
func BatchRollup(batchID string) (model.CounterRollup, int, error) {
	var r model.CounterRollup
	var agents int
	err := db.QueryRow(`SELECT COUNT(*), COUNT(DISTINCT agent_id),
			COALESCE(SUM(total_items), 0), COALESCE(SUM(completed_items), 0), COALESCE(SUM(pending_items), 0)
		FROM lists WHERE batch_id = ?`, batchID).
		Scan(&r.Lists, &agents, &r.TotalItems, &r.CompletedItems, &r.PendingItems)
	if err != nil {
		return model.CounterRollup{}, 0, err
	}
	if r.Lists == 0 {
		return model.CounterRollup{}, 0, ErrNotFound
	}
	return r, agents, nil
}

// AgentRollup sums the cached counters over every list one agent owns. An
// agent with no lists gets a zero rollup, not an error.
func AgentRollup(agentID string) (model.CounterRollup, error) {
	var r model.CounterRollup
	err := db.QueryRow(`SELECT COUNT(*),
			COALESCE(SUM(total_items), 0), COALESCE(SUM(completed_items), 0), COALESCE(SUM(pending_items), 0)
		FROM lists WHERE agent_id = ?`, agentID).
		Scan(&r.Lists, &r.TotalItems, &r.CompletedItems, &r.PendingItems)
	if err != nil {
		return model.CounterRollup{}, err
	}
	return r, nil
}

// GlobalRollup sums the cached counters over every list and counts the
// distinct batch ids still present.
func GlobalRollup() (model.CounterRollup, int, error) {
	var r model.CounterRollup
	var batches int
	err := db.QueryRow(`SELECT COUNT(*), COUNT(DISTINCT batch_id),
			COALESCE(SUM(total_items), 0), COALESCE(SUM(completed_items), 0), COALESCE(SUM(pending_items), 0)
		FROM lists`).
		Scan(&r.Lists, &batches, &r.TotalItems, &r.CompletedItems, &r.PendingItems)
	if err != nil {
		return model.CounterRollup{}, 0, err
	}
	return r, batches, nil
}

const listSelect = `SELECT id, batch_id, agent_id, file_name, uploaded_by, items,
	total_items, completed_items, pending_items, created_at, updated_at FROM lists`

func queryLists(query string, args ...interface{}) ([]*model.DistributedList, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*model.DistributedList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func scanList(row rowScanner) (*model.DistributedList, error) {
	var l model.DistributedList
	var fileName, uploadedBy sql.NullString
	var itemsJSON string
	err := row.Scan(&l.ID, &l.BatchID, &l.AgentID, &fileName, &uploadedBy, &itemsJSON,
		&l.TotalItems, &l.CompletedItems, &l.PendingItems, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(itemsJSON), &l.Items); err != nil {
		return nil, err
	}
	l.FileName = fileName.String
	l.UploadedBy = uploadedBy.String
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return &l, nil
}
