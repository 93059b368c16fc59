package distribution

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoActiveAgents means an upload arrived while no agent was active.
	ErrNoActiveAgents = errors.New("no active agents available for distribution")

	// ErrEmptyUpload means the file contained no data rows after blank
	// lines were stripped.
	ErrEmptyUpload = errors.New("uploaded file contains no data rows")

	// ErrItemNotFound means a status update referenced an item id that is
	// not part of the targeted list.
	ErrItemNotFound = errors.New("item not found in list")

	// ErrListNotFound means the referenced list does not exist.
	ErrListNotFound = errors.New("list not found")

	// ErrBatchNotFound means no list carries the requested batch id.
	ErrBatchNotFound = errors.New("batch not found")
)

// SchemaError reports required columns missing from the file header. It is
// raised before any row is validated and aborts the whole ingestion.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// RowError is one rejected row. Row numbers are 1-based and count the
// header line, so the first data row is row 2.
type RowError struct {
	RowNumber int    `json:"rowNumber"`
	Reason    string `json:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.RowNumber, e.Reason)
}

// RowValidationError aggregates every rejected row of an upload. If any row
// fails, the whole ingestion fails and nothing is persisted.
type RowValidationError struct {
	Rows []RowError
}

func (e *RowValidationError) Error() string {
	reasons := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		reasons[i] = r.Error()
	}
	return fmt.Sprintf("%d invalid rows: %s", len(e.Rows), strings.Join(reasons, "; "))
}

// CounterSyncError records an agent counter update that failed after its
// paired list write already succeeded. The list is the source of truth, so
// the write is not rolled back; the mismatch is surfaced for reconciliation.
type CounterSyncError struct {
	AgentID string
	ListID  string
	Err     error
}

func (e *CounterSyncError) Error() string {
	return fmt.Sprintf("agent %s counters out of sync with list %s: %v", e.AgentID, e.ListID, e.Err)
}

func (e *CounterSyncError) Unwrap() error { return e.Err }
