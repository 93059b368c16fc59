package store

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/model"
)

func setup(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "store.db")))
	t.Cleanup(func() { CloseDB() })
}

func testAgent(name string, createdAt time.Time) model.Agent {
	return model.Agent{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     name + "@example.com",
		Active:    true,
		CreatedAt: createdAt,
	}
}

func testList(agentID, batchID string, items []model.ContactItem) *model.DistributedList {
	now := time.Now().UTC()
	l := &model.DistributedList{
		ID:        uuid.New().String(),
		BatchID:   batchID,
		AgentID:   agentID,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.RecountItems()
	return l
}

func pendingItems(n int) []model.ContactItem {
	items := make([]model.ContactItem, n)
	for i := range items {
		items[i] = model.ContactItem{
			ID:        uuid.New().String(),
			FirstName: fmt.Sprintf("c%d", i),
			Phone:     "555",
			Status:    model.StatusPending,
		}
	}
	return items
}

func TestAgentRoundTrip(t *testing.T) {
	setup(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	agent := testAgent("alice", base)
	require.NoError(t, SaveAgent(agent))

	got, err := GetAgent(agent.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.Name, got.Name)
	assert.Equal(t, agent.Email, got.Email)
	assert.True(t, got.Active)
	assert.True(t, got.CreatedAt.Equal(base))

	got.Name = "alice b"
	got.Active = false
	require.NoError(t, UpdateAgent(got))

	updated, err := GetAgent(agent.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice b", updated.Name)
	assert.False(t, updated.Active)

	require.NoError(t, DeleteAgent(agent.ID))
	_, err = GetAgent(agent.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, DeleteAgent(agent.ID), ErrNotFound)
	assert.ErrorIs(t, UpdateAgent(agent), ErrNotFound)
}

func TestListActiveAgentsOrdering(t *testing.T) {
	setup(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	third := testAgent("third", base.Add(2*time.Hour))
	first := testAgent("first", base)
	second := testAgent("second", base.Add(time.Hour))
	inactive := testAgent("inactive", base.Add(time.Minute))
	inactive.Active = false

	for _, a := range []model.Agent{third, first, second, inactive} {
		require.NoError(t, SaveAgent(a))
	}

	active, err := ListActiveAgents()
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)
	assert.Equal(t, third.ID, active[2].ID)
}

func TestListRoundTrip(t *testing.T) {
	setup(t)

	list := testList("agent-1", "batch-1", pendingItems(3))
	list.FileName = "contacts.csv"
	require.NoError(t, SaveList(list))

	got, err := GetList(list.ID)
	require.NoError(t, err)
	assert.Equal(t, "batch-1", got.BatchID)
	assert.Equal(t, "contacts.csv", got.FileName)
	assert.Equal(t, 3, got.TotalItems)
	assert.Equal(t, 3, got.PendingItems)
	require.Len(t, got.Items, 3)
	assert.Equal(t, list.Items[0].ID, got.Items[0].ID)

	// Saving again replaces items and counters in place.
	got.Items[0].Status = model.StatusCompleted
	got.RecountItems()
	require.NoError(t, SaveList(got))

	updated, err := GetList(list.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CompletedItems)
	assert.Equal(t, 2, updated.PendingItems)

	_, err = GetList("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRollups(t *testing.T) {
	setup(t)

	// Empty database: global rollup is all zeroes, batch rollup is not found.
	global, batches, err := GlobalRollup()
	require.NoError(t, err)
	assert.Zero(t, global.Lists)
	assert.Zero(t, batches)

	_, _, err = BatchRollup("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	listA := testList("agent-1", "batch-1", pendingItems(4))
	listA.Items[0].Status = model.StatusCompleted
	listA.RecountItems()
	listB := testList("agent-2", "batch-1", pendingItems(3))
	listC := testList("agent-1", "batch-2", pendingItems(2))
	for _, l := range []*model.DistributedList{listA, listB, listC} {
		require.NoError(t, SaveList(l))
	}

	rollup, agents, err := BatchRollup("batch-1")
	require.NoError(t, err)
	assert.Equal(t, 2, rollup.Lists)
	assert.Equal(t, 2, agents)
	assert.Equal(t, 7, rollup.TotalItems)
	assert.Equal(t, 1, rollup.CompletedItems)
	assert.Equal(t, 6, rollup.PendingItems)

	agentRollup, err := AgentRollup("agent-1")
	require.NoError(t, err)
	assert.Equal(t, 2, agentRollup.Lists)
	assert.Equal(t, 6, agentRollup.TotalItems)

	global, batches, err = GlobalRollup()
	require.NoError(t, err)
	assert.Equal(t, 3, global.Lists)
	assert.Equal(t, 2, batches)
	assert.Equal(t, 9, global.TotalItems)
}

func TestWithListLockSerializesUpdates(t *testing.T) {
	setup(t)

	const n = 32
	list := testList("agent-1", "batch-1", pendingItems(n))
	require.NoError(t, SaveList(list))

	// Each goroutine runs a full load-mutate-save cycle on a different item
	// of the same list. Without the lock these cycles would interleave and
	// drop completions; with it every completion must survive.
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			errs <- WithListLock(list.ID, func() error {
				current, err := GetList(list.ID)
				if err != nil {
					return err
				}
				current.Items[idx].Status = model.StatusCompleted
				current.RecountItems()
				return SaveList(current)
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := GetList(list.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got.CompletedItems)
	assert.Zero(t, got.PendingItems)
}
