package store

import (
	"database/sql"
	"errors"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/model"
)

// SaveAgent inserts a new agent.
func SaveAgent(a model.Agent) error {
	_, err := db.Exec(`INSERT INTO agents (id, name, email, phone, active, assigned_lists_count, total_items_assigned, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Email, a.Phone, a.Active, a.AssignedListsCount, a.TotalItemsAssigned, a.CreatedAt.UTC())
	return err
}

// UpdateAgent overwrites the mutable agent fields (name, email, phone,
// active flag). Assignment counters are only touched through the
// increment/decrement helpers.
func UpdateAgent(a model.Agent) error {
	res, err := db.Exec(`UPDATE agents SET name = ?, email = ?, phone = ?, active = ? WHERE id = ?`,
		a.Name, a.Email, a.Phone, a.Active, a.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// GetAgent fetches one agent by id.
func GetAgent(id string) (model.Agent, error) {
	row := db.QueryRow(`SELECT id, name, email, phone, active, assigned_lists_count, total_items_assigned, created_at
		FROM agents WHERE id = ?`, id)
	return scanAgent(row)
}

// ListAgents returns every agent, oldest first.
func ListAgents() ([]model.Agent, error) {
	return queryAgents(`SELECT id, name, email, phone, active, assigned_lists_count, total_items_assigned, created_at
		FROM agents ORDER BY created_at, id`)
}

// ListActiveAgents returns active agents in the distribution ordering:
// ascending creation time, ties broken by id. Allocation depends on this
// order being stable, so it is part of the contract, not an accident of
// iteration order.
func ListActiveAgents() ([]model.Agent, error) {
	return queryAgents(`SELECT id, name, email, phone, active, assigned_lists_count, total_items_assigned, created_at
		FROM agents WHERE active = 1 ORDER BY created_at, id`)
}

// DeleteAgent removes an agent record.
func DeleteAgent(id string) error {
	res, err := db.Exec(`DELETE FROM agents WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// IncrementAgentAssignment bumps the agent's counters after a list was
// created for it: one more list, itemCount more items.
func IncrementAgentAssignment(agentID string, itemCount int) error {
	res, err := db.Exec(`UPDATE agents
		SET assigned_lists_count = assigned_lists_count + 1,
		    total_items_assigned = total_items_assigned + ?
		WHERE id = ?`, itemCount, agentID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DecrementAgentAssignment reverses one list assignment. Both counters
// floor at zero so a redundant decrement cannot drive them negative.
func DecrementAgentAssignment(agentID string, itemCount int) error {
	res, err := db.Exec(`UPDATE agents
		SET assigned_lists_count = MAX(assigned_lists_count - 1, 0),
		    total_items_assigned = MAX(total_items_assigned - ?, 0)
		WHERE id = ?`, itemCount, agentID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func queryAgents(query string, args ...interface{}) ([]model.Agent, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []model.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAgent(row rowScanner) (model.Agent, error) {
	var a model.Agent
	var phone sql.NullString
	err := row.Scan(&a.ID, &a.Name, &a.Email, &phone, &a.Active,
		&a.AssignedListsCount, &a.TotalItemsAssigned, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Agent{}, ErrNotFound
	}
	if err != nil {
		return model.Agent{}, err
	}
	a.Phone = phone.String
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
