package distribution

import "github.com/Mukeshpandey0286/agent-management-backend/internal/model"

// Allocate splits contacts across agentCount shares with sizes differing by
// at most one. Share i gets floor(N/M)+1 items when i < N mod M, floor(N/M)
// otherwise, sliced from the input in order. The caller supplies agents in
// a stable order (ascending creation time, ties broken by id), which makes
// the split fully deterministic.
//
// A share may be empty when there are fewer contacts than agents; empty
// shares never become lists.
func Allocate(contacts []model.Contact, agentCount int) ([][]model.Contact, error) {
	if agentCount <= 0 {
		return nil, ErrNoActiveAgents
	}

	base := len(contacts) / agentCount
	extra := len(contacts) % agentCount

	shares := make([][]model.Contact, agentCount)
	offset := 0
	for i := 0; i < agentCount; i++ {
		size := base
		if i < extra {
			size++
		}
		shares[i] = contacts[offset : offset+size]
		offset += size
	}
	return shares, nil
}
