package model

import "time"

// Agent is a worker that receives distributed lists. The two assignment
// counters are maintained by the distribution layer: incremented when a
// list is created for the agent, decremented (floored at zero) when one of
// its lists is deleted.
type Agent struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	Active             bool      `json:"active"`
	AssignedListsCount int       `json:"assignedListsCount"`
	TotalItemsAssigned int       `json:"totalItemsAssigned"`
	CreatedAt          time.Time `json:"createdAt"`
}
