package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/model"
	"github.com/Mukeshpandey0286/agent-management-backend/internal/store"
	"github.com/Mukeshpandey0286/agent-management-backend/pkg/utils"
)

// agentPayload is the request body for creating or updating an agent.
type agentPayload struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Active *bool  `json:"active"`
}

func (p *agentPayload) validate() string {
	if strings.TrimSpace(p.Name) == "" {
		return "name is required"
	}
	email := strings.TrimSpace(p.Email)
	if email == "" || !strings.Contains(email, "@") {
		return "a valid email is required"
	}
	return ""
}

// CreateAgent registers a new agent
// @Summary Create agent
// @Description Register a new agent. New agents are active by default and start receiving shares on the next upload.
// @Tags agents
// @Accept json
// @Produce json
// @Param agent body agentPayload true "Agent details"
// @Success 201 {object} model.Agent
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Router /agents [post]
func CreateAgent(w http.ResponseWriter, r *http.Request) {
	var payload agentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if msg := payload.validate(); msg != "" {
		utils.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	agent := model.Agent{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(payload.Name),
		Email:     strings.ToLower(strings.TrimSpace(payload.Email)),
		Phone:     strings.TrimSpace(payload.Phone),
		Active:    active,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.SaveAgent(agent); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to save agent")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, agent)
}

// ListAgents returns every agent
// @Summary List agents
// @Tags agents
// @Produce json
// @Success 200 {object} map[string]interface{} "Agents with count"
// @Router /agents [get]
func ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := store.ListAgents()
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch agents")
		return
	}
	if agents == nil {
		agents = []model.Agent{}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"agents": agents,
		"count":  len(agents),
	})
}

// GetAgent returns one agent by id
// @Summary Get agent
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} model.Agent
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Router /agents/{id} [get]
func GetAgent(w http.ResponseWriter, r *http.Request) {
	agentID := utils.PathSegment(r.URL.Path, 3)

	agent, err := store.GetAgent(agentID)
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Agent not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch agent")
		return
	}

	utils.WriteJSON(w, http.StatusOK, agent)
}

// UpdateAgent updates an agent's details or active flag
// @Summary Update agent
// @Description Update name, email, phone or the active flag. Deactivated agents keep their lists but receive no new shares.
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param agent body agentPayload true "Agent details"
// @Success 200 {object} model.Agent
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Router /agents/{id} [put]
func UpdateAgent(w http.ResponseWriter, r *http.Request) {
	agentID := utils.PathSegment(r.URL.Path, 3)

	agent, err := store.GetAgent(agentID)
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Agent not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch agent")
		return
	}

	var payload agentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if strings.TrimSpace(payload.Name) != "" {
		agent.Name = strings.TrimSpace(payload.Name)
	}
	if strings.TrimSpace(payload.Email) != "" {
		if !strings.Contains(payload.Email, "@") {
			utils.WriteError(w, http.StatusBadRequest, "a valid email is required")
			return
		}
		agent.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	}
	if strings.TrimSpace(payload.Phone) != "" {
		agent.Phone = strings.TrimSpace(payload.Phone)
	}
	if payload.Active != nil {
		agent.Active = *payload.Active
	}

	if err := store.UpdateAgent(agent); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update agent")
		return
	}

	utils.WriteJSON(w, http.StatusOK, agent)
}

// DeleteAgent removes an agent record
// @Summary Delete agent
// @Description Delete an agent. Lists already distributed to the agent are kept and stay queryable.
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Router /agents/{id} [delete]
func DeleteAgent(w http.ResponseWriter, r *http.Request) {
	agentID := utils.PathSegment(r.URL.Path, 3)

	if err := store.DeleteAgent(agentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Agent not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete agent")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Agent deleted",
		"agentId": agentID,
	})
}
