package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Mukeshpandey0286/agent-management-backend/docs"
	"github.com/Mukeshpandey0286/agent-management-backend/internal/api/handler"
	"github.com/Mukeshpandey0286/agent-management-backend/pkg/router"
)

// RegisterRoutes wires every endpoint. More specific wildcard routes come
// first because the router matches in registration order.
func RegisterRoutes(r *router.Router) {
	// Agents
	r.POST("/api/v1/agents", handler.CreateAgent)
	r.GET("/api/v1/agents", handler.ListAgents)
	r.GET("/api/v1/agents/*", handler.GetAgent)
	r.PUT("/api/v1/agents/*", handler.UpdateAgent)
	r.DELETE("/api/v1/agents/*", handler.DeleteAgent)

	// Upload + distribution
	r.POST("/api/v1/uploads", handler.UploadContacts)

	// Lists and item tracking
	r.PATCH("/api/v1/lists/*/items/*", handler.UpdateItemStatus)
	r.GET("/api/v1/lists", handler.ListLists)
	r.GET("/api/v1/lists/*", handler.GetList)
	r.DELETE("/api/v1/lists/*", handler.DeleteList)

	// Statistics
	r.GET("/api/v1/stats/overview", handler.GetOverviewStats)
	r.GET("/api/v1/stats/batches/*", handler.GetBatchStats)
	r.GET("/api/v1/stats/agents/*", handler.GetAgentStats)

	// API docs
	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
