package main

import (
	"flag"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/api"
	"github.com/Mukeshpandey0286/agent-management-backend/internal/store"
	"github.com/Mukeshpandey0286/agent-management-backend/pkg/router"
)

// @title Agent Management Backend API
// @version 1.0
// @description Contact upload, validation, fair-share distribution across agents, and per-list completion tracking.
// @BasePath /api/v1
func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "agents.db", "sqlite database path")
	flag.Parse()

	// Init DB
	if err := store.InitDB(*dbPath); err != nil {
		panic(err)
	}

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r)

	// Start server
	r.Start(*addr)
}
