package main

import (
	"community-events-api/core/logger"
	"community-events-api/core/server"
)

// @title Community Events API
// @version 1.0
// @description Event lifecycle, volunteer registration and engagement engine

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
