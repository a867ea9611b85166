package main

import (
	"context"
	"fmt"
	"log"

	"ecoloop/config"
	"ecoloop/database"
	"ecoloop/routes"
	"ecoloop/services"
)

func main() {
	config.Load()

	database.Connect(config.C.DB.Path)
	database.MigrateTables()

	services.InitVerifier(context.Background(), config.C.AI.APIKey, config.C.AI.Model)

	r := routes.SetupRouter()

	addr := fmt.Sprintf(":%d", config.C.App.Port)
	log.Println("Starting server on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
