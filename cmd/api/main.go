package main

import (
	"log"

	_ "portal_servicos/docs"
	"portal_servicos/internal/adapter/http/routes"
	"portal_servicos/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Service Request Portal API
// @version         1.0
// @description     Service request lifecycle (workflow, PIX payments, attachments, chat) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-ID
// @description Caller id set by the authenticating gateway, together with X-Actor-Role.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
