package main

import (
	_ "github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/docs"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           MS-PRO API
// @version         1.0
// @description     Leads and coating cost calculations for the MS-PRO website.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  info@ms-pro.ru

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
