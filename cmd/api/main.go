package main

import (
	_ "protese_lab/docs"
	"protese_lab/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Lab Protese API
// @version         1.0
// @description     Dental-prosthetics lab management (service orders, expenses, registries) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.basic BasicAuth

func main() {
	routes.Run()
}
