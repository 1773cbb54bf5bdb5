package config

import (
	"net/http"

	"github.com/officefund/expense-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, redisUrl string) {
	routes.AuthRoutes(server, db)
	routes.ExpenseRoutes(server, db)
	routes.FundRoutes(server, db)
	routes.AdminRoutes(server, db, redisUrl)
}
