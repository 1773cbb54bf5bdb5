package routes

import (
	"net/http"

	"github.com/officefund/expense-backend/internal/setup/adapters"
	"github.com/officefund/expense-backend/internal/setup/factory"
	"go.mongodb.org/mongo-driver/mongo"
)

func AuthRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /signup", adapters.AdaptRoute(factory.MakeSignUpController(db)))

	server.Handle("POST /login", adapters.AdaptRoute(factory.MakeLoginController(db)))
}
