package routes

import (
	"net/http"

	"github.com/officefund/expense-backend/internal/infra/db/mongodb/session_repository"
	"github.com/officefund/expense-backend/internal/setup/adapters"
	"github.com/officefund/expense-backend/internal/setup/factory"
	"github.com/officefund/expense-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func ExpenseRoutes(server *http.ServeMux, db *mongo.Database) {
	sessions := session_repository.NewFindSessionByTokenMongoRepository(db)

	server.Handle("POST /add-expense", middlewares.SessionAuth(
		adapters.AdaptRoute(factory.MakeCreateExpenseController(db)),
		sessions,
	))

	server.Handle("GET /get-expenses/{email}", middlewares.SessionAuth(
		adapters.AdaptRoute(factory.MakeGetExpensesByEmailController(db)),
		sessions,
	))
}
