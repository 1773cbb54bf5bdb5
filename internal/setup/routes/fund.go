package routes

import (
	"net/http"

	"github.com/officefund/expense-backend/internal/infra/db/mongodb/session_repository"
	"github.com/officefund/expense-backend/internal/setup/adapters"
	"github.com/officefund/expense-backend/internal/setup/factory"
	"github.com/officefund/expense-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func FundRoutes(server *http.ServeMux, db *mongo.Database) {
	sessions := session_repository.NewFindSessionByTokenMongoRepository(db)

	server.Handle("POST /add-fund", middlewares.SessionAuth(
		adapters.AdaptRoute(factory.MakeCreateFundController(db)),
		sessions,
	))

	server.Handle("GET /get-all-funds", middlewares.SessionAuth(
		adapters.AdaptRoute(factory.MakeGetAllFundsController(db)),
		sessions,
	))

	server.Handle("GET /get-summary", middlewares.SessionAuth(
		adapters.AdaptRoute(factory.MakeGetSummaryController(db)),
		sessions,
	))
}
