package routes

import (
	"net/http"

	"github.com/officefund/expense-backend/internal/infra/db/mongodb/session_repository"
	"github.com/officefund/expense-backend/internal/setup/adapters"
	"github.com/officefund/expense-backend/internal/setup/factory"
	"github.com/officefund/expense-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func AdminRoutes(server *http.ServeMux, db *mongo.Database, redisUrl string) {
	sessions := session_repository.NewFindSessionByTokenMongoRepository(db)

	server.Handle("GET /admin/get-all-expenses", middlewares.SessionAuth(
		adapters.AdaptRoute(factory.MakeGetAllExpensesController(db)),
		sessions,
	))

	server.Handle("GET /admin/export-expenses-excel", middlewares.SessionAuth(
		adapters.AdaptRoute(factory.MakeExportExpensesController(db, redisUrl)),
		sessions,
	))
}
