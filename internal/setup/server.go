package setup

import (
	"net/http"
	"os"

	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"github.com/officefund/expense-backend/internal/setup/config"
	"github.com/officefund/expense-backend/internal/setup/middlewares"
)

func Server() http.Handler {
	db := helpers.MongoHelper(
		config.RequireEnv("MONGO_URI"),
		config.RequireEnv("MONGO_DATABASE"),
	)

	mux := http.NewServeMux()

	config.SetupRoutes(mux, db, os.Getenv("REDIS_URL"))

	return middlewares.RecoveryMiddleware(mux)
}
