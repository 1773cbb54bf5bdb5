package factory

import (
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/session_repository"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/user_repository"
	"github.com/officefund/expense-backend/internal/presentation/controllers/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeSignUpController(db *mongo.Database) *auth.SignUpController {
	return auth.NewSignUpController(
		user_repository.NewFindUserByEmailMongoRepository(db),
		user_repository.NewCreateUserMongoRepository(db),
	)
}

func MakeLoginController(db *mongo.Database) *auth.LoginController {
	return auth.NewLoginController(
		user_repository.NewFindUserByEmailMongoRepository(db),
		session_repository.NewCreateSessionMongoRepository(db),
	)
}
