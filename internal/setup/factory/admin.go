package factory

import (
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/user_repository"
	"github.com/officefund/expense-backend/internal/presentation/controllers/admin"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetAllExpensesController(db *mongo.Database) *admin.GetAllExpensesController {
	return admin.NewGetAllExpensesController(
		expense_repository.NewFindAllExpensesMongoRepository(db),
		user_repository.NewFindUserByEmailMongoRepository(db),
	)
}

func MakeExportExpensesController(db *mongo.Database, redisUrl string) *admin.ExportExpensesController {
	return admin.NewExportExpensesController(
		expense_repository.NewFindAllExpensesMongoRepository(db),
		user_repository.NewFindUserByEmailMongoRepository(db),
		redisUrl,
	)
}
