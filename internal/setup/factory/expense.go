package factory

import (
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/balance_repository"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/officefund/expense-backend/internal/presentation/controllers/expense"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateExpenseController(db *mongo.Database) *expense.CreateExpenseController {
	return expense.NewCreateExpenseController(
		balance_repository.NewFindBalanceMongoRepository(db),
		expense_repository.NewCreateExpenseMongoRepository(db),
		balance_repository.NewDebitBalanceMongoRepository(db),
	)
}

func MakeGetExpensesByEmailController(db *mongo.Database) *expense.GetExpensesByEmailController {
	return expense.NewGetExpensesByEmailController(
		expense_repository.NewFindExpensesByEmailMongoRepository(db),
	)
}
