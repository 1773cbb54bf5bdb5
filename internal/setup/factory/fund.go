package factory

import (
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/balance_repository"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/fund_repository"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/user_repository"
	"github.com/officefund/expense-backend/internal/presentation/controllers/fund"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateFundController(db *mongo.Database) *fund.CreateFundController {
	return fund.NewCreateFundController(
		fund_repository.NewCreateFundMongoRepository(db),
		balance_repository.NewCreditBalanceMongoRepository(db),
	)
}

func MakeGetAllFundsController(db *mongo.Database) *fund.GetAllFundsController {
	return fund.NewGetAllFundsController(
		fund_repository.NewFindAllFundsMongoRepository(db),
		user_repository.NewFindUserByEmailMongoRepository(db),
	)
}

func MakeGetSummaryController(db *mongo.Database) *fund.GetSummaryController {
	return fund.NewGetSummaryController(
		fund_repository.NewSumFundsMongoRepository(db),
		expense_repository.NewSumExpensesMongoRepository(db),
		balance_repository.NewFindBalanceMongoRepository(db),
	)
}
