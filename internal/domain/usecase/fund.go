package usecase

import "github.com/officefund/expense-backend/internal/domain/models"

type CreateFundRepository interface {
	Create(*models.FundInput) (*models.Fund, error)
}

// FindAllFundsRepository returns funds ordered by date ascending.
type FindAllFundsRepository interface {
	FindAll() ([]models.Fund, error)
}

type SumFundsRepository interface {
	SumAmounts() (float64, error)
}
