package usecase

import "github.com/officefund/expense-backend/internal/domain/models"

type CreateExpenseRepository interface {
	Create(*models.ExpenseInput) (*models.Expense, error)
}

type FindExpensesByEmailRepository interface {
	FindByEmail(email string) ([]models.Expense, error)
}

type FindAllExpensesRepository interface {
	FindAll() ([]models.Expense, error)
}

// SumExpensesRepository recomputes the total from the expense records
// themselves, independently of the maintained balance singleton.
type SumExpensesRepository interface {
	SumAmounts() (float64, error)
}
