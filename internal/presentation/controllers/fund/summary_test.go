package fund

import (
	"errors"
	"testing"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/presentation/controllers/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeExpenseStore struct {
	expenses []models.Expense
}

func (f *fakeExpenseStore) Create(input *models.ExpenseInput) (*models.Expense, error) {
	created := models.Expense{
		Id:          primitive.NewObjectID(),
		Date:        input.Date,
		Description: input.Description,
		Amount:      input.Amount,
		BillImage:   input.BillImage,
		Email:       input.Email,
	}
	f.expenses = append(f.expenses, created)
	return &created, nil
}

func (f *fakeExpenseStore) SumAmounts() (float64, error) {
	var total float64
	for _, exp := range f.expenses {
		total += exp.Amount
	}
	return total, nil
}

// failingDebit simulates the balance write being lost after the expense
// record was already appended.
type failingDebit struct{}

func (failingDebit) Debit(amount float64) (float64, error) {
	return 0, errors.New("store unavailable")
}

func TestGetSummaryMatchesLedgerWhenConsistent(t *testing.T) {
	funds := &fakeFundStore{}
	expenses := &fakeExpenseStore{}
	balance := &fakeBalanceStore{}

	fundController := NewCreateFundController(funds, balance)
	require.Equal(t, 200, fundController.Handle(jsonRequest(`{"date":"2024-03-01","amount":1000,"admin_email":"admin@example.com"}`)).StatusCode)

	expenseController := expense.NewCreateExpenseController(balance, expenses, balance)
	require.Equal(t, 200, expenseController.Handle(jsonRequest(`{"date":"2024-03-02","description":"lunch","amount":300,"bill_image":"x","email":"alice@example.com"}`)).StatusCode)

	summary := NewGetSummaryController(funds, expenses, balance)
	response := summary.Handle(emptyRequest())

	require.Equal(t, 200, response.StatusCode)
	payload := decodeResponse(t, response)
	assert.Equal(t, 1000.0, payload["total_fund"])
	assert.Equal(t, 300.0, payload["total_expenses"])
	assert.Equal(t, 700.0, payload["balance"])
	assert.Equal(t, payload["total_fund"].(float64)-payload["total_expenses"].(float64), payload["balance"])
}

// When the balance write fails after the expense record was stored, the
// recomputed totals and the maintained singleton must visibly disagree —
// the summary's double bookkeeping is the audit trail for that window.
func TestGetSummaryExposesPartialFailureDivergence(t *testing.T) {
	funds := &fakeFundStore{}
	expenses := &fakeExpenseStore{}
	balance := &fakeBalanceStore{}

	fundController := NewCreateFundController(funds, balance)
	require.Equal(t, 200, fundController.Handle(jsonRequest(`{"date":"2024-03-01","amount":1000,"admin_email":"admin@example.com"}`)).StatusCode)

	expenseController := expense.NewCreateExpenseController(balance, expenses, failingDebit{})
	response := expenseController.Handle(jsonRequest(`{"date":"2024-03-02","description":"lunch","amount":300,"bill_image":"x","email":"alice@example.com"}`))
	require.Equal(t, 500, response.StatusCode, "debit failure must surface as an internal error")
	require.Len(t, expenses.expenses, 1, "the expense record was already appended")

	summary := NewGetSummaryController(funds, expenses, balance)
	payload := decodeResponse(t, summary.Handle(emptyRequest()))

	recomputed := payload["total_fund"].(float64) - payload["total_expenses"].(float64)
	assert.Equal(t, 700.0, recomputed)
	assert.Equal(t, 1000.0, payload["balance"], "singleton kept the pre-failure value")
	assert.NotEqual(t, recomputed, payload["balance"], "divergence must be observable")
}
