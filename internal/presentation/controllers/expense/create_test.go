package expense

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/presentation/controllers/fund"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBalanceStore mirrors the guarded-increment semantics of the mongo
// repository: the sufficiency check and the decrement are inseparable.
type fakeBalanceStore struct {
	balance  float64
	findErr  error
	debitErr error
}

func (f *fakeBalanceStore) Find() (float64, error) {
	if f.findErr != nil {
		return 0, f.findErr
	}
	return f.balance, nil
}

func (f *fakeBalanceStore) Credit(amount float64) (float64, error) {
	f.balance += amount
	return f.balance, nil
}

func (f *fakeBalanceStore) Debit(amount float64) (float64, error) {
	if f.debitErr != nil {
		return 0, f.debitErr
	}
	if f.balance < amount {
		return 0, usecase.ErrInsufficientBalance
	}
	f.balance -= amount
	return f.balance, nil
}

type fakeExpenseStore struct {
	expenses    []models.Expense
	createCalls int
}

func (f *fakeExpenseStore) Create(input *models.ExpenseInput) (*models.Expense, error) {
	f.createCalls++
	expense := models.Expense{
		Id:          primitive.NewObjectID(),
		Date:        input.Date,
		Description: input.Description,
		Amount:      input.Amount,
		BillImage:   input.BillImage,
		Email:       input.Email,
	}
	f.expenses = append(f.expenses, expense)
	return &expense, nil
}

func (f *fakeExpenseStore) FindByEmail(email string) ([]models.Expense, error) {
	var matched []models.Expense
	for _, exp := range f.expenses {
		if exp.Email == email {
			matched = append(matched, exp)
		}
	}
	return matched, nil
}

func (f *fakeExpenseStore) FindAll() ([]models.Expense, error) {
	return f.expenses, nil
}

func (f *fakeExpenseStore) SumAmounts() (float64, error) {
	var total float64
	for _, exp := range f.expenses {
		total += exp.Amount
	}
	return total, nil
}

type fakeFundStore struct {
	funds []models.Fund
}

func (f *fakeFundStore) Create(input *models.FundInput) (*models.Fund, error) {
	created := models.Fund{
		Id:          primitive.NewObjectID(),
		Date:        input.Date,
		Amount:      input.Amount,
		Description: input.Description,
		AdminEmail:  input.AdminEmail,
	}
	f.funds = append(f.funds, created)
	return &created, nil
}

func jsonRequest(body string) presentationProtocols.HttpRequest {
	return presentationProtocols.HttpRequest{
		Body: io.NopCloser(strings.NewReader(body)),
	}
}

func decodeResponse(t *testing.T, response *presentationProtocols.HttpResponse) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))
	return payload
}

func addExpense(controller *CreateExpenseController, amount string) *presentationProtocols.HttpResponse {
	return controller.Handle(jsonRequest(`{
		"date": "2024-03-01",
		"description": "team lunch",
		"amount": ` + amount + `,
		"bill_image": "aW1hZ2U=",
		"email": "alice@example.com"
	}`))
}

func TestCreateExpenseDebitsBalance(t *testing.T) {
	balance := &fakeBalanceStore{balance: 1000}
	expenses := &fakeExpenseStore{}
	controller := NewCreateExpenseController(balance, expenses, balance)

	response := addExpense(controller, "300")

	require.Equal(t, 200, response.StatusCode)
	payload := decodeResponse(t, response)
	assert.Equal(t, "Expense stored successfully", payload["message"])
	assert.Equal(t, 700.0, payload["new_balance"])
	assert.Equal(t, 700.0, balance.balance)

	require.Len(t, expenses.expenses, 1)
	assert.Equal(t, "alice@example.com", expenses.expenses[0].Email)
	assert.Equal(t, 300.0, expenses.expenses[0].Amount)
}

func TestCreateExpenseInsufficientBalance(t *testing.T) {
	balance := &fakeBalanceStore{balance: 700}
	expenses := &fakeExpenseStore{}
	controller := NewCreateExpenseController(balance, expenses, balance)

	response := addExpense(controller, "800")

	assert.Equal(t, 400, response.StatusCode)
	payload := decodeResponse(t, response)
	assert.Equal(t, "Insufficient balance", payload["error"])
	assert.Equal(t, 700.0, payload["available_balance"])

	assert.Equal(t, 700.0, balance.balance, "rejected expense must leave the balance unchanged")
	assert.Zero(t, expenses.createCalls, "rejected expense must not be stored")
}

func TestCreateExpenseRejectsMissingFields(t *testing.T) {
	balance := &fakeBalanceStore{balance: 1000}
	expenses := &fakeExpenseStore{}
	controller := NewCreateExpenseController(balance, expenses, balance)

	response := controller.Handle(jsonRequest(`{"date":"2024-03-01","amount":50}`))

	assert.Equal(t, 400, response.StatusCode)
	assert.Zero(t, expenses.createCalls)
	assert.Equal(t, 1000.0, balance.balance)
}

func TestCreateExpenseRejectsNonPositiveAmount(t *testing.T) {
	balance := &fakeBalanceStore{balance: 1000}
	expenses := &fakeExpenseStore{}
	controller := NewCreateExpenseController(balance, expenses, balance)

	for _, amount := range []string{"0", "-25"} {
		response := addExpense(controller, amount)
		assert.Equal(t, 400, response.StatusCode, "amount %s must be rejected", amount)
	}
	assert.Zero(t, expenses.createCalls)
}

// The full ledger scenario: 0 -> fund 1000 -> expense 300 -> balance 700,
// then an 800 expense is refused with the available balance, leaving 700.
func TestLedgerScenario(t *testing.T) {
	balance := &fakeBalanceStore{}
	expenses := &fakeExpenseStore{}
	funds := &fakeFundStore{}

	fundController := fund.NewCreateFundController(funds, balance)
	expenseController := NewCreateExpenseController(balance, expenses, balance)

	fundResponse := fundController.Handle(jsonRequest(`{
		"date": "2024-03-01",
		"amount": 1000,
		"description": "monthly top-up",
		"admin_email": "admin@example.com"
	}`))
	require.Equal(t, 200, fundResponse.StatusCode)
	assert.Equal(t, 1000.0, balance.balance)

	okResponse := addExpense(expenseController, "300")
	require.Equal(t, 200, okResponse.StatusCode)
	assert.Equal(t, 700.0, decodeResponse(t, okResponse)["new_balance"])

	rejected := addExpense(expenseController, "800")
	assert.Equal(t, 400, rejected.StatusCode)
	payload := decodeResponse(t, rejected)
	assert.Equal(t, "Insufficient balance", payload["error"])
	assert.Equal(t, 700.0, payload["available_balance"])
	assert.Equal(t, 700.0, balance.balance)

	// Invariant: balance == sum(funds) - sum(expenses).
	totalExpenses, err := expenses.SumAmounts()
	require.NoError(t, err)
	assert.Equal(t, 1000.0-totalExpenses, balance.balance)
}
