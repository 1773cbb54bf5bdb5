package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
)

type CreateExpenseController struct {
	FindBalanceRepository   usecase.FindBalanceRepository
	CreateExpenseRepository usecase.CreateExpenseRepository
	DebitBalanceRepository  usecase.DebitBalanceRepository
	Validate                *validator.Validate
}

func NewCreateExpenseController(
	findBalance usecase.FindBalanceRepository,
	createExpense usecase.CreateExpenseRepository,
	debitBalance usecase.DebitBalanceRepository,
) *CreateExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateExpenseController{
		FindBalanceRepository:   findBalance,
		CreateExpenseRepository: createExpense,
		DebitBalanceRepository:  debitBalance,
		Validate:                validate,
	}
}

type CreateExpenseControllerBody struct {
	Date        string  `json:"date" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	BillImage   string  `json:"bill_image" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
}

type CreateExpenseControllerResponse struct {
	Message    string  `json:"message"`
	NewBalance float64 `json:"new_balance"`
}

type InsufficientBalanceResponse struct {
	Error            string  `json:"error"`
	AvailableBalance float64 `json:"available_balance"`
}

// Handle records an expense against the shared fund. The expense record is
// appended before the balance debit; the debit itself is an atomic guarded
// decrement, so concurrent requests cannot overdraw the fund.
func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateExpenseControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusBadRequest)
	}

	currentBalance, err := c.FindBalanceRepository.Find()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when reading fund balance",
		}, http.StatusInternalServerError)
	}

	if body.Amount > currentBalance {
		return helpers.CreateResponse(&InsufficientBalanceResponse{
			Error:            "Insufficient balance",
			AvailableBalance: currentBalance,
		}, http.StatusBadRequest)
	}

	_, err = c.CreateExpenseRepository.Create(&models.ExpenseInput{
		Date:        body.Date,
		Description: body.Description,
		Amount:      body.Amount,
		BillImage:   body.BillImage,
		Email:       body.Email,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when storing expense",
		}, http.StatusInternalServerError)
	}

	newBalance, err := c.DebitBalanceRepository.Debit(body.Amount)
	if errors.Is(err, usecase.ErrInsufficientBalance) {
		// A concurrent debit drained the fund between the pre-check and the
		// guarded write. The expense record stays (expenses are append-only);
		// the summary's recomputed totals expose the discrepancy.
		available, findErr := c.FindBalanceRepository.Find()
		if findErr != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when reading fund balance",
			}, http.StatusInternalServerError)
		}

		return helpers.CreateResponse(&InsufficientBalanceResponse{
			Error:            "Insufficient balance",
			AvailableBalance: available,
		}, http.StatusBadRequest)
	}
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating fund balance",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&CreateExpenseControllerResponse{
		Message:    "Expense stored successfully",
		NewBalance: newBalance,
	}, http.StatusOK)
}
