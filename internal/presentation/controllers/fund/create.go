package fund

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
)

type CreateFundController struct {
	CreateFundRepository    usecase.CreateFundRepository
	CreditBalanceRepository usecase.CreditBalanceRepository
	Validate                *validator.Validate
}

func NewCreateFundController(
	createFund usecase.CreateFundRepository,
	creditBalance usecase.CreditBalanceRepository,
) *CreateFundController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateFundController{
		CreateFundRepository:    createFund,
		CreditBalanceRepository: creditBalance,
		Validate:                validate,
	}
}

type CreateFundControllerBody struct {
	Date        string  `json:"date" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	AdminEmail  string  `json:"admin_email" validate:"required,email"`
}

type CreateFundControllerResponse struct {
	Message    string  `json:"message"`
	NewBalance float64 `json:"new_balance"`
}

// Handle records a fund contribution and credits the shared balance. There is
// no upper bound on contributions.
func (c *CreateFundController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateFundControllerBody
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

	_, err := c.CreateFundRepository.Create(&models.FundInput{
		Date:        body.Date,
		Amount:      body.Amount,
		Description: body.Description,
		AdminEmail:  body.AdminEmail,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when storing fund",
		}, http.StatusInternalServerError)
	}

	newBalance, err := c.CreditBalanceRepository.Credit(body.Amount)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating fund balance",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&CreateFundControllerResponse{
		Message:    "Fund added successfully",
		NewBalance: newBalance,
	}, http.StatusOK)
}
