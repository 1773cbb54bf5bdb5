package admin

import (
	"net/http"

	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
)

type GetAllExpensesController struct {
	FindAllExpensesRepository usecase.FindAllExpensesRepository
	FindUserByEmailRepository usecase.FindUserByEmailRepository
}

func NewGetAllExpensesController(
	findAllExpenses usecase.FindAllExpensesRepository,
	findUserByEmail usecase.FindUserByEmailRepository,
) *GetAllExpensesController {
	return &GetAllExpensesController{
		FindAllExpensesRepository: findAllExpenses,
		FindUserByEmailRepository: findUserByEmail,
	}
}

type ExpenseWithEmployeeName struct {
	Id           string  `json:"id"`
	EmployeeName string  `json:"employee_name"`
	Email        string  `json:"email"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	BillImage    string  `json:"bill_image"`
}

type GetAllExpensesControllerResponse struct {
	Expenses []ExpenseWithEmployeeName `json:"expenses"`
}

func (c *GetAllExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expenses, err := c.FindAllExpensesRepository.FindAll()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Failed to fetch expenses",
		}, http.StatusInternalServerError)
	}

	response := GetAllExpensesControllerResponse{
		Expenses: make([]ExpenseWithEmployeeName, 0, len(expenses)),
	}

	for _, exp := range expenses {
		employeeName := "Unknown"
		if user, err := c.FindUserByEmailRepository.Find(exp.Email); err == nil && user != nil {
			employeeName = user.Name
		}

		response.Expenses = append(response.Expenses, ExpenseWithEmployeeName{
			Id:           exp.Id.Hex(),
			EmployeeName: employeeName,
			Email:        exp.Email,
			Description:  exp.Description,
			Amount:       exp.Amount,
			Date:         exp.Date,
			BillImage:    exp.BillImage,
		})
	}

	return helpers.CreateResponse(&response, http.StatusOK)
}
