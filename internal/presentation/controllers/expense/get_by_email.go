package expense

import (
	"net/http"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
)

type GetExpensesByEmailController struct {
	FindExpensesByEmailRepository usecase.FindExpensesByEmailRepository
}

func NewGetExpensesByEmailController(
	findExpensesByEmail usecase.FindExpensesByEmailRepository,
) *GetExpensesByEmailController {
	return &GetExpensesByEmailController{
		FindExpensesByEmailRepository: findExpensesByEmail,
	}
}

type GetExpensesByEmailControllerResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

// Handle lists the expenses owned by the email in the path. Any valid session
// may query any email; there is no ownership check.
func (c *GetExpensesByEmailController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	email := r.Req.PathValue("email")

	expenses, err := c.FindExpensesByEmailRepository.FindByEmail(email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Failed to retrieve expenses",
		}, http.StatusInternalServerError)
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}

	return helpers.CreateResponse(&GetExpensesByEmailControllerResponse{
		Expenses: expenses,
	}, http.StatusOK)
}
