package fund

import (
	"net/http"

	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
)

type GetSummaryController struct {
	SumFundsRepository    usecase.SumFundsRepository
	SumExpensesRepository usecase.SumExpensesRepository
	FindBalanceRepository usecase.FindBalanceRepository
}

func NewGetSummaryController(
	sumFunds usecase.SumFundsRepository,
	sumExpenses usecase.SumExpensesRepository,
	findBalance usecase.FindBalanceRepository,
) *GetSummaryController {
	return &GetSummaryController{
		SumFundsRepository:    sumFunds,
		SumExpensesRepository: sumExpenses,
		FindBalanceRepository: findBalance,
	}
}

type GetSummaryControllerResponse struct {
	TotalFund     float64 `json:"total_fund"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

// Handle reports totals recomputed from the fund and expense records next to
// the maintained balance singleton. The totals are deliberately NOT derived
// from the singleton: if a balance write was ever lost, the two disagree,
// which is the audit signal for the ledger.
func (c *GetSummaryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	totalFund, err := c.SumFundsRepository.SumAmounts()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when calculating summary",
		}, http.StatusInternalServerError)
	}

	totalExpenses, err := c.SumExpensesRepository.SumAmounts()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when calculating summary",
		}, http.StatusInternalServerError)
	}

	balance, err := c.FindBalanceRepository.Find()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when reading fund balance",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&GetSummaryControllerResponse{
		TotalFund:     totalFund,
		TotalExpenses: totalExpenses,
		Balance:       balance,
	}, http.StatusOK)
}
