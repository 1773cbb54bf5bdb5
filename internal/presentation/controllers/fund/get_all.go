package fund

import (
	"net/http"

	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
)

type GetAllFundsController struct {
	FindAllFundsRepository    usecase.FindAllFundsRepository
	FindUserByEmailRepository usecase.FindUserByEmailRepository
}

func NewGetAllFundsController(
	findAllFunds usecase.FindAllFundsRepository,
	findUserByEmail usecase.FindUserByEmailRepository,
) *GetAllFundsController {
	return &GetAllFundsController{
		FindAllFundsRepository:    findAllFunds,
		FindUserByEmailRepository: findUserByEmail,
	}
}

type FundWithAdminName struct {
	Id          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	AdminName   string  `json:"admin_name"`
}

type GetAllFundsControllerResponse struct {
	Funds []FundWithAdminName `json:"funds"`
}

// Handle lists every contribution in date order, resolving the contributing
// admin's display name, "Unknown" when the user record is gone.
func (c *GetAllFundsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	funds, err := c.FindAllFundsRepository.FindAll()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Failed to retrieve funds",
		}, http.StatusInternalServerError)
	}

	response := GetAllFundsControllerResponse{
		Funds: make([]FundWithAdminName, 0, len(funds)),
	}

	for _, f := range funds {
		adminName := "Unknown"
		if admin, err := c.FindUserByEmailRepository.Find(f.AdminEmail); err == nil && admin != nil {
			adminName = admin.Name
		}

		response.Funds = append(response.Funds, FundWithAdminName{
			Id:          f.Id.Hex(),
			Date:        f.Date,
			Amount:      f.Amount,
			Description: f.Description,
			AdminName:   adminName,
		})
	}

	return helpers.CreateResponse(&response, http.StatusOK)
}
