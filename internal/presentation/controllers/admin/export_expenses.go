package admin

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/redis_repository"
	"github.com/officefund/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheetName = "Expenses"
	exportCacheKey  = "export:expenses"
	exportCacheTTL  = 60 * time.Second

	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportExpensesController struct {
	FindAllExpensesRepository usecase.FindAllExpensesRepository
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	// RedisUrl enables short-lived caching of the generated workbook when set.
	RedisUrl string
}

func NewExportExpensesController(
	findAllExpenses usecase.FindAllExpensesRepository,
	findUserByEmail usecase.FindUserByEmailRepository,
	redisUrl string,
) *ExportExpensesController {
	return &ExportExpensesController{
		FindAllExpensesRepository: findAllExpenses,
		FindUserByEmailRepository: findUserByEmail,
		RedisUrl:                  redisUrl,
	}
}

func (c *ExportExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	if c.RedisUrl != "" {
		if cached, err := redis_repository.FindExcel(c.RedisUrl, exportCacheKey); err == nil {
			return excelResponse(cached)
		}
	}

	expenses, err := c.FindAllExpensesRepository.FindAll()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Failed to export Excel",
		}, http.StatusInternalServerError)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheetName)
	if err := f.SetSheetRow(exportSheetName, "A1", &[]any{"Employee Name", "Description", "Amount", "Date"}); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Failed to export Excel",
		}, http.StatusInternalServerError)
	}

	for i, exp := range expenses {
		employeeName := "Unknown"
		if user, err := c.FindUserByEmailRepository.Find(exp.Email); err == nil && user != nil {
			employeeName = user.Name
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "Failed to export Excel",
			}, http.StatusInternalServerError)
		}

		if err := f.SetSheetRow(exportSheetName, cell, &[]any{employeeName, exp.Description, exp.Amount, exp.Date}); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "Failed to export Excel",
			}, http.StatusInternalServerError)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Failed to export Excel",
		}, http.StatusInternalServerError)
	}

	if c.RedisUrl != "" {
		// Best effort; a cold cache just means regenerating next time.
		_ = redis_repository.SaveExcel(c.RedisUrl, exportCacheKey, buf.Bytes(), exportCacheTTL)
	}

	return excelResponse(buf.Bytes())
}

func excelResponse(data []byte) *presentationProtocols.HttpResponse {
	headers := http.Header{}
	headers.Set("Content-Type", excelContentType)
	headers.Set("Content-Disposition", `attachment; filename=expenses.xlsx`)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		StatusCode: http.StatusOK,
		Headers:    headers,
	}
}
