package admin

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/officefund/expense-backend/internal/domain/models"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeExpenseStore struct {
	expenses []models.Expense
}

func (f *fakeExpenseStore) FindAll() ([]models.Expense, error) {
	return f.expenses, nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) Find(email string) (*models.User, error) {
	return f.users[email], nil
}

func testStores() (*fakeExpenseStore, *fakeUserStore) {
	expenses := &fakeExpenseStore{expenses: []models.Expense{
		{Id: primitive.NewObjectID(), Date: "2024-03-01", Description: "lunch", Amount: 30, BillImage: "x", Email: "alice@example.com"},
		{Id: primitive.NewObjectID(), Date: "2024-03-02", Description: "taxi", Amount: 15, BillImage: "y", Email: "gone@example.com"},
	}}
	users := &fakeUserStore{users: map[string]*models.User{
		"alice@example.com": {Email: "alice@example.com", Name: "Alice", Role: "employee"},
	}}
	return expenses, users
}

func emptyRequest() presentationProtocols.HttpRequest {
	return presentationProtocols.HttpRequest{
		Body: io.NopCloser(strings.NewReader("")),
	}
}

func TestGetAllExpensesResolvesEmployeeNames(t *testing.T) {
	expenses, users := testStores()
	controller := NewGetAllExpensesController(expenses, users)

	response := controller.Handle(emptyRequest())

	require.Equal(t, 200, response.StatusCode)
	var payload map[string][]map[string]any
	require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))

	list := payload["expenses"]
	require.Len(t, list, 2)
	assert.Equal(t, "Alice", list[0]["employee_name"])
	assert.Equal(t, "Unknown", list[1]["employee_name"])
	assert.Equal(t, "taxi", list[1]["description"])
	assert.NotEmpty(t, list[0]["id"])
}

func TestExportExpensesProducesWorkbook(t *testing.T) {
	expenses, users := testStores()
	controller := NewExportExpensesController(expenses, users, "")

	response := controller.Handle(emptyRequest())

	require.Equal(t, 200, response.StatusCode)
	assert.Equal(t, excelContentType, response.Headers.Get("Content-Type"))
	assert.Contains(t, response.Headers.Get("Content-Disposition"), "expenses.xlsx")

	data, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Employee Name", "Description", "Amount", "Date"}, rows[0])
	assert.Equal(t, []string{"Alice", "lunch", "30", "2024-03-01"}, rows[1])
	assert.Equal(t, []string{"Unknown", "taxi", "15", "2024-03-02"}, rows[2])
}

func TestExportExpensesEmpty(t *testing.T) {
	controller := NewExportExpensesController(&fakeExpenseStore{}, &fakeUserStore{}, "")

	response := controller.Handle(emptyRequest())

	require.Equal(t, 200, response.StatusCode)

	data, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row only")
}
