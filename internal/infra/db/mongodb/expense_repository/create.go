package expense_repository

import (
	"context"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateExpenseMongoRepository struct {
	Db *mongo.Database
}

func NewCreateExpenseMongoRepository(db *mongo.Database) *CreateExpenseMongoRepository {
	return &CreateExpenseMongoRepository{
		Db: db,
	}
}

func (c *CreateExpenseMongoRepository) Create(expense *models.ExpenseInput) (*models.Expense, error) {
	collection := c.Db.Collection("expenses")

	expenseToSave := models.Expense{
		Id:          primitive.NewObjectID(),
		Date:        expense.Date,
		Description: expense.Description,
		Amount:      expense.Amount,
		BillImage:   expense.BillImage,
		Email:       expense.Email,
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, expenseToSave)
	if err != nil {
		return nil, err
	}

	return &expenseToSave, nil
}
