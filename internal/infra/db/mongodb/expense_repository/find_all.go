package expense_repository

import (
	"context"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindAllExpensesMongoRepository struct {
	Db *mongo.Database
}

func NewFindAllExpensesMongoRepository(db *mongo.Database) *FindAllExpensesMongoRepository {
	return &FindAllExpensesMongoRepository{
		Db: db,
	}
}

func (c *FindAllExpensesMongoRepository) FindAll() ([]models.Expense, error) {
	collection := c.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}
