package expense_repository

import (
	"context"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindExpensesByEmailMongoRepository struct {
	Db *mongo.Database
}

func NewFindExpensesByEmailMongoRepository(db *mongo.Database) *FindExpensesByEmailMongoRepository {
	return &FindExpensesByEmailMongoRepository{
		Db: db,
	}
}

func (c *FindExpensesByEmailMongoRepository) FindByEmail(email string) ([]models.Expense, error) {
	collection := c.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}
