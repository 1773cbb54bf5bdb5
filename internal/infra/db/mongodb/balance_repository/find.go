package balance_repository

import (
	"context"
	"errors"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindBalanceMongoRepository struct {
	Db *mongo.Database
}

func NewFindBalanceMongoRepository(db *mongo.Database) *FindBalanceMongoRepository {
	return &FindBalanceMongoRepository{
		Db: db,
	}
}

// Find reads the balance singleton. A missing document means no fund has ever
// been added, which reads as 0.
func (c *FindBalanceMongoRepository) Find() (float64, error) {
	collection := c.Db.Collection("fund_balance")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOne(ctx, bson.M{"_id": models.FundBalanceId})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return 0, nil
	}
	if result.Err() != nil {
		return 0, result.Err()
	}

	var doc models.FundBalance
	if err := result.Decode(&doc); err != nil {
		return 0, err
	}

	return doc.Balance, nil
}
