package balance_repository

import (
	"context"
	"errors"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DebitBalanceMongoRepository struct {
	Db *mongo.Database
}

func NewDebitBalanceMongoRepository(db *mongo.Database) *DebitBalanceMongoRepository {
	return &DebitBalanceMongoRepository{
		Db: db,
	}
}

// Debit decrements the balance singleton only when it holds at least amount.
// The balance >= amount filter and the $inc run as one document write, so the
// sufficiency check cannot race with a concurrent mutation. A filter miss
// (document absent or balance too low) reports ErrInsufficientBalance.
func (c *DebitBalanceMongoRepository) Debit(amount float64) (float64, error) {
	collection := c.Db.Collection("fund_balance")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	result := collection.FindOneAndUpdate(ctx,
		bson.M{
			"_id":     models.FundBalanceId,
			"balance": bson.M{"$gte": amount},
		},
		bson.M{"$inc": bson.M{"balance": -amount}},
		opts,
	)
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return 0, usecase.ErrInsufficientBalance
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
