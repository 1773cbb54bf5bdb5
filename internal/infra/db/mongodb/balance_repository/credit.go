package balance_repository

import (
	"context"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreditBalanceMongoRepository struct {
	Db *mongo.Database
}

func NewCreditBalanceMongoRepository(db *mongo.Database) *CreditBalanceMongoRepository {
	return &CreditBalanceMongoRepository{
		Db: db,
	}
}

// Credit increments the balance singleton with a single $inc, upserting the
// document on the first contribution. Concurrent credits and debits serialize
// on the document, so no update is lost.
func (c *CreditBalanceMongoRepository) Credit(amount float64) (float64, error) {
	collection := c.Db.Collection("fund_balance")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	result := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": models.FundBalanceId},
		bson.M{"$inc": bson.M{"balance": amount}},
		opts,
	)
	if result.Err() != nil {
		return 0, result.Err()
	}

	var doc models.FundBalance
	if err := result.Decode(&doc); err != nil {
		return 0, err
	}

	return doc.Balance, nil
}
