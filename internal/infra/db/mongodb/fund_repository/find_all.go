package fund_repository

import (
	"context"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindAllFundsMongoRepository struct {
	Db *mongo.Database
}

func NewFindAllFundsMongoRepository(db *mongo.Database) *FindAllFundsMongoRepository {
	return &FindAllFundsMongoRepository{
		Db: db,
	}
}

func (c *FindAllFundsMongoRepository) FindAll() ([]models.Fund, error) {
	collection := c.Db.Collection("funds")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var funds []models.Fund
	if err = cursor.All(ctx, &funds); err != nil {
		return nil, err
	}

	return funds, nil
}
