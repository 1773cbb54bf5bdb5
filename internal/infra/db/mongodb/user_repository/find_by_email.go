package user_repository

import (
	"context"
	"errors"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUserByEmailMongoRepository struct {
	Db *mongo.Database
}

func NewFindUserByEmailMongoRepository(db *mongo.Database) *FindUserByEmailMongoRepository {
	return &FindUserByEmailMongoRepository{
		Db: db,
	}
}

func (c *FindUserByEmailMongoRepository) Find(email string) (*models.User, error) {
	collection := c.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOne(ctx, bson.M{"_id": email})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user models.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}
