package user_repository

import (
	"context"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateUserMongoRepository struct {
	Db *mongo.Database
}

func NewCreateUserMongoRepository(db *mongo.Database) *CreateUserMongoRepository {
	return &CreateUserMongoRepository{
		Db: db,
	}
}

func (c *CreateUserMongoRepository) Create(user *models.User) error {
	collection := c.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, user)
	return err
}
