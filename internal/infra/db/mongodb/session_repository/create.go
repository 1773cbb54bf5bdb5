package session_repository

import (
	"context"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateSessionMongoRepository struct {
	Db *mongo.Database
}

func NewCreateSessionMongoRepository(db *mongo.Database) *CreateSessionMongoRepository {
	return &CreateSessionMongoRepository{
		Db: db,
	}
}

func (c *CreateSessionMongoRepository) Create(session *models.Session) error {
	collection := c.Db.Collection("sessions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, session)
	return err
}
