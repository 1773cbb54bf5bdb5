package session_repository

import (
	"context"
	"errors"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindSessionByTokenMongoRepository struct {
	Db *mongo.Database
}

func NewFindSessionByTokenMongoRepository(db *mongo.Database) *FindSessionByTokenMongoRepository {
	return &FindSessionByTokenMongoRepository{
		Db: db,
	}
}

func (c *FindSessionByTokenMongoRepository) FindByToken(token string) (*models.Session, error) {
	collection := c.Db.Collection("sessions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOne(ctx, bson.M{"_id": token})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var session models.Session
	if err := result.Decode(&session); err != nil {
		return nil, err
	}

	return &session, nil
}
