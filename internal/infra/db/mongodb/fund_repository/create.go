package fund_repository

import (
	"context"

	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateFundMongoRepository struct {
	Db *mongo.Database
}

func NewCreateFundMongoRepository(db *mongo.Database) *CreateFundMongoRepository {
	return &CreateFundMongoRepository{
		Db: db,
	}
}

func (c *CreateFundMongoRepository) Create(fund *models.FundInput) (*models.Fund, error) {
	collection := c.Db.Collection("funds")

	fundToSave := models.Fund{
		Id:          primitive.NewObjectID(),
		Date:        fund.Date,
		Amount:      fund.Amount,
		Description: fund.Description,
		AdminEmail:  fund.AdminEmail,
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, fundToSave)
	if err != nil {
		return nil, err
	}

	return &fundToSave, nil
}
