package expense_repository

import (
	"context"

	"github.com/officefund/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SumExpensesMongoRepository struct {
	Db *mongo.Database
}

func NewSumExpensesMongoRepository(db *mongo.Database) *SumExpensesMongoRepository {
	return &SumExpensesMongoRepository{
		Db: db,
	}
}

// SumAmounts totals the stored expense records, independent of the balance
// singleton. The two totals diverging is the audit signal for a partial
// failure between expense insert and balance update.
func (c *SumExpensesMongoRepository) SumAmounts() (float64, error) {
	collection := c.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
