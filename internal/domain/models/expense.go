package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Expense struct {
	Id          primitive.ObjectID `bson:"_id" json:"id"`
	Date        string             `bson:"date" json:"date"`
	Description string             `bson:"description" json:"description"`
	Amount      float64            `bson:"amount" json:"amount"`
	BillImage   string             `bson:"bill_image" json:"bill_image"`
	Email       string             `bson:"email" json:"email"`
}

type ExpenseInput struct {
	Date        string  `bson:"date"`
	Description string  `bson:"description"`
	Amount      float64 `bson:"amount"`
	BillImage   string  `bson:"bill_image"`
	Email       string  `bson:"email"`
}
