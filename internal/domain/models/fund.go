package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Fund struct {
	Id          primitive.ObjectID `bson:"_id" json:"id"`
	Date        string             `bson:"date" json:"date"`
	Amount      float64            `bson:"amount" json:"amount"`
	Description string             `bson:"description" json:"description"`
	AdminEmail  string             `bson:"admin_email" json:"admin_email"`
}

type FundInput struct {
	Date        string  `bson:"date"`
	Amount      float64 `bson:"amount"`
	Description string  `bson:"description"`
	AdminEmail  string  `bson:"admin_email"`
}
