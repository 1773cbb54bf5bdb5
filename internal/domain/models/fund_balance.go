package models

// FundBalance is the singleton aggregate of the shared fund, stored under a
// fixed document id. Invariant: balance == sum(fund amounts) - sum(expense
// amounts), maintained by atomic increments in the balance repository.
type FundBalance struct {
	Id      string  `bson:"_id" json:"-"`
	Balance float64 `bson:"balance" json:"balance"`
}

// FundBalanceId is the well-known document id of the singleton.
const FundBalanceId = "main"
