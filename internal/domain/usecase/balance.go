package usecase

import "errors"

// ErrInsufficientBalance is returned by Debit when the guarded decrement finds
// less balance than the debit amount.
var ErrInsufficientBalance = errors.New("insufficient balance")

// FindBalanceRepository reads the fund balance singleton, defaulting to 0 when
// the document does not exist yet.
type FindBalanceRepository interface {
	Find() (float64, error)
}

// CreditBalanceRepository atomically adds amount to the balance and returns
// the new value, creating the singleton on first use.
type CreditBalanceRepository interface {
	Credit(amount float64) (float64, error)
}

// DebitBalanceRepository atomically subtracts amount from the balance and
// returns the new value. The check and the decrement are a single conditional
// write: concurrent debits cannot overdraw or clobber each other.
type DebitBalanceRepository interface {
	Debit(amount float64) (float64, error)
}
