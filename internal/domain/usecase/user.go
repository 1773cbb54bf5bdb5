package usecase

import "github.com/officefund/expense-backend/internal/domain/models"

type CreateUserRepository interface {
	Create(*models.User) error
}

// FindUserByEmailRepository returns (nil, nil) when no user exists for the
// email, so callers can tell "absent" apart from a store failure.
type FindUserByEmailRepository interface {
	Find(email string) (*models.User, error)
}
