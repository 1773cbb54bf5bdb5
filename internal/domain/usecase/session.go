package usecase

import "github.com/officefund/expense-backend/internal/domain/models"

type CreateSessionRepository interface {
	Create(*models.Session) error
}

// FindSessionByTokenRepository returns (nil, nil) for an unknown token.
type FindSessionByTokenRepository interface {
	FindByToken(token string) (*models.Session, error)
}
