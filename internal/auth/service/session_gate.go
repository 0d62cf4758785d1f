package service

import (
	"context"

	"github.com/RadhepS/E-Commerce-Platform/internal/auth/domain"
)

// SessionGate turns a raw cookie token into the user it belongs to.
// An absent, malformed, tampered or expired token resolves to (nil, nil),
// as does a well-signed token whose user has since been deleted. Only a
// storage failure is an error.
type SessionGate struct {
	tokens TokenGenerator
	repo   domain.UserRepository
}

func NewSessionGate(tokens TokenGenerator, repo domain.UserRepository) *SessionGate {
	return &SessionGate{tokens: tokens, repo: repo}
}

func (g *SessionGate) Resolve(ctx context.Context, rawToken string) (*domain.User, error) {
	if rawToken == "" {
		return nil, nil
	}

	claims, err := g.tokens.Verify(rawToken)
	if err != nil {
		return nil, nil
	}

	user, err := g.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
