package service

//go:generate mockgen -destination=../../mocks/mock_password_hasher.go -package=mocks github.com/RadhepS/E-Commerce-Platform/internal/auth/service PasswordHasher

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and verifies salted one-way password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. A malformed hash is a
	// mismatch, not an error.
	Check(password, hash string) bool
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
