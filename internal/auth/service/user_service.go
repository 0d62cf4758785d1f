package service

import (
	"context"
	"log"
	"time"

	"github.com/RadhepS/E-Commerce-Platform/internal/auth/domain"
	"github.com/RadhepS/E-Commerce-Platform/internal/auth/dto"
	autherror "github.com/RadhepS/E-Commerce-Platform/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	hasher PasswordHasher
	gate   *SessionGate
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, hasher PasswordHasher, gate *SessionGate) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		gate:   gate,
	}
}

// Register provisions an address and a user profile linked to it. The
// username pre-check is a fast path only; the repository's unique constraint
// is what actually closes the race between concurrent registrations. If the
// profile insert fails after the address was persisted, the address is
// deleted again so no orphan is left behind.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, *domain.Address, error) {
	existingUser, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, nil, err
	}
	if existingUser != nil {
		return nil, nil, autherror.ErrUserExists
	}

	// The required fields on RegisterInput are the address fields.
	if err := validate.Struct(input); err != nil {
		return nil, nil, autherror.ErrInvalidAddress
	}

	now := time.Now()

	address := &domain.Address{
		ID:           uuid.New().String(),
		StreetNumber: input.StreetNumber,
		StreetName:   input.StreetName,
		UnitNumber:   input.UnitNumber,
		City:         input.City,
		Province:     input.Province,
		PostalCode:   input.PostalCode,
		Country:      input.Country,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, nil, autherror.ErrInvalidAddress
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.compensateAddress(ctx, address.ID)
		return nil, nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		BrandName:    input.BrandName,
		PhoneNumber:  input.PhoneNumber,
		AddressID:    address.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.compensateAddress(ctx, address.ID)
		return nil, nil, err
	}

	return user, address, nil
}

func (s *UserService) compensateAddress(ctx context.Context, addressID string) {
	if err := s.repo.DeleteAddress(ctx, addressID); err != nil {
		log.Printf("warn: failed to delete address %s after aborted registration: %v", addressID, err)
	}
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResult, error) {
	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, autherror.ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	address, err := s.repo.GetAddressByID(ctx, user.AddressID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResult{
		Token: token,
		User:  dto.NewUserOutput(user, address),
	}, nil
}

// Status resolves the session token into the authentication status view.
// It never fails: an unverifiable token, a deleted user, or a storage error
// all degrade to "not authenticated".
func (s *UserService) Status(ctx context.Context, rawToken string) dto.StatusOutput {
	user, err := s.gate.Resolve(ctx, rawToken)
	if err != nil {
		log.Printf("warn: failed to resolve session: %v", err)
		return dto.StatusOutput{IsAuthenticated: false}
	}
	if user == nil {
		return dto.StatusOutput{IsAuthenticated: false}
	}

	address, err := s.repo.GetAddressByID(ctx, user.AddressID)
	if err != nil {
		log.Printf("warn: failed to load address for user %s: %v", user.ID, err)
		return dto.StatusOutput{IsAuthenticated: false}
	}

	out := dto.NewUserOutput(user, address)

	return dto.StatusOutput{IsAuthenticated: true, User: &out}
}

// Logout reports whether the token belonged to a live session, so the
// handler knows to clear the cookie. Logging out twice, or while not logged
// in, is not an error.
func (s *UserService) Logout(ctx context.Context, rawToken string) bool {
	user, err := s.gate.Resolve(ctx, rawToken)
	if err != nil {
		log.Printf("warn: failed to resolve session: %v", err)
		return false
	}

	return user != nil
}

// Remove deletes a user profile by id. The linked address is intentionally
// left in place.
func (s *UserService) Remove(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return user, nil
}
