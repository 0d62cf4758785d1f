package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/RadhepS/E-Commerce-Platform/internal/auth/domain UserRepository

import "context"

// UserRepository is the identity store: user profiles plus the address
// record each profile links to via AddressID. Lookups return (nil, nil)
// when no row matches; only infrastructure failures produce an error.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) (*User, error)
	CreateAddress(ctx context.Context, address *Address) error
	GetAddressByID(ctx context.Context, id string) (*Address, error)
	DeleteAddress(ctx context.Context, id string) error
}
