package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/RadhepS/E-Commerce-Platform/internal/auth/domain"
	autherror "github.com/RadhepS/E-Commerce-Platform/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// PgxIface is the subset of pgxpool.Pool the repository uses. pgxmock
// implements it, which keeps the repository testable without a database.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, email, first_name, last_name, brand_name,
		       phone_number, address_id, created_at, updated_at
		FROM users
		WHERE username = $1
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, email, first_name, last_name, brand_name,
		       phone_number, address_id, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email,
		&user.FirstName, &user.LastName, &user.BrandName, &user.PhoneNumber,
		&user.AddressID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Create inserts the user. The unique constraint on username is the
// authoritative duplicate check; a violation surfaces as ErrUserExists even
// when the service's pre-check raced another registration.
func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, username, password_hash, email, first_name, last_name,
                           brand_name, phone_number, address_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, user.ID, user.Username, user.PasswordHash, user.Email, user.FirstName,
		user.LastName, user.BrandName, user.PhoneNumber, user.AddressID,
		user.CreatedAt, user.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return autherror.ErrUserExists
	}

	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*domain.User, error) {
	query := `
		DELETE FROM users
		WHERE id = $1
		RETURNING id, username, password_hash, email, first_name, last_name, brand_name,
		          phone_number, address_id, created_at, updated_at;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) CreateAddress(ctx context.Context, address *domain.Address) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO addresses (id, street_number, street_name, unit_number, city,
                               province, postal_code, country, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, address.ID, address.StreetNumber, address.StreetName, address.UnitNumber,
		address.City, address.Province, address.PostalCode, address.Country,
		address.CreatedAt, address.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetAddressByID(ctx context.Context, id string) (*domain.Address, error) {
	query := `
		SELECT id, street_number, street_name, unit_number, city, province,
		       postal_code, country, created_at, updated_at
		FROM addresses
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var address domain.Address
	err := row.Scan(&address.ID, &address.StreetNumber, &address.StreetName,
		&address.UnitNumber, &address.City, &address.Province, &address.PostalCode,
		&address.Country, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	return &address, nil
}

func (r *PostgresRepository) DeleteAddress(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	return err
}
