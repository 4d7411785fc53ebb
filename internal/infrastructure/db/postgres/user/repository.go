package user

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	domain "github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
	"github.com/JoseAcuna0/insightflow-users-service/internal/infrastructure/db/postgres"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUsers(ctx context.Context) (domain.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.UUID,
			&u.FullName,
			&u.Email,
			&u.Username,
			&u.Password,
			&u.DateOfBirth,
			&u.Address,
			&u.Phone,
			&u.Active,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByUUID, uuid.String()).Scan(
		&u.ID,
		&u.UUID,
		&u.FullName,
		&u.Email,
		&u.Username,
		&u.Password,
		&u.DateOfBirth,
		&u.Address,
		&u.Phone,
		&u.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByIdentifier, identifier).Scan(
		&u.ID,
		&u.UUID,
		&u.FullName,
		&u.Email,
		&u.Username,
		&u.Password,
		&u.DateOfBirth,
		&u.Address,
		&u.Phone,
		&u.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.FullName, req.Email, req.Username, req.Password, req.DateOfBirth, req.Address, req.Phone,
	).Scan(
		&u.ID,
		&u.UUID,
		&u.FullName,
		&u.Email,
		&u.Username,
		&u.Password,
		&u.DateOfBirth,
		&u.Address,
		&u.Phone,
		&u.Active,
	)
	if err != nil {
		if constraint, ok := postgres.UniqueViolation(err); ok {
			return nil, uniqueErr(constraint)
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) UpdateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, UpdateUserByUUID,
		req.FullName, req.Username, req.UUID,
	).Scan(
		&u.ID,
		&u.UUID,
		&u.FullName,
		&u.Email,
		&u.Username,
		&u.Password,
		&u.DateOfBirth,
		&u.Address,
		&u.Phone,
		&u.Active,
	)
	if err != nil {
		if _, ok := postgres.UniqueViolation(err); ok {
			return nil, domain.ErrUsernameAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) DeleteUser(ctx context.Context, uuid domain.UUID) (bool, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SoftDeleteUserByUUID, uuid).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func uniqueErr(constraint string) error {
	if strings.Contains(constraint, "email") {
		return domain.ErrEmailAlreadyExists
	}
	return domain.ErrUsernameAlreadyExists
}
