package user

import (
	"context"
)

// Repository is the storage contract shared by the in-memory and postgres
// drivers. Uniqueness checks happen inside the driver so that check and
// insert are atomic within a single store.
type Repository interface {
	// CreateUser assigns a fresh UUID, forces Active true and inserts the
	// record. Fails with ErrEmailAlreadyExists or ErrUsernameAlreadyExists
	// when another record (any status) holds the same email or username.
	CreateUser(ctx context.Context, req User) (*User, error)

	// FetchUserByID looks the record up regardless of its Active flag.
	// Returns (nil, nil) when no record has that id.
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)

	// FetchUsers returns every record, soft-deleted ones included, in a
	// stable order.
	FetchUsers(ctx context.Context) (Users, error)

	// UpdateUser rewrites FullName and Username of the active record with
	// req.UUID. Returns (nil, nil) when no active record has that id, and
	// ErrUsernameAlreadyExists when another record holds req.Username.
	UpdateUser(ctx context.Context, req User) (*User, error)

	// DeleteUser flips Active to false. Reports whether an active record was
	// actually deactivated; deleting twice yields false, not an error.
	DeleteUser(ctx context.Context, uuid UUID) (bool, error)

	// FetchUserByIdentifier matches identifier case-insensitively against
	// username and email of ACTIVE records only. Returns (nil, nil) on no
	// match; callers must not reveal which field failed.
	FetchUserByIdentifier(ctx context.Context, identifier string) (*User, error)
}
