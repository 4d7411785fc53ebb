package ports

import (
	"context"

	"github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindUserByIdentifier(ctx context.Context, identifier string) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	CreateUser(ctx context.Context, u user.User) (*user.User, error)
	UpdateUser(ctx context.Context, u user.User) (*user.User, error)
	DeleteUser(ctx context.Context, uuid user.UUID) (bool, error)
}
