package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JoseAcuna0/insightflow-users-service/internal/application/ports"
	domain "github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
	"github.com/JoseAcuna0/insightflow-users-service/internal/infrastructure/mq"
	"github.com/JoseAcuna0/insightflow-users-service/internal/interface/api/rest/dto/user"
)

// UserService enforces the account business rules on top of the store:
// create-time uniqueness, update scoping, terminal soft delete. The event
// publisher is optional; a nil mq simply skips publishing.
type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             rbMQ,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	return u, nil
}

func (us *UserService) FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.publish(http.MethodPost, uRet)
	us.count("user_created_total")

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, domain.ErrUserNotFound
	}

	us.publish(http.MethodPatch, uRet)
	us.count("user_updated_total")

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, userUUID domain.UUID) (bool, error) {
	deleted, err := us.userRepository.DeleteUser(ctx, userUUID)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	u, err := us.userRepository.FetchUserByID(ctx, userUUID)
	if err == nil && u != nil {
		us.publish(http.MethodDelete, u)
	}
	us.count("user_deleted_total")

	return true, nil
}

func (us *UserService) publish(method string, u *domain.User) {
	if us.mq == nil || u == nil {
		return
	}
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  u.UUID.String(),
		Payload: user.ToResponseUser(*u),
	}
}

func (us *UserService) count(label string) {
	if us.mCounter != nil {
		us.mCounter.WithLabelValues(label).Inc()
	}
}
