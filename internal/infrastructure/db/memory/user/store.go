package user

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
)

// Store keeps the authoritative set of user records in process memory.
// Every operation runs under one mutex, so a uniqueness check and the insert
// it guards are atomic. All work is short and CPU-bound; a coarse lock is
// enough at these record counts.
type Store struct {
	mu    sync.Mutex
	byID  map[user.UUID]*user.User
	order []user.UUID
}

func NewStore() *Store {
	return &Store{
		byID: make(map[user.UUID]*user.User),
	}
}

func (s *Store) CreateUser(_ context.Context, req user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		if s.byID[id].Email == req.Email {
			return nil, user.ErrEmailAlreadyExists
		}
	}
	for _, id := range s.order {
		if s.byID[id].Username == req.Username {
			return nil, user.ErrUsernameAlreadyExists
		}
	}

	u := req
	u.UUID = uuid.New()
	u.Active = true

	s.byID[u.UUID] = &u
	s.order = append(s.order, u.UUID)

	return clone(&u), nil
}

func (s *Store) FetchUserByID(_ context.Context, id user.UUID) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}

	return clone(u), nil
}

func (s *Store) FetchUsers(_ context.Context) (user.Users, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	us := make(user.Users, len(s.order))
	for idx, id := range s.order {
		us[idx] = clone(s.byID[id])
	}

	return us, nil
}

func (s *Store) UpdateUser(_ context.Context, req user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[req.UUID]
	if !ok || !u.Active {
		return nil, nil
	}

	// Conflict scope is every record except the target, soft-deleted ones
	// included.
	for _, id := range s.order {
		if id != req.UUID && s.byID[id].Username == req.Username {
			return nil, user.ErrUsernameAlreadyExists
		}
	}

	u.FullName = req.FullName
	u.Username = req.Username

	return clone(u), nil
}

func (s *Store) DeleteUser(_ context.Context, id user.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok || !u.Active {
		return false, nil
	}

	u.Active = false

	return true, nil
}

func (s *Store) FetchUserByIdentifier(_ context.Context, identifier string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		u := s.byID[id]
		if !u.Active {
			continue
		}
		if strings.EqualFold(u.Username, identifier) || strings.EqualFold(u.Email, identifier) {
			return clone(u), nil
		}
	}

	return nil, nil
}

// clone keeps callers from mutating the record the store owns.
func clone(u *user.User) *user.User {
	cp := *u
	return &cp
}
