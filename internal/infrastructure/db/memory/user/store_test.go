package user

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
)

func someUser(email, username string) domain.User {
	return domain.User{
		FullName:    "John Doe",
		Email:       email,
		Username:    username,
		Password:    "secret",
		DateOfBirth: time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
		Address:     "Antofagasta, Chile",
		Phone:       "912345678",
	}
}

func TestCreateUser_AssignsFreshIDAndActivates(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seen := make(map[domain.UUID]bool)
	for i := 0; i < 10; i++ {
		u, err := s.CreateUser(ctx, someUser(
			fmt.Sprintf("u%d@example.com", i),
			fmt.Sprintf("user_%d", i),
		))
		require.NoError(t, err)
		require.NotNil(t, u)

		assert.NotEqual(t, uuid.Nil, u.UUID)
		assert.True(t, u.Active)
		assert.False(t, seen[u.UUID], "id must not be reused")
		seen[u.UUID] = true
	}
}

func TestCreateUser_ForcesActiveAndIgnoresCallerID(t *testing.T) {
	s := NewStore()

	req := someUser("a@example.com", "a_user")
	req.UUID = uuid.New()
	req.Active = false

	u, err := s.CreateUser(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, req.UUID, u.UUID)
	assert.True(t, u.Active)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, someUser("dup@example.com", "first"))
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, someUser("dup@example.com", "second"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, someUser("one@example.com", "taken"))
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, someUser("two@example.com", "taken"))
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestCreateUser_DuplicateEmailOfDeletedUser(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, someUser("gone@example.com", "gone"))
	require.NoError(t, err)
	ok, err := s.DeleteUser(ctx, u.UUID)
	require.NoError(t, err)
	require.True(t, ok)

	// Soft-deleted records still hold their email and username.
	_, err = s.CreateUser(ctx, someUser("gone@example.com", "other"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	_, err = s.CreateUser(ctx, someUser("other@example.com", "gone"))
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestCreateUser_ConcurrentSameEmail_OnlyOneWins(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreateUser(ctx, someUser("race@example.com", fmt.Sprintf("racer_%d", i)))
		}(i)
	}
	wg.Wait()

	var okCount int
	for _, err := range errs {
		if err == nil {
			okCount++
		} else {
			assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		}
	}
	assert.Equal(t, 1, okCount)
}

func TestFetchUserByID(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, someUser("find@example.com", "findme"))
	require.NoError(t, err)

	got, err := s.FetchUserByID(ctx, u.UUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.UUID, got.UUID)

	missing, err := s.FetchUserByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFetchUserByID_FindsSoftDeleted(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, someUser("soft@example.com", "softie"))
	require.NoError(t, err)
	ok, err := s.DeleteUser(ctx, u.UUID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.FetchUserByID(ctx, u.UUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)
}

func TestFetchUsers_AllRecordsInInsertionOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var ids []domain.UUID
	for i := 0; i < 5; i++ {
		u, err := s.CreateUser(ctx, someUser(
			fmt.Sprintf("list%d@example.com", i),
			fmt.Sprintf("lister_%d", i),
		))
		require.NoError(t, err)
		ids = append(ids, u.UUID)
	}

	ok, err := s.DeleteUser(ctx, ids[2])
	require.NoError(t, err)
	require.True(t, ok)

	us, err := s.FetchUsers(ctx)
	require.NoError(t, err)
	require.Len(t, us, 5)
	for idx, u := range us {
		assert.Equal(t, ids[idx], u.UUID)
	}
	assert.False(t, us[2].Active, "soft-deleted record stays in the listing")
}

func TestUpdateUser_TouchesOnlyFullNameAndUsername(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, someUser("upd@example.com", "before"))
	require.NoError(t, err)

	req := domain.User{
		UUID:     created.UUID,
		FullName: "New Name",
		Username: "after",
		// Fields below must be ignored by the store.
		Email:    "hacker@example.com",
		Password: "pwned",
		Address:  "elsewhere",
		Phone:    "000",
	}
	got, err := s.UpdateUser(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "New Name", got.FullName)
	assert.Equal(t, "after", got.Username)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, created.Password, got.Password)
	assert.Equal(t, created.DateOfBirth, got.DateOfBirth)
	assert.Equal(t, created.Address, got.Address)
	assert.Equal(t, created.Phone, got.Phone)
}

func TestUpdateUser_NotFoundAndDeleted(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	got, err := s.UpdateUser(ctx, domain.User{UUID: uuid.New(), Username: "x"})
	require.NoError(t, err)
	assert.Nil(t, got)

	u, err := s.CreateUser(ctx, someUser("del@example.com", "deleted"))
	require.NoError(t, err)
	ok, err := s.DeleteUser(ctx, u.UUID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err = s.UpdateUser(ctx, domain.User{UUID: u.UUID, Username: "deleted"})
	require.NoError(t, err)
	assert.Nil(t, got, "soft-deleted records are not updatable")
}

func TestUpdateUser_UsernameConflict(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, someUser("one@example.com", "taken"))
	require.NoError(t, err)
	target, err := s.CreateUser(ctx, someUser("two@example.com", "mine"))
	require.NoError(t, err)

	_, err = s.UpdateUser(ctx, domain.User{UUID: target.UUID, FullName: "T", Username: "taken"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)

	// Keeping your own username is not a conflict.
	got, err := s.UpdateUser(ctx, domain.User{UUID: target.UUID, FullName: "T", Username: "mine"})
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestDeleteUser_IsTerminal(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, someUser("bye@example.com", "bye"))
	require.NoError(t, err)

	ok, err := s.DeleteUser(ctx, u.UUID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteUser(ctx, u.UUID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete reports false, not an error")

	ok, err = s.DeleteUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFetchUserByIdentifier(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, someUser("Case@Example.com", "admin"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		identifier string
		found      bool
	}{
		{"exact username", "admin", true},
		{"uppercased username", "ADMIN", true},
		{"exact email", "Case@Example.com", true},
		{"lowercased email", "case@example.com", true},
		{"unknown identifier", "nobody", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.FetchUserByIdentifier(ctx, tt.identifier)
			require.NoError(t, err)
			if tt.found {
				require.NotNil(t, got)
				assert.Equal(t, created.UUID, got.UUID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFetchUserByIdentifier_SkipsSoftDeleted(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, someUser("inactive@example.com", "inactive"))
	require.NoError(t, err)
	ok, err := s.DeleteUser(ctx, u.UUID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.FetchUserByIdentifier(ctx, "inactive")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, someUser("copy@example.com", "copy"))
	require.NoError(t, err)

	created.Username = "mutated"

	got, err := s.FetchUserByID(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, "copy", got.Username)
}

func TestSeed(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx))

	us, err := s.FetchUsers(ctx)
	require.NoError(t, err)
	require.Len(t, us, 3)

	admin, err := s.FetchUserByIdentifier(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin@insightflow.com", admin.Email)

	// Seeding twice would collide on every email.
	err = s.Seed(ctx)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
