package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		UUID     UUID
		FullName string
		Email    string
		Username string
		// Plaintext by contract with the original system; authentication is an
		// exact string compare. Never serialized outward.
		Password    string
		DateOfBirth time.Time
		Address     string
		Phone       string

		// Active false means soft-deleted. There is no undelete path.
		Active bool
	}
	Users []*User
)
