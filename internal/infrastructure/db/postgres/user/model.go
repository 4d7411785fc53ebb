package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID          uint64
		UUID        uuid.UUID
		FullName    string
		Email       string
		Username    string
		Password    string
		DateOfBirth time.Time
		Address     string
		Phone       string
		Active      bool
	}
	Users []*User
)
