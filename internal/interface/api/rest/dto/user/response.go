package user

import (
	"github.com/google/uuid"
)

// User is the public view: the password and phone number are never part of
// any response.
type (
	User struct {
		UUID        uuid.UUID `json:"id"`
		FullName    string    `json:"full_name"`
		Email       string    `json:"email"`
		Username    string    `json:"username"`
		Active      bool      `json:"active"`
		DateOfBirth string    `json:"date_of_birth"`
		Address     string    `json:"address"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
