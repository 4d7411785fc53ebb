package user

import (
	"errors"
	"time"

	"github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
)

const dateLayout = "2006-01-02"

func ToResponseUser(uDomain user.User) User {
	var u = User{
		UUID:        uDomain.UUID,
		FullName:    uDomain.FullName,
		Email:       uDomain.Email,
		Username:    uDomain.Username,
		Active:      uDomain.Active,
		DateOfBirth: uDomain.DateOfBirth.Format(dateLayout),
		Address:     uDomain.Address,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

// ToDomainUser leaves UUID and Active zero; the store assigns both.
func ToDomainUser(req CreateRequest) (user.User, error) {
	d, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return user.User{}, errors.New("invalid date_of_birth format, want YYYY-MM-DD")
	}

	var u = user.User{
		FullName:    req.FullName,
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		DateOfBirth: d,
		Address:     req.Address,
		Phone:       req.Phone,
	}

	return u, nil
}

func ToDomainUserUpdate(req UpdateRequest) user.User {
	return user.User{
		FullName: req.FullName,
		Username: req.Username,
	}
}
