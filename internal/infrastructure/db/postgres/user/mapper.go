package user

import (
	domain "github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:        model.UUID,
		FullName:    model.FullName,
		Email:       model.Email,
		Username:    model.Username,
		Password:    model.Password,
		DateOfBirth: model.DateOfBirth,
		Address:     model.Address,
		Phone:       model.Phone,
		Active:      model.Active,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
