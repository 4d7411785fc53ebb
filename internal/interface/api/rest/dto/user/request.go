package user

type (
	CreateRequest struct {
		FullName    string `json:"full_name"`
		Email       string `json:"email"`
		Username    string `json:"username"`
		Password    string `json:"password"`
		DateOfBirth string `json:"date_of_birth"`
		Address     string `json:"address"`
		Phone       string `json:"phone"`
	}
	// UpdateRequest carries the only two mutable fields. Email, password and
	// the contact fields are fixed at creation.
	UpdateRequest struct {
		FullName string `json:"full_name"`
		Username string `json:"username"`
	}
)
