package auth

type LoginRequest struct {
	// Identifier is a username or an email; matching is case-insensitive.
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}
