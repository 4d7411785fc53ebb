package ports

import (
	"github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
)

type Auth interface {
	// GenerateToken verifies requestPassword against the record and issues an
	// access token. The only failure callers may surface is a generic
	// invalid-credentials one.
	GenerateToken(u *user.User, requestPassword string) (string, error)
}
