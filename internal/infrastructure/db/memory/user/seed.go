package user

import (
	"context"
	"fmt"
	"time"

	"github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
)

var _ user.Repository = (*Store)(nil)

// Seed loads the demo accounts used in local InsightFlow environments.
// Intended for local runs only (SERVICE_SEED_DEMO).
func (s *Store) Seed(ctx context.Context) error {
	demo := []user.User{
		{
			FullName:    "Administrador InsightFlow",
			Email:       "admin@insightflow.com",
			Username:    "admin",
			Password:    "password123",
			DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			Address:     "Sede Central, Santiago",
			Phone:       "987654321",
		},
		{
			FullName:    "Jose Acuña",
			Email:       "j.acuna@ucn.cl",
			Username:    "j_acuna",
			Password:    "test",
			DateOfBirth: time.Date(2003, 5, 10, 0, 0, 0, 0, time.UTC),
			Address:     "Antofagasta, Chile",
			Phone:       "912345678",
		},
		{
			FullName:    "Neymar Junior",
			Email:       "NeyNey@test.com",
			Username:    "Santos10",
			Password:    "futbol",
			DateOfBirth: time.Date(1980, 12, 12, 0, 0, 0, 0, time.UTC),
			Address:     "Santos, Brasil",
			Phone:       "900000000",
		},
	}

	for _, u := range demo {
		if _, err := s.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("seed %s: %w", u.Username, err)
		}
	}

	return nil
}
