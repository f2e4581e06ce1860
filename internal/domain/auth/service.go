package auth

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/campuscard/mealcard-api/internal/domain/user"
	"github.com/campuscard/mealcard-api/internal/pkg/jwt"
	"github.com/campuscard/mealcard-api/internal/pkg/password"
)

// UserStore is the user lookup surface the login flow needs.
type UserStore interface {
	FindUser(email, name string, role user.Role) (user.User, error)
}

type Service struct {
	users UserStore
	jwt   *jwt.Service
}

func NewService(users UserStore, jwtService *jwt.Service) *Service {
	return &Service{users: users, jwt: jwtService}
}

// Login authenticates a user within a role and issues an access token.
// Lookup failures and bad passwords both come back as ErrInvalidCredentials
// so login probes can't tell accounts apart.
func (s *Service) Login(req LoginRequest) (LoginResponse, error) {
	if req.Email == "" && req.Name == "" {
		return LoginResponse{}, ErrInvalidCredentials
	}

	u, err := s.users.FindUser(req.Email, req.Name, user.Role(req.Role))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return LoginResponse{}, ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if !password.Verify(req.Password, u.PasswordHash) {
		return LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(u.ID, string(u.Role), u.Name)
	if err != nil {
		return LoginResponse{}, err
	}

	log.Info().
		Str("user_id", u.ID).
		Str("role", string(u.Role)).
		Msg("user logged in")

	return LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.jwt.GetAccessTTL().Seconds()),
		User:        u,
	}, nil
}
