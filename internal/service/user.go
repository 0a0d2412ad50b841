package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/intake/internal/model/user"
	"github.com/deppfellow/intake/internal/server"
	"github.com/deppfellow/intake/internal/validation"
)

const UserCreatedMessage = "User created!"

type UserService struct {
	server *server.Server
}

func NewUserService(s *server.Server) *UserService {
	return &UserService{server: s}
}

// CreateUser validates payload and confirms the normalized registration.
// A rejected record returns validation.Failures.
func (s *UserService) CreateUser(ctx context.Context, payload *user.CreateUserPayload) (*user.CreatedResponse, error) {
	u, err := validation.Normalize[user.User](s.server.Validator, payload)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("username", u.Username).
		Msg("user accepted")

	return &user.CreatedResponse{
		Message: UserCreatedMessage,
		User:    u,
	}, nil
}
