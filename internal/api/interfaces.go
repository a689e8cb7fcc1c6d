package api

import (
	"context"

	"github.com/limbo/studyflow/pkg/entity"
	jwtservice "github.com/limbo/studyflow/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*jwtservice.Claims, error)
}

// Pinger reports storage health
type Pinger interface {
	Ping(ctx context.Context) error
}
