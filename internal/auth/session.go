package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"BlogGolang/internal/entity"
	jwtPkg "BlogGolang/pkg/jwt"
	"BlogGolang/pkg/redis"
)

// redisSessionResolver resolves session users from the Redis session store.
type redisSessionResolver struct {
	store redis.IRedis
}

func NewRedisSessionResolver(store redis.IRedis) SessionResolver {
	return &redisSessionResolver{store: store}
}

func (r *redisSessionResolver) CurrentUser(ctx context.Context, sessionID string) (entity.User, bool, error) {
	if sessionID == "" {
		return entity.User{}, false, nil
	}

	user, err := r.store.GetSession(ctx, sessionID)
	if errors.Is(err, redis.ErrSessionNotFound) {
		return entity.User{}, false, nil
	} else if err != nil {
		return entity.User{}, false, err
	}

	return user, true, nil
}

// jwtVerifier adapts pkg/jwt to the TokenVerifier interface.
type jwtVerifier struct{}

func NewJWTVerifier() TokenVerifier {
	return jwtVerifier{}
}

func (jwtVerifier) Verify(accessToken string) (jwt.MapClaims, error) {
	return jwtPkg.Verify(accessToken)
}
