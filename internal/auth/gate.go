package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"BlogGolang/internal/entity"
	"BlogGolang/pkg/apperror"
	contextPkg "BlogGolang/pkg/context"
)

const accessTokenName = "access token"

// SessionResolver looks up the user bound to a session id.
type SessionResolver interface {
	CurrentUser(ctx context.Context, sessionID string) (entity.User, bool, error)
}

// TokenVerifier validates an access token and returns its claims. Expired
// tokens must surface as an error matching jwt.ErrTokenExpired.
type TokenVerifier interface {
	Verify(accessToken string) (jwt.MapClaims, error)
}

// Credentials is everything the gate reads from a request.
type Credentials struct {
	SessionID     string
	Authorization string
}

func CredentialsFromFiber(ctx *fiber.Ctx) Credentials {
	sessionID := ctx.Cookies("session_id")
	if sessionID == "" {
		sessionID = ctx.Get("X-Session-ID")
	}

	return Credentials{
		SessionID:     sessionID,
		Authorization: ctx.Get(fiber.HeaderAuthorization),
	}
}

// AuthContext is the per-request result of a successful gate pass.
type AuthContext struct {
	User   entity.User
	Claims jwt.MapClaims
}

type Gate struct {
	log      *logrus.Logger
	sessions SessionResolver
	tokens   TokenVerifier
}

func NewGate(log *logrus.Logger, sessions SessionResolver, tokens TokenVerifier) *Gate {
	return &Gate{
		log:      log,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Authorize runs the session, admin, and token checks in that order and
// short-circuits on the first failure. One verification attempt per
// request; refresh flows are the caller's business.
func (g *Gate) Authorize(ctx context.Context, creds Credentials) (AuthContext, error) {
	requestID := contextPkg.GetRequestID(ctx)

	user, ok, err := g.sessions.CurrentUser(ctx, creds.SessionID)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Session lookup failed")
		return AuthContext{}, apperror.NewUnauthorized()
	}
	if !ok {
		g.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("No session user")
		return AuthContext{}, apperror.NewUnauthorized()
	}

	if !user.IsAdmin {
		g.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("User is not an admin")
		return AuthContext{}, apperror.NewForbidden()
	}

	accessToken, err := bearerToken(creds.Authorization)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Authorization header check failed")
		return AuthContext{}, apperror.NewTokenInvalid(accessTokenName, err.Error())
	}

	claims, err := g.tokens.Verify(accessToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			g.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    user.ID,
			}).Warn("Access token expired")
			return AuthContext{}, apperror.NewTokenExpired()
		}
		g.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
			"error":      err.Error(),
		}).Warn("Token verification failed")
		return AuthContext{}, apperror.NewTokenInvalid(accessTokenName, err.Error())
	}

	if claims["sub"] == nil && claims["id"] == nil {
		g.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Token claims are missing a subject")
		return AuthContext{}, apperror.NewTokenInvalid(accessTokenName, "missing subject claim")
	}

	return AuthContext{User: user, Claims: claims}, nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("empty Authorization header")
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", errors.New("invalid Authorization format")
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", errors.New("empty token")
	}

	return token, nil
}
